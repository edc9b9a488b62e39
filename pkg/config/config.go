package config

import (
	"os"
)

// Config holds all application configuration values. It is built once at
// startup and passed explicitly into each component.
type Config struct {
	// WebhookSecret is the shared secret for the optional HMAC signature
	// check on inbound webhooks. Empty disables the check.
	WebhookSecret string

	// TargetFormIDs is the allow-list of HighLevel form IDs belonging to
	// the tenant this relay forwards for.
	TargetFormIDs []string

	// TargetLocationID is the tenant's HighLevel location (sub-account) ID.
	TargetLocationID string

	// MarkerPhrases are matched case-insensitively against form names and
	// button text when no ID-based identifier is present.
	MarkerPhrases []string

	// ImportURL is the MarketSharp lead import endpoint, with the
	// provider/client/campaign identifiers baked into the query string.
	ImportURL string
}

// LoadConfig reads configuration from environment variables, falling back to
// the tenant's known identifiers where the variable is unset.
func LoadConfig() *Config {
	return &Config{
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		TargetFormIDs:    []string{"cfQ6buvwgSbD2QNAt1rK", "J8yMvA3qWpT0eHxZr5uC"},
		TargetLocationID: "vX4kPnD8sL1qGmHyT6wB",
		MarkerPhrases:    []string{"summit exteriors", "free estimate"},
		ImportURL: getEnv("IMPORT_URL",
			"https://import.marketsharpm.com/iform/processor.aspx?provider=highlevel&client=summitexteriors&campaign=webleads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
