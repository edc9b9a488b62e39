package forms

import (
	"strconv"
	"strings"

	"lead-relay/pkg/models"
)

// Key spellings observed across the tenant's forms, in priority order.
// Form builders emit whatever label the form designer typed, so the same
// field arrives spaced, camelCased, snake_cased, hyphenated or abbreviated.
var (
	firstNameKeys = []string{"first_name", "firstName", "First Name", "first name", "first-name", "FirstName", "first", "fname"}
	lastNameKeys  = []string{"last_name", "lastName", "Last Name", "last name", "last-name", "LastName", "last", "lname", "surname"}
	emailKeys     = []string{"email", "Email", "email_address", "emailAddress", "Email Address", "e-mail", "E-mail"}
	phoneKeys     = []string{"phone", "Phone", "phone_number", "phoneNumber", "Phone Number", "phone-number", "tel", "telephone", "mobile"}
)

// Bundles checked when a field is not found at the top level, in order.
var nestedBundles = []string{"form_data", "formData", "contact"}

// Extract pulls the lead fields out of a loose webhook payload. Every field
// of the result is a string; fields the payload never carried are empty.
// Extract never fails: malformed or missing values yield empty strings.
func Extract(payload models.FormPayload) models.Lead {
	return models.Lead{
		FirstName: probeField(payload, firstNameKeys),
		LastName:  probeField(payload, lastNameKeys),
		Email:     probeField(payload, emailKeys),
		Phone:     probeField(payload, phoneKeys),
	}
}

// probeField tries the key spellings at the top level first, then inside
// each known nested bundle.
func probeField(payload models.FormPayload, keys []string) string {
	if v := probeKeys(payload, keys); v != "" {
		return v
	}
	for _, bundle := range nestedBundles {
		if sub, ok := payload[bundle].(map[string]interface{}); ok {
			if v := probeKeys(sub, keys); v != "" {
				return v
			}
		}
	}
	return ""
}

// probeKeys returns the first non-empty string value found under keys.
func probeKeys(m map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringValue coerces a payload value to a string. Numbers are formatted
// (phone fields sometimes arrive as JSON numbers); anything else is skipped.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
