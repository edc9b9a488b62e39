package forms

import (
	"log"
	"strings"

	"lead-relay/pkg/config"
	"lead-relay/pkg/models"
)

// Identifiers are the form-identity candidates pulled out of a webhook
// payload before matching. Any of them may be empty.
type Identifiers struct {
	FormID     string
	FormName   string
	LocationID string
	FormTitle  string
	PageURL    string
}

// ExtractIdentifiers probes the known payload locations for form-identity
// candidates. HighLevel is inconsistent about where these live, so each
// candidate has several possible homes.
func ExtractIdentifiers(payload models.FormPayload) Identifiers {
	ids := Identifiers{
		FormID:     probeKeys(payload, []string{"form_id", "formId", "formID"}),
		FormName:   probeKeys(payload, []string{"form_name", "formName", "Form Name"}),
		LocationID: probeKeys(payload, []string{"location_id", "locationId", "locationID"}),
		FormTitle:  probeKeys(payload, []string{"form_title", "formTitle", "button_text", "buttonText", "title"}),
		PageURL:    probeKeys(payload, []string{"url", "page_url", "pageUrl"}),
	}

	// Workflow-triggered webhooks carry the form name on the workflow object.
	if ids.FormName == "" {
		if workflow, ok := payload["workflow"].(map[string]interface{}); ok {
			ids.FormName = probeKeys(workflow, []string{"name"})
		}
	}
	if ids.LocationID == "" {
		if location, ok := payload["location"].(map[string]interface{}); ok {
			ids.LocationID = probeKeys(location, []string{"id", "location_id"})
		}
	}

	return ids
}

// Identifier decides whether a submission belongs to the target tenant.
type Identifier struct {
	targetFormIDs    []string
	targetLocationID string
	markerPhrases    []string
}

// NewIdentifier creates an Identifier from the tenant configuration.
func NewIdentifier(cfg *config.Config) *Identifier {
	return &Identifier{
		targetFormIDs:    cfg.TargetFormIDs,
		targetLocationID: cfg.TargetLocationID,
		markerPhrases:    cfg.MarkerPhrases,
	}
}

// check is one identity rule: a name for logging and a predicate over the
// extracted identifiers.
type check struct {
	name  string
	match func(Identifiers) bool
}

// checks returns the identity rules in priority order. The first match wins;
// an unmatched submission is rejected.
func (id *Identifier) checks() []check {
	return []check{
		{"form-id allow-list", func(ids Identifiers) bool {
			return ids.FormID != "" && id.isTargetFormID(ids.FormID)
		}},
		{"location-id", func(ids Identifiers) bool {
			return ids.LocationID != "" && ids.LocationID == id.targetLocationID
		}},
		{"form-name marker phrase", func(ids Identifiers) bool {
			return id.containsMarker(ids.FormName)
		}},
		{"form-title marker phrase", func(ids Identifiers) bool {
			return id.containsMarker(ids.FormTitle) || id.containedInMarker(ids.FormTitle)
		}},
		{"form-id in page URL", func(ids Identifiers) bool {
			if ids.PageURL == "" {
				return false
			}
			for _, formID := range id.targetFormIDs {
				if strings.Contains(ids.PageURL, formID) {
					return true
				}
			}
			return false
		}},
	}
}

// IsTargetForm reports whether the submission belongs to the target tenant.
// Unmatched submissions are rejected.
func (id *Identifier) IsTargetForm(ids Identifiers) bool {
	for _, c := range id.checks() {
		if c.match(ids) {
			log.Printf("Form identified as target via %s check", c.name)
			return true
		}
	}
	return false
}

func (id *Identifier) isTargetFormID(formID string) bool {
	for _, target := range id.targetFormIDs {
		if formID == target {
			return true
		}
	}
	return false
}

// containsMarker reports whether s contains any marker phrase,
// case-insensitively.
func (id *Identifier) containsMarker(s string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, phrase := range id.markerPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// containedInMarker covers button text shorter than the phrase it belongs to
// ("Free Estimate!" forms often label the button just "Estimate").
func (id *Identifier) containedInMarker(s string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, phrase := range id.markerPhrases {
		if strings.Contains(strings.ToLower(phrase), lower) {
			return true
		}
	}
	return false
}
