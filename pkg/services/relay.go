package services

import (
	"errors"
	"log"

	"lead-relay/pkg/clients/marketsharp"
	"lead-relay/pkg/config"
	"lead-relay/pkg/forms"
	"lead-relay/pkg/models"
	"lead-relay/pkg/utils"
)

var (
	// ErrNotTargeted means the submission is not one of the tenant's forms.
	// The webhook is acknowledged but nothing is forwarded.
	ErrNotTargeted = errors.New("form submission is not for a target form")

	// ErrNoContactData means extraction found no first name, last name or
	// email, so there is no lead worth importing.
	ErrNoContactData = errors.New("form submission has no extractable contact data")
)

// LeadRelayService defines the interface for relaying form submissions
type LeadRelayService interface {
	ProcessFormSubmission(payload models.FormPayload) (string, error)
	ForwardTestLead() (string, error)
}

type leadRelayServiceImpl struct {
	identifier        *forms.Identifier
	marketSharpClient marketsharp.Client
}

// NewLeadRelayService creates a new relay service
func NewLeadRelayService(marketSharpClient marketsharp.Client, cfg *config.Config) LeadRelayService {
	return &leadRelayServiceImpl{
		identifier:        forms.NewIdentifier(cfg),
		marketSharpClient: marketSharpClient,
	}
}

// ProcessFormSubmission handles one inbound submission: identify the form,
// extract the lead, forward it. Returns the downstream response body.
func (s *leadRelayServiceImpl) ProcessFormSubmission(payload models.FormPayload) (string, error) {
	ids := forms.ExtractIdentifiers(payload)

	if !s.identifier.IsTargetForm(ids) {
		log.Printf("Skipping submission: form %q at location %q is not a target form", ids.FormID, ids.LocationID)
		return "", ErrNotTargeted
	}

	lead := forms.Extract(payload)
	if !lead.HasContactIdentity() {
		log.Printf("Rejecting submission from form %q: no contact data found", ids.FormID)
		return "", ErrNoContactData
	}

	// Hash the email so contact data stays out of the logs
	log.Printf("Forwarding lead %s %s (%s)", lead.FirstName, lead.LastName, utils.HashString(lead.Email))

	return s.marketSharpClient.SendLead(marketsharp.Lead{
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
	})
}

// ForwardTestLead sends a fixed synthetic lead through the real import
// endpoint, for verifying the downstream wiring by hand.
func (s *leadRelayServiceImpl) ForwardTestLead() (string, error) {
	log.Printf("Forwarding synthetic test lead")

	return s.marketSharpClient.SendLead(marketsharp.Lead{
		FirstName: "Relay",
		LastName:  "Test",
		Email:     "relay-test@example.com",
		Phone:     "5550100000",
	})
}
