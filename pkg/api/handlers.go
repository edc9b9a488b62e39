package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"lead-relay/pkg/config"
	"lead-relay/pkg/models"
	"lead-relay/pkg/services"
	"lead-relay/pkg/utils"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	relayService services.LeadRelayService
	config       *config.Config
}

// NewHandlers creates a new Handlers instance
func NewHandlers(relayService services.LeadRelayService, cfg *config.Config) *Handlers {
	return &Handlers{
		relayService: relayService,
		config:       cfg,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleFormWebhook processes incoming form-submission webhooks from HighLevel
func (h *Handlers) HandleFormWebhook(c *gin.Context) {
	// Read the request body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request"})
		return
	}

	// Log the raw request for debugging
	log.Printf("Received webhook body: %s", string(body))

	// Signature verification is advisory: only enforced when both a shared
	// secret and the header are present.
	if signature := c.GetHeader(SignatureHeader); h.config.WebhookSecret != "" && signature != "" {
		if !utils.ValidSignature(h.config.WebhookSecret, body, signature) {
			log.Printf("Rejecting webhook: signature mismatch")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook signature"})
			return
		}
	}

	payload, err := parsePayload(c.ContentType(), body)
	if err != nil {
		log.Printf("Error parsing request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Process the form submission
	response, err := h.relayService.ProcessFormSubmission(payload)

	switch {
	case errors.Is(err, services.ErrNotTargeted):
		c.JSON(http.StatusOK, gin.H{
			"status":  "skipped",
			"message": "Form submission is not for a target form",
		})
	case errors.Is(err, services.ErrNoContactData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case err != nil:
		log.Printf("Error forwarding lead: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"message":  "Lead forwarded",
			"response": response,
		})
	}
}

// HandleTestLead forwards a fixed synthetic lead to the import endpoint
func (h *Handlers) HandleTestLead(c *gin.Context) {
	response, err := h.relayService.ForwardTestLead()
	if err != nil {
		log.Printf("Error forwarding test lead: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Test lead forwarded",
		"response": response,
	})
}

// parsePayload decodes the webhook body. HighLevel sends JSON, but older
// form integrations deliver form-encoded bodies, so fall back to that.
func parsePayload(contentType string, body []byte) (models.FormPayload, error) {
	var payload models.FormPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		return payload, nil
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("body is neither JSON nor form-encoded (content-type %q): %w", contentType, err)
	}

	payload = models.FormPayload{}
	for key := range values {
		payload[key] = values.Get(key)
	}
	return payload, nil
}
