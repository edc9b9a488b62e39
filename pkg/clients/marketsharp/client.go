package marketsharp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Static metadata sent with every lead so MarketSharp can attribute the
// import to this integration.
const (
	leadSource = "HighLevel Web Form"
	campaign   = "Website Leads"
	comments   = "Imported by lead-relay webhook"
)

// Lead is the contact record forwarded to the import endpoint.
type Lead struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Client defines the interface for the MarketSharp lead import API.
type Client interface {
	SendLead(lead Lead) (string, error)
}

type clientImpl struct {
	importURL  string
	httpClient *http.Client
}

// NewClient creates a new MarketSharp client. importURL is the full import
// endpoint including the provider/client/campaign query parameters.
func NewClient(importURL string) Client {
	return &clientImpl{
		importURL: importURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendLead posts one lead to the import endpoint and returns the raw response
// body. The form field names are MarketSharp's import contract and must not
// change. There is no retry: a failure is surfaced once to the caller.
func (c *clientImpl) SendLead(lead Lead) (string, error) {
	form := url.Values{}
	form.Set("FirstName", lead.FirstName)
	form.Set("LastName", lead.LastName)
	form.Set("Email", lead.Email)
	form.Set("Phone", lead.Phone)
	form.Set("LeadSource", leadSource)
	form.Set("Campaign", campaign)
	form.Set("Comments", comments)

	req, err := http.NewRequest("POST", c.importURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending lead: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("error from MarketSharp import (status %d): %s", resp.StatusCode, string(body))
	}

	log.Printf("Successfully forwarded lead to MarketSharp import endpoint")
	return string(body), nil
}
