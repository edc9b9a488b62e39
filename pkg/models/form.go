package models

// FormPayload is the raw body of an inbound form-submission webhook.
// HighLevel sends these with no fixed shape: field names vary per form,
// contact data may arrive flat or nested, and values are not always strings.
type FormPayload map[string]interface{}

// Lead is the contact record extracted from a form submission. All four
// fields are always present as strings; a field the payload never carried
// is the empty string.
type Lead struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// HasContactIdentity reports whether the lead carries enough identity to be
// worth importing: at least one of first name, last name or email.
func (l Lead) HasContactIdentity() bool {
	return l.FirstName != "" || l.LastName != "" || l.Email != ""
}
