package server

import (
	"encoding/json"

	"github.com/letspeppol/letspeppol/internal/model"
)

// ParseResponse is the response for the parse endpoint.
type ParseResponse struct {
	Kind     model.Kind      `json:"kind"`
	Document model.Document  `json:"document"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

// BuildRequest carries a typed document back to XML. Document is decoded
// into the variant named by Kind.
type BuildRequest struct {
	Kind     model.Kind      `json:"kind"`
	Document json.RawMessage `json:"document"`
}

// ComposeRequest asks for a draft document. ID is optional; an empty one
// gets a generated UUID. InvoiceID only applies to credit notes and becomes
// the billing reference.
type ComposeRequest struct {
	Kind      model.Kind      `json:"kind"`
	ID        string          `json:"id,omitempty"`
	InvoiceID string          `json:"invoiceId,omitempty"`
	Customer  ComposeCustomer `json:"customer"`
}

// ComposeCustomer is the receiving party of a composed draft.
type ComposeCustomer struct {
	Name             string `json:"name"`
	EnterpriseNumber string `json:"enterpriseNumber"`
	VATNumber        string `json:"vatNumber,omitempty"`
	StreetName       string `json:"streetName,omitempty"`
	CityName         string `json:"cityName,omitempty"`
	PostalZone       string `json:"postalZone,omitempty"`
	CountryCode      string `json:"countryCode,omitempty"`
	Email            string `json:"email,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error    string          `json:"error"`
	Details  string          `json:"details,omitempty"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}
