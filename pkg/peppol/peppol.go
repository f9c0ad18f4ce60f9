// Package peppol provides a public API for working with Peppol BIS Billing
// 3.0 invoices and credit notes.
//
// This package exposes the typed document model plus parsing, building,
// totals calculation and conversion between the two document variants.
//
// Example usage:
//
//	doc, warnings, err := peppol.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := peppol.Recalculate(doc); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := peppol.Build(doc)
package peppol

import (
	"github.com/letspeppol/letspeppol/internal/calc"
	"github.com/letspeppol/letspeppol/internal/convert"
	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

// Re-export core types for public API
type (
	Document                    = model.Document
	Invoice                     = model.Invoice
	CreditNote                  = model.CreditNote
	Kind                        = model.Kind
	Line                        = model.Line
	Item                        = model.Item
	Price                       = model.Price
	Party                       = model.Party
	AccountingParty             = model.AccountingParty
	Address                     = model.Address
	TaxCategory                 = model.TaxCategory
	TaxTotal                    = model.TaxTotal
	TaxSubtotal                 = model.TaxSubtotal
	MonetaryTotal               = model.MonetaryTotal
	AllowanceCharge             = model.AllowanceCharge
	PaymentMeans                = model.PaymentMeans
	PaymentTerms                = model.PaymentTerms
	AdditionalDocumentReference = model.AdditionalDocumentReference
	Numeric                     = model.Numeric
	Amount                      = model.Amount
	Quantity                    = model.Quantity
	Identifier                  = model.Identifier
	Warning                     = model.Warning
)

// Re-export document kinds
const (
	KindInvoice    = model.KindInvoice
	KindCreditNote = model.KindCreditNote
)

// Re-export error types
type (
	ParseError            = model.ParseError
	UnrecognizedRootError = model.UnrecognizedRootError
	NonFiniteAmountError  = model.NonFiniteAmountError
)

// Parse decodes UBL XML into a typed document with soft-coercion warnings.
func Parse(data []byte) (Document, []Warning, error) {
	return ubl.Parse(data)
}

// ParseInvoice decodes XML whose root must be an Invoice.
func ParseInvoice(data []byte) (*Invoice, []Warning, error) {
	return ubl.ParseInvoice(data)
}

// ParseCreditNote decodes XML whose root must be a CreditNote.
func ParseCreditNote(data []byte) (*CreditNote, []Warning, error) {
	return ubl.ParseCreditNote(data)
}

// Build serializes a document to UBL XML with a fixed element order.
func Build(doc Document) ([]byte, error) {
	return ubl.Build(doc)
}

// Recalculate rewrites the document's derived amounts from its lines.
func Recalculate(doc Document) error {
	return calc.Recalculate(doc)
}

// ToCreditNote converts an invoice into a credit note without recomputing
// any amounts.
func ToCreditNote(inv *Invoice) *CreditNote {
	return convert.InvoiceToCreditNote(inv)
}

// ToInvoice converts a credit note into an invoice without recomputing any
// amounts.
func ToInvoice(cn *CreditNote) *Invoice {
	return convert.CreditNoteToInvoice(cn)
}
