// Package convert switches a document between its invoice and credit-note
// variants. All fields are carried over verbatim, amounts included; nothing
// is recomputed, so a converted document stays consistent with its source.
package convert

import (
	"github.com/letspeppol/letspeppol/internal/model"
)

// InvoiceToCreditNote converts an invoice into a credit note. The type code
// becomes 381, lines become credit-note lines, and the due date is dropped
// because the credit-note layout has no place for it.
func InvoiceToCreditNote(inv *model.Invoice) *model.CreditNote {
	return &model.CreditNote{
		CustomizationID:             inv.CustomizationID,
		ProfileID:                   inv.ProfileID,
		ID:                          inv.ID,
		IssueDate:                   inv.IssueDate,
		CreditNoteTypeCode:          model.NumericFromInt(model.CreditNoteTypeCode),
		Note:                        inv.Note,
		DocumentCurrencyCode:        inv.DocumentCurrencyCode,
		AccountingCost:              inv.AccountingCost,
		BuyerReference:              inv.BuyerReference,
		OrderReference:              inv.OrderReference,
		BillingReference:            inv.BillingReference,
		AdditionalDocumentReference: inv.AdditionalDocumentReference,
		AccountingSupplierParty:     inv.AccountingSupplierParty,
		AccountingCustomerParty:     inv.AccountingCustomerParty,
		Delivery:                    inv.Delivery,
		PaymentMeans:                inv.PaymentMeans,
		PaymentTerms:                inv.PaymentTerms,
		AllowanceCharge:             inv.AllowanceCharge,
		TaxTotal:                    inv.TaxTotal,
		LegalMonetaryTotal:          inv.LegalMonetaryTotal,
		CreditNoteLine:              inv.InvoiceLine,
	}
}

// CreditNoteToInvoice converts a credit note into an invoice. The type code
// becomes 380 and the due date is left unset; callers that need one compute
// it from their payment terms.
func CreditNoteToInvoice(cn *model.CreditNote) *model.Invoice {
	return &model.Invoice{
		CustomizationID:             cn.CustomizationID,
		ProfileID:                   cn.ProfileID,
		ID:                          cn.ID,
		IssueDate:                   cn.IssueDate,
		InvoiceTypeCode:             model.NumericFromInt(model.InvoiceTypeCode),
		Note:                        cn.Note,
		DocumentCurrencyCode:        cn.DocumentCurrencyCode,
		AccountingCost:              cn.AccountingCost,
		BuyerReference:              cn.BuyerReference,
		OrderReference:              cn.OrderReference,
		BillingReference:            cn.BillingReference,
		AdditionalDocumentReference: cn.AdditionalDocumentReference,
		AccountingSupplierParty:     cn.AccountingSupplierParty,
		AccountingCustomerParty:     cn.AccountingCustomerParty,
		Delivery:                    cn.Delivery,
		PaymentMeans:                cn.PaymentMeans,
		PaymentTerms:                cn.PaymentTerms,
		AllowanceCharge:             cn.AllowanceCharge,
		TaxTotal:                    cn.TaxTotal,
		LegalMonetaryTotal:          cn.LegalMonetaryTotal,
		InvoiceLine:                 cn.CreditNoteLine,
	}
}

// Toggle converts a document to the opposite variant.
func Toggle(doc model.Document) model.Document {
	switch d := doc.(type) {
	case *model.Invoice:
		return InvoiceToCreditNote(d)
	case *model.CreditNote:
		return CreditNoteToInvoice(d)
	}
	return doc
}
