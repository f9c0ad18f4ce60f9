package model

// Kind discriminates the two document variants on the Peppol billing
// profile.
type Kind string

const (
	KindInvoice    Kind = "invoice"
	KindCreditNote Kind = "credit-note"
)

// UN/EDIFACT 1001 document type codes used by BIS Billing 3.0.
const (
	InvoiceTypeCode    = 380
	CreditNoteTypeCode = 381
)

// Document is the closed union of Invoice and CreditNote. Only the two
// variants in this package implement it, so builders and converters can
// switch exhaustively instead of guarding against missing fields.
type Document interface {
	Kind() Kind
	DocumentID() string
	Currency() string
	isDocument()
}

// Invoice is a typed UBL 2.1 invoice (EN16931 / BIS Billing 3.0 subset).
type Invoice struct {
	CustomizationID             string                        `json:"CustomizationID"`
	ProfileID                   string                        `json:"ProfileID"`
	ID                          string                        `json:"ID"`
	IssueDate                   string                        `json:"IssueDate"`
	DueDate                     *string                       `json:"DueDate,omitempty"`
	InvoiceTypeCode             Numeric                       `json:"InvoiceTypeCode"`
	Note                        *string                       `json:"Note,omitempty"`
	DocumentCurrencyCode        string                        `json:"DocumentCurrencyCode"`
	AccountingCost              *string                       `json:"AccountingCost,omitempty"`
	BuyerReference              *string                       `json:"BuyerReference,omitempty"`
	OrderReference              *OrderReference               `json:"OrderReference,omitempty"`
	BillingReference            *BillingReference             `json:"BillingReference,omitempty"`
	AdditionalDocumentReference []AdditionalDocumentReference `json:"AdditionalDocumentReference,omitempty"`
	AccountingSupplierParty     AccountingParty               `json:"AccountingSupplierParty"`
	AccountingCustomerParty     AccountingParty               `json:"AccountingCustomerParty"`
	Delivery                    *Delivery                     `json:"Delivery,omitempty"`
	PaymentMeans                *PaymentMeans                 `json:"PaymentMeans,omitempty"`
	PaymentTerms                *PaymentTerms                 `json:"PaymentTerms,omitempty"`
	AllowanceCharge             []AllowanceCharge             `json:"AllowanceCharge,omitempty"`
	TaxTotal                    []TaxTotal                    `json:"TaxTotal,omitempty"`
	LegalMonetaryTotal          MonetaryTotal                 `json:"LegalMonetaryTotal"`
	InvoiceLine                 []Line                        `json:"InvoiceLine"`
}

func (inv *Invoice) Kind() Kind         { return KindInvoice }
func (inv *Invoice) DocumentID() string { return inv.ID }
func (inv *Invoice) Currency() string   { return inv.DocumentCurrencyCode }
func (inv *Invoice) isDocument()        {}

// CreditNote mirrors Invoice; it has no due date and names its lines and
// quantities differently on the wire.
type CreditNote struct {
	CustomizationID             string                        `json:"CustomizationID"`
	ProfileID                   string                        `json:"ProfileID"`
	ID                          string                        `json:"ID"`
	IssueDate                   string                        `json:"IssueDate"`
	CreditNoteTypeCode          Numeric                       `json:"CreditNoteTypeCode"`
	Note                        *string                       `json:"Note,omitempty"`
	DocumentCurrencyCode        string                        `json:"DocumentCurrencyCode"`
	AccountingCost              *string                       `json:"AccountingCost,omitempty"`
	BuyerReference              *string                       `json:"BuyerReference,omitempty"`
	OrderReference              *OrderReference               `json:"OrderReference,omitempty"`
	BillingReference            *BillingReference             `json:"BillingReference,omitempty"`
	AdditionalDocumentReference []AdditionalDocumentReference `json:"AdditionalDocumentReference,omitempty"`
	AccountingSupplierParty     AccountingParty               `json:"AccountingSupplierParty"`
	AccountingCustomerParty     AccountingParty               `json:"AccountingCustomerParty"`
	Delivery                    *Delivery                     `json:"Delivery,omitempty"`
	PaymentMeans                *PaymentMeans                 `json:"PaymentMeans,omitempty"`
	PaymentTerms                *PaymentTerms                 `json:"PaymentTerms,omitempty"`
	AllowanceCharge             []AllowanceCharge             `json:"AllowanceCharge,omitempty"`
	TaxTotal                    []TaxTotal                    `json:"TaxTotal,omitempty"`
	LegalMonetaryTotal          MonetaryTotal                 `json:"LegalMonetaryTotal"`
	CreditNoteLine              []Line                        `json:"CreditNoteLine"`
}

func (cn *CreditNote) Kind() Kind         { return KindCreditNote }
func (cn *CreditNote) DocumentID() string { return cn.ID }
func (cn *CreditNote) Currency() string   { return cn.DocumentCurrencyCode }
func (cn *CreditNote) isDocument()        {}

// Lines returns the document's lines regardless of variant.
func Lines(doc Document) []Line {
	switch d := doc.(type) {
	case *Invoice:
		return d.InvoiceLine
	case *CreditNote:
		return d.CreditNoteLine
	}
	return nil
}
