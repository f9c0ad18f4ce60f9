package model

// TaxSubtotal is the tax aggregate for one category group.
type TaxSubtotal struct {
	TaxableAmount Amount      `json:"TaxableAmount"`
	TaxAmount     Amount      `json:"TaxAmount"`
	TaxCategory   TaxCategory `json:"TaxCategory"`
}

// TaxTotal groups the document's tax subtotals. Parsed documents may carry
// any number of groups; the calculator always emits exactly one.
type TaxTotal struct {
	TaxAmount   Amount        `json:"TaxAmount"`
	TaxSubtotal []TaxSubtotal `json:"TaxSubtotal,omitempty"`
}

// MonetaryTotal is the document-level monetary aggregate
// (cac:LegalMonetaryTotal).
type MonetaryTotal struct {
	LineExtensionAmount Amount `json:"LineExtensionAmount,omitempty"`
	TaxExclusiveAmount  Amount `json:"TaxExclusiveAmount,omitempty"`
	TaxInclusiveAmount  Amount `json:"TaxInclusiveAmount,omitempty"`
	ChargeTotalAmount   Amount `json:"ChargeTotalAmount,omitempty"`
	PayableAmount       Amount `json:"PayableAmount"`
}

// AllowanceCharge is a document-level charge (indicator true) or allowance
// (indicator false). The calculator treats these as opaque, caller-managed
// adjustments and never recomputes them.
type AllowanceCharge struct {
	ChargeIndicator       Bool         `json:"ChargeIndicator"`
	AllowanceChargeReason *string      `json:"AllowanceChargeReason,omitempty"`
	Amount                Amount       `json:"Amount"`
	TaxCategory           *TaxCategory `json:"TaxCategory,omitempty"`
}
