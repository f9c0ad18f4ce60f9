package model

// Line is one invoice or credit-note line. The quantity serializes as
// InvoicedQuantity on an invoice and CreditedQuantity on a credit note; the
// in-memory shape is shared.
type Line struct {
	ID                  string              `json:"ID"`
	Quantity            Quantity            `json:"Quantity"`
	LineExtensionAmount Amount              `json:"LineExtensionAmount"`
	AccountingCost      *string             `json:"AccountingCost,omitempty"`
	OrderLineReference  *OrderLineReference `json:"OrderLineReference,omitempty"`
	Item                Item                `json:"Item"`
	Price               Price               `json:"Price"`
}

// OrderLineReference points back at a line of the buyer's order.
type OrderLineReference struct {
	LineID string `json:"LineID"`
}

// Item describes the good or service on a line.
type Item struct {
	Description                *string                    `json:"Description,omitempty"`
	Name                       string                     `json:"Name"`
	StandardItemIdentification *StandardItemIdentification `json:"StandardItemIdentification,omitempty"`
	OriginCountry              *Country                   `json:"OriginCountry,omitempty"`
	CommodityClassification    *CommodityClassification   `json:"CommodityClassification,omitempty"`
	ClassifiedTaxCategory      TaxCategory                `json:"ClassifiedTaxCategory"`
}

// StandardItemIdentification is a standardized item identifier (e.g. GTIN).
type StandardItemIdentification struct {
	ID Identifier `json:"ID"`
}

// CommodityClassification classifies the item against a code list.
type CommodityClassification struct {
	ItemClassificationCode ListedCode `json:"ItemClassificationCode"`
}

// ListedCode is a code qualified by the list it is drawn from.
type ListedCode struct {
	Value  string `json:"value"`
	ListID string `json:"listID,omitempty"`
}

// Price is the unit price of a line.
type Price struct {
	PriceAmount  Amount   `json:"PriceAmount"`
	BaseQuantity Quantity `json:"BaseQuantity,omitempty"`
}

// TaxCategory is a UN/CEFACT 5305 tax category with its rate. Common IDs in
// Belgium: S standard 21%, AA lower 6%/12%, Z zero rated, E exempt, AE
// reverse charge.
type TaxCategory struct {
	ID        string    `json:"ID"`
	Percent   Numeric   `json:"Percent"`
	TaxScheme TaxScheme `json:"TaxScheme"`
}
