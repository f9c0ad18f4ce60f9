package model

// OrderReference links the document to the buyer's order. The builder omits
// the element entirely when both children are absent.
type OrderReference struct {
	ID           *string `json:"ID,omitempty"`
	SalesOrderID *string `json:"SalesOrderID,omitempty"`
}

// Empty reports whether nothing would be serialized.
func (r *OrderReference) Empty() bool {
	return r == nil || (r.ID == nil && r.SalesOrderID == nil)
}

// BillingReference links a credit note to the invoice it corrects.
type BillingReference struct {
	InvoiceDocumentReference DocumentReference `json:"InvoiceDocumentReference"`
}

// DocumentReference is a plain reference to another document.
type DocumentReference struct {
	ID string `json:"ID"`
}

// AdditionalDocumentReference attaches supporting material to the document,
// either embedded or by external URI.
type AdditionalDocumentReference struct {
	ID                  string      `json:"ID"`
	DocumentDescription *string     `json:"DocumentDescription,omitempty"`
	Attachment          *Attachment `json:"Attachment,omitempty"`
}

// Attachment carries the referenced material.
type Attachment struct {
	ExternalReference            *ExternalReference    `json:"ExternalReference,omitempty"`
	EmbeddedDocumentBinaryObject *EmbeddedBinaryObject `json:"EmbeddedDocumentBinaryObject,omitempty"`
}

// ExternalReference points at material hosted elsewhere.
type ExternalReference struct {
	URI string `json:"URI"`
}

// EmbeddedBinaryObject is base64 content embedded in the document.
type EmbeddedBinaryObject struct {
	MimeCode string `json:"mimeCode"`
	Filename string `json:"filename"`
	Value    string `json:"value"`
}

// Delivery describes where and when the goods were delivered.
type Delivery struct {
	ActualDeliveryDate *string           `json:"ActualDeliveryDate,omitempty"`
	DeliveryLocation   *DeliveryLocation `json:"DeliveryLocation,omitempty"`
	DeliveryParty      *DeliveryParty    `json:"DeliveryParty,omitempty"`
}

// DeliveryLocation is the delivery point.
type DeliveryLocation struct {
	ID      Identifier `json:"ID,omitempty"`
	Address *Address   `json:"Address,omitempty"`
}

// DeliveryParty is the receiving party.
type DeliveryParty struct {
	PartyName *PartyName `json:"PartyName,omitempty"`
}
