package model

// AccountingParty wraps the supplier or customer party. A document carries
// exactly one of each.
type AccountingParty struct {
	Party Party `json:"Party"`
}

// Party is a trading party on the document.
type Party struct {
	EndpointID          Identifier            `json:"EndpointID,omitempty"`
	PartyIdentification []PartyIdentification `json:"PartyIdentification,omitempty"`
	PartyName           *PartyName            `json:"PartyName,omitempty"`
	PostalAddress       *Address              `json:"PostalAddress,omitempty"`
	PartyTaxScheme      *PartyTaxScheme       `json:"PartyTaxScheme,omitempty"`
	PartyLegalEntity    *PartyLegalEntity     `json:"PartyLegalEntity,omitempty"`
	Contact             *Contact              `json:"Contact,omitempty"`
}

// PartyIdentification is one scheme-qualified identifier of a party; a
// party may carry several.
type PartyIdentification struct {
	ID Identifier `json:"ID"`
}

// PartyName holds the trading name.
type PartyName struct {
	Name string `json:"Name"`
}

// Address is a postal address.
type Address struct {
	StreetName           *string  `json:"StreetName,omitempty"`
	AdditionalStreetName *string  `json:"AdditionalStreetName,omitempty"`
	CityName             *string  `json:"CityName,omitempty"`
	PostalZone           *string  `json:"PostalZone,omitempty"`
	Country              *Country `json:"Country,omitempty"`
}

// Country holds the ISO 3166-1 country code.
type Country struct {
	IdentificationCode string `json:"IdentificationCode"`
}

// PartyTaxScheme carries the VAT registration. CompanyID is normalized to
// the Identifier shape even when the source XML held a bare text value.
type PartyTaxScheme struct {
	CompanyID Identifier `json:"CompanyID"`
	TaxScheme TaxScheme  `json:"TaxScheme"`
}

// PartyLegalEntity carries the legal registration.
type PartyLegalEntity struct {
	RegistrationName *string    `json:"RegistrationName,omitempty"`
	CompanyID        Identifier `json:"CompanyID,omitempty"`
}

// TaxScheme identifies the tax system, "VAT" on this profile.
type TaxScheme struct {
	ID string `json:"ID"`
}

// Contact is an optional named contact for a party.
type Contact struct {
	Name           *string `json:"Name,omitempty"`
	Telephone      *string `json:"Telephone,omitempty"`
	ElectronicMail *string `json:"ElectronicMail,omitempty"`
}
