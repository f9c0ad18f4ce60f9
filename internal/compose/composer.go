// Package compose builds ready-to-edit draft documents from the sender
// profile: supplier party, payment details and one blank line are filled in,
// the caller adds real lines and recalculates.
package compose

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/letspeppol/letspeppol/internal/decimal"
	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/profile"
)

// UNCL4461 payment means codes supported on drafts.
const (
	PaymentMeansCash           = 10
	PaymentMeansCreditTransfer = 30
)

var paymentMeansNames = map[int]string{
	PaymentMeansCash:           "In Cash",
	PaymentMeansCreditTransfer: "Credit Transfer",
}

// PaymentMeansName returns the UNCL4461 display name for a code, or "" when
// the code is not in the supported set.
func PaymentMeansName(code int) string {
	return paymentMeansNames[code]
}

// BelgianEnterpriseScheme is the ICD scheme for KBO enterprise numbers.
const BelgianEnterpriseScheme = "0208"

// Customer is the receiving party of a draft.
type Customer struct {
	Name             string
	EnterpriseNumber string
	VATNumber        string
	StreetName       string
	CityName         string
	PostalZone       string
	CountryCode      string
	Email            string
}

// Composer builds drafts for one sender profile.
type Composer struct {
	cfg *profile.Config
	now func() time.Time
}

// New returns a composer for the given profile.
func New(cfg *profile.Config) *Composer {
	return &Composer{cfg: cfg, now: time.Now}
}

// NewInvoice builds a draft invoice for the customer. An empty id gets a
// generated UUID. The draft carries one blank line and zeroed totals; run
// the calculator once real lines are in.
func (c *Composer) NewInvoice(id string, customer Customer) *model.Invoice {
	if id == "" {
		id = uuid.NewString()
	}
	issue := c.now().Format(dateLayout)
	inv := &model.Invoice{
		CustomizationID:         profile.CustomizationID,
		ProfileID:               profile.ProfileID,
		ID:                      id,
		IssueDate:               issue,
		InvoiceTypeCode:         model.NumericFromInt(model.InvoiceTypeCode),
		DocumentCurrencyCode:    c.currency(),
		AccountingSupplierParty: model.AccountingParty{Party: c.supplier()},
		AccountingCustomerParty: model.AccountingParty{Party: c.customerParty(customer)},
		PaymentMeans:            c.paymentMeans(id),
		PaymentTerms:            c.paymentTerms(model.KindInvoice),
		InvoiceLine:             []model.Line{c.NewLine(1)},
	}
	if due, ok := DueDate(issue, c.cfg.Defaults.PaymentTerms); ok {
		inv.DueDate = model.Str(due)
	}
	c.zeroTotals(&inv.LegalMonetaryTotal)
	return inv
}

// NewCreditNote builds a draft credit note. Credit notes carry no document
// due date and no payment means; the money flows back to the customer, so
// only the payment terms note applies. invoiceID, when set, becomes the
// billing reference to the corrected invoice.
func (c *Composer) NewCreditNote(id string, customer Customer, invoiceID string) *model.CreditNote {
	if id == "" {
		id = uuid.NewString()
	}
	issue := c.now().Format(dateLayout)
	cn := &model.CreditNote{
		CustomizationID:         profile.CustomizationID,
		ProfileID:               profile.ProfileID,
		ID:                      id,
		IssueDate:               issue,
		CreditNoteTypeCode:      model.NumericFromInt(model.CreditNoteTypeCode),
		DocumentCurrencyCode:    c.currency(),
		AccountingSupplierParty: model.AccountingParty{Party: c.supplier()},
		AccountingCustomerParty: model.AccountingParty{Party: c.customerParty(customer)},
		PaymentTerms:            c.paymentTerms(model.KindCreditNote),
		CreditNoteLine:          []model.Line{c.NewLine(1)},
	}
	if invoiceID != "" {
		cn.BillingReference = &model.BillingReference{
			InvoiceDocumentReference: model.DocumentReference{ID: invoiceID},
		}
	}
	c.zeroTotals(&cn.LegalMonetaryTotal)
	return cn
}

// NewLine returns a blank line with the profile's tax defaults, zero
// quantity and zero price.
func (c *Composer) NewLine(n int) model.Line {
	d := c.cfg.Defaults
	return model.Line{
		ID:       strconv.Itoa(n),
		Quantity: model.Quantity{Numeric: model.NumericFromInt(0), UnitCode: d.UnitCode},
		Item: model.Item{
			Name: "",
			ClassifiedTaxCategory: model.TaxCategory{
				ID:        d.TaxCategory,
				Percent:   model.NumericFromString(d.TaxPercent),
				TaxScheme: model.TaxScheme{ID: "VAT"},
			},
		},
		Price: model.Price{
			PriceAmount: model.Amount{Numeric: model.NumericFromInt(0), CurrencyID: c.currency()},
		},
	}
}

// AppendLine adds a blank line to the document, numbered after the last one.
func (c *Composer) AppendLine(doc model.Document) {
	switch d := doc.(type) {
	case *model.Invoice:
		d.InvoiceLine = append(d.InvoiceLine, c.NewLine(len(d.InvoiceLine)+1))
	case *model.CreditNote:
		d.CreditNoteLine = append(d.CreditNoteLine, c.NewLine(len(d.CreditNoteLine)+1))
	}
}

// opt maps empty profile values to nil so the builder omits the element.
func opt(s string) *string {
	if s == "" {
		return nil
	}
	return model.Str(s)
}

func (c *Composer) currency() string {
	if c.cfg.Defaults.Currency != "" {
		return c.cfg.Defaults.Currency
	}
	return "EUR"
}

func (c *Composer) supplier() model.Party {
	org := c.cfg.Organization
	endpoint := model.Identifier{Value: org.EnterpriseNumber, SchemeID: BelgianEnterpriseScheme}
	party := model.Party{
		EndpointID: endpoint,
		PartyIdentification: []model.PartyIdentification{
			{ID: endpoint},
		},
		PartyName: &model.PartyName{Name: org.Name},
		PostalAddress: &model.Address{
			StreetName: opt(org.StreetName),
			CityName:   opt(org.CityName),
			PostalZone: opt(org.PostalZone),
			Country:    &model.Country{IdentificationCode: org.CountryCode},
		},
		PartyLegalEntity: &model.PartyLegalEntity{
			RegistrationName: opt(org.Name),
			CompanyID:        model.Identifier{Value: org.EnterpriseNumber, SchemeID: BelgianEnterpriseScheme},
		},
	}
	if org.VATNumber != "" {
		party.PartyTaxScheme = &model.PartyTaxScheme{
			CompanyID: model.Identifier{Value: org.VATNumber},
			TaxScheme: model.TaxScheme{ID: "VAT"},
		}
	}
	if org.Email != "" || org.Telephone != "" {
		party.Contact = &model.Contact{ElectronicMail: opt(org.Email), Telephone: opt(org.Telephone)}
	}
	return party
}

func (c *Composer) customerParty(customer Customer) model.Party {
	country := customer.CountryCode
	if country == "" {
		country = c.cfg.Organization.CountryCode
	}
	endpoint := model.Identifier{Value: customer.EnterpriseNumber, SchemeID: BelgianEnterpriseScheme}
	party := model.Party{
		EndpointID: endpoint,
		PartyIdentification: []model.PartyIdentification{
			{ID: endpoint},
		},
		PartyName: &model.PartyName{Name: customer.Name},
		PostalAddress: &model.Address{
			StreetName: opt(customer.StreetName),
			CityName:   opt(customer.CityName),
			PostalZone: opt(customer.PostalZone),
			Country:    &model.Country{IdentificationCode: country},
		},
		PartyLegalEntity: &model.PartyLegalEntity{
			RegistrationName: opt(customer.Name),
			CompanyID:        model.Identifier{Value: customer.EnterpriseNumber, SchemeID: BelgianEnterpriseScheme},
		},
	}
	if customer.VATNumber != "" {
		party.PartyTaxScheme = &model.PartyTaxScheme{
			CompanyID: model.Identifier{Value: customer.VATNumber},
			TaxScheme: model.TaxScheme{ID: "VAT"},
		}
	}
	if customer.Email != "" {
		party.Contact = &model.Contact{ElectronicMail: opt(customer.Email)}
	}
	return party
}

func (c *Composer) paymentMeans(paymentID string) *model.PaymentMeans {
	pm := &model.PaymentMeans{
		PaymentMeansCode: model.NewCode(PaymentMeansCreditTransfer, PaymentMeansName(PaymentMeansCreditTransfer)),
		PaymentID:        opt(paymentID),
	}
	if iban := c.cfg.Organization.IBAN; iban != "" {
		pm.PayeeFinancialAccount = &model.PayeeFinancialAccount{ID: iban, Name: opt(c.cfg.Organization.Name)}
	}
	return pm
}

// paymentTerms renders the configured terms. Credit notes fall back to a
// hard 15-day default when the profile has none; invoices omit the element.
func (c *Composer) paymentTerms(kind model.Kind) *model.PaymentTerms {
	note := TermNote(c.cfg.Defaults.PaymentTerms)
	if note == "" && kind == model.KindCreditNote {
		note = TermNote(Term15Days)
	}
	if note == "" {
		return nil
	}
	return &model.PaymentTerms{Note: note}
}

func (c *Composer) zeroTotals(mt *model.MonetaryTotal) {
	currency := c.currency()
	zero := model.NewAmount(decimal.Zero, currency)
	mt.LineExtensionAmount = zero
	mt.TaxExclusiveAmount = zero
	mt.TaxInclusiveAmount = zero
	mt.PayableAmount = zero
}
