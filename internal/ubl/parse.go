// Package ubl converts between the typed document model and UBL 2.1
// "BIS Billing 3.0" XML. Parsing and building are inverse operations: any
// document produced by Parse rebuilds byte-identically modulo whitespace.
package ubl

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/letspeppol/letspeppol/internal/model"
)

// UBL 2.1 namespaces for the billing profile.
const (
	NsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsCac        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// DefaultUnitCode is assumed for quantities whose source element carries no
// unitCode attribute (C62 = one/piece).
const DefaultUnitCode = "C62"

// Parse decodes UBL XML into a typed Document. The returned warnings list
// the leaf values that failed numeric or boolean coercion; their original
// text is kept in the document, so a rebuild is unaffected. Errors are
// fatal: malformed XML or an unrecognized root element.
func Parse(data []byte) (model.Document, []model.Warning, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, model.NewParseError("ubl", "malformed XML", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, &model.UnrecognizedRootError{}
	}

	p := &parser{}
	switch root.Tag {
	case "Invoice":
		inv := p.invoice(root)
		return inv, p.warnings, nil
	case "CreditNote":
		cn := p.creditNote(root)
		return cn, p.warnings, nil
	default:
		return nil, nil, &model.UnrecognizedRootError{Root: root.Tag}
	}
}

// ParseInvoice decodes XML whose root must be an Invoice.
func ParseInvoice(data []byte) (*model.Invoice, []model.Warning, error) {
	doc, warnings, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	inv, ok := doc.(*model.Invoice)
	if !ok {
		return nil, nil, &model.UnrecognizedRootError{Root: "CreditNote"}
	}
	return inv, warnings, nil
}

// ParseCreditNote decodes XML whose root must be a CreditNote.
func ParseCreditNote(data []byte) (*model.CreditNote, []model.Warning, error) {
	doc, warnings, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	cn, ok := doc.(*model.CreditNote)
	if !ok {
		return nil, nil, &model.UnrecognizedRootError{Root: "Invoice"}
	}
	return cn, warnings, nil
}

// parser carries the document currency for attribute defaulting and the
// collected soft-mismatch warnings.
type parser struct {
	currency string
	warnings []model.Warning
}

func (p *parser) invoice(root *etree.Element) *model.Invoice {
	p.currency = text(root, "DocumentCurrencyCode")

	inv := &model.Invoice{
		CustomizationID:         text(root, "CustomizationID"),
		ProfileID:               text(root, "ProfileID"),
		ID:                      text(root, "ID"),
		IssueDate:               text(root, "IssueDate"),
		DueDate:                 optText(root, "DueDate"),
		InvoiceTypeCode:         p.numericChild(root, "InvoiceTypeCode", "InvoiceTypeCode"),
		Note:                    optText(root, "Note"),
		DocumentCurrencyCode:    p.currency,
		AccountingCost:          optText(root, "AccountingCost"),
		BuyerReference:          optText(root, "BuyerReference"),
		OrderReference:          p.orderReference(root),
		BillingReference:        p.billingReference(root),
		AccountingSupplierParty: p.accountingParty(root, "AccountingSupplierParty"),
		AccountingCustomerParty: p.accountingParty(root, "AccountingCustomerParty"),
		Delivery:                p.delivery(root),
		PaymentMeans:            p.paymentMeans(root),
		PaymentTerms:            p.paymentTerms(root),
		AllowanceCharge:         p.allowanceCharges(root),
		TaxTotal:                p.taxTotals(root),
		LegalMonetaryTotal:      p.monetaryTotal(root),
		InvoiceLine:             p.lines(root, "InvoiceLine", "InvoicedQuantity"),
	}
	for _, ref := range children(root, "AdditionalDocumentReference") {
		inv.AdditionalDocumentReference = append(inv.AdditionalDocumentReference, p.documentReference(ref))
	}
	return inv
}

func (p *parser) creditNote(root *etree.Element) *model.CreditNote {
	p.currency = text(root, "DocumentCurrencyCode")

	cn := &model.CreditNote{
		CustomizationID:         text(root, "CustomizationID"),
		ProfileID:               text(root, "ProfileID"),
		ID:                      text(root, "ID"),
		IssueDate:               text(root, "IssueDate"),
		CreditNoteTypeCode:      p.numericChild(root, "CreditNoteTypeCode", "CreditNoteTypeCode"),
		Note:                    optText(root, "Note"),
		DocumentCurrencyCode:    p.currency,
		AccountingCost:          optText(root, "AccountingCost"),
		BuyerReference:          optText(root, "BuyerReference"),
		OrderReference:          p.orderReference(root),
		BillingReference:        p.billingReference(root),
		AccountingSupplierParty: p.accountingParty(root, "AccountingSupplierParty"),
		AccountingCustomerParty: p.accountingParty(root, "AccountingCustomerParty"),
		Delivery:                p.delivery(root),
		PaymentMeans:            p.paymentMeans(root),
		PaymentTerms:            p.paymentTerms(root),
		AllowanceCharge:         p.allowanceCharges(root),
		TaxTotal:                p.taxTotals(root),
		LegalMonetaryTotal:      p.monetaryTotal(root),
		CreditNoteLine:          p.lines(root, "CreditNoteLine", "CreditedQuantity"),
	}
	for _, ref := range children(root, "AdditionalDocumentReference") {
		cn.AdditionalDocumentReference = append(cn.AdditionalDocumentReference, p.documentReference(ref))
	}
	return cn
}

// --- element navigation (namespace prefixes are ignored throughout) -------

func child(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func children(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

func text(el *etree.Element, tag string) string {
	c := child(el, tag)
	if c == nil {
		return ""
	}
	return trimmed(c)
}

// optText distinguishes an absent element (nil) from a present-but-empty
// one, so empty optional elements survive a rebuild.
func optText(el *etree.Element, tag string) *string {
	c := child(el, tag)
	if c == nil {
		return nil
	}
	s := trimmed(c)
	return &s
}

func trimmed(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

func attr(el *etree.Element, name string) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(name, "")
}

// --- leaf decoders ---------------------------------------------------------

func (p *parser) numeric(el *etree.Element, path string) model.Numeric {
	if el == nil {
		return model.Numeric{}
	}
	n := model.NumericFromString(trimmed(el))
	if !n.Valid {
		p.warn(path, "number", n.Raw)
	}
	return n
}

func (p *parser) numericChild(el *etree.Element, tag, path string) model.Numeric {
	return p.numeric(child(el, tag), path)
}

func (p *parser) amount(el *etree.Element, tag, path string) model.Amount {
	c := child(el, tag)
	if c == nil {
		return model.Amount{}
	}
	currency := attr(c, "currencyID")
	if currency == "" {
		currency = p.currency
	}
	return model.Amount{Numeric: p.numeric(c, path), CurrencyID: currency}
}

func (p *parser) quantity(el *etree.Element, tag, path string) model.Quantity {
	c := child(el, tag)
	if c == nil {
		return model.Quantity{}
	}
	unit := attr(c, "unitCode")
	if unit == "" {
		unit = DefaultUnitCode
	}
	return model.Quantity{Numeric: p.numeric(c, path), UnitCode: unit}
}

func identifier(el *etree.Element, tag string) model.Identifier {
	c := child(el, tag)
	if c == nil {
		return model.Identifier{}
	}
	return model.Identifier{Value: trimmed(c), SchemeID: attr(c, "schemeID")}
}

func (p *parser) code(el *etree.Element, tag, path string) model.Code {
	c := child(el, tag)
	if c == nil {
		return model.Code{}
	}
	return model.Code{Numeric: p.numeric(c, path), Name: attr(c, "name")}
}

func (p *parser) boolean(el *etree.Element, tag, path string) model.Bool {
	c := child(el, tag)
	if c == nil {
		return model.Bool{}
	}
	b := model.BoolFromString(trimmed(c))
	if !b.Valid {
		p.warn(path, "boolean", b.Raw)
	}
	return b
}

func (p *parser) warn(path, tag, raw string) {
	p.warnings = append(p.warnings, model.Warning{Path: path, Tag: tag, Raw: raw})
}

// --- aggregates ------------------------------------------------------------

func (p *parser) orderReference(root *etree.Element) *model.OrderReference {
	el := child(root, "OrderReference")
	if el == nil {
		return nil
	}
	return &model.OrderReference{
		ID:           optText(el, "ID"),
		SalesOrderID: optText(el, "SalesOrderID"),
	}
}

func (p *parser) billingReference(root *etree.Element) *model.BillingReference {
	el := child(root, "BillingReference")
	if el == nil {
		return nil
	}
	return &model.BillingReference{
		InvoiceDocumentReference: model.DocumentReference{
			ID: text(child(el, "InvoiceDocumentReference"), "ID"),
		},
	}
}

func (p *parser) documentReference(el *etree.Element) model.AdditionalDocumentReference {
	ref := model.AdditionalDocumentReference{
		ID:                  text(el, "ID"),
		DocumentDescription: optText(el, "DocumentDescription"),
	}
	if att := child(el, "Attachment"); att != nil {
		attachment := &model.Attachment{}
		if ext := child(att, "ExternalReference"); ext != nil {
			attachment.ExternalReference = &model.ExternalReference{URI: text(ext, "URI")}
		}
		if obj := child(att, "EmbeddedDocumentBinaryObject"); obj != nil {
			attachment.EmbeddedDocumentBinaryObject = &model.EmbeddedBinaryObject{
				MimeCode: attr(obj, "mimeCode"),
				Filename: attr(obj, "filename"),
				Value:    trimmed(obj),
			}
		}
		ref.Attachment = attachment
	}
	return ref
}

func (p *parser) accountingParty(root *etree.Element, wrapper string) model.AccountingParty {
	el := child(root, wrapper)
	return model.AccountingParty{Party: p.party(child(el, "Party"))}
}

func (p *parser) party(el *etree.Element) model.Party {
	if el == nil {
		return model.Party{}
	}
	party := model.Party{
		EndpointID: identifier(el, "EndpointID"),
	}
	for _, pi := range children(el, "PartyIdentification") {
		party.PartyIdentification = append(party.PartyIdentification, model.PartyIdentification{
			ID: identifier(pi, "ID"),
		})
	}
	if pn := child(el, "PartyName"); pn != nil {
		party.PartyName = &model.PartyName{Name: text(pn, "Name")}
	}
	if pa := child(el, "PostalAddress"); pa != nil {
		party.PostalAddress = p.address(pa)
	}
	if pts := child(el, "PartyTaxScheme"); pts != nil {
		party.PartyTaxScheme = &model.PartyTaxScheme{
			CompanyID: identifier(pts, "CompanyID"),
			TaxScheme: model.TaxScheme{ID: text(child(pts, "TaxScheme"), "ID")},
		}
	}
	if ple := child(el, "PartyLegalEntity"); ple != nil {
		party.PartyLegalEntity = &model.PartyLegalEntity{
			RegistrationName: optText(ple, "RegistrationName"),
			CompanyID:        identifier(ple, "CompanyID"),
		}
	}
	if c := child(el, "Contact"); c != nil {
		party.Contact = &model.Contact{
			Name:           optText(c, "Name"),
			Telephone:      optText(c, "Telephone"),
			ElectronicMail: optText(c, "ElectronicMail"),
		}
	}
	return party
}

func (p *parser) address(el *etree.Element) *model.Address {
	addr := &model.Address{
		StreetName:           optText(el, "StreetName"),
		AdditionalStreetName: optText(el, "AdditionalStreetName"),
		CityName:             optText(el, "CityName"),
		PostalZone:           optText(el, "PostalZone"),
	}
	if c := child(el, "Country"); c != nil {
		addr.Country = &model.Country{IdentificationCode: text(c, "IdentificationCode")}
	}
	return addr
}

func (p *parser) delivery(root *etree.Element) *model.Delivery {
	el := child(root, "Delivery")
	if el == nil {
		return nil
	}
	d := &model.Delivery{ActualDeliveryDate: optText(el, "ActualDeliveryDate")}
	if loc := child(el, "DeliveryLocation"); loc != nil {
		dl := &model.DeliveryLocation{ID: identifier(loc, "ID")}
		if a := child(loc, "Address"); a != nil {
			dl.Address = p.address(a)
		}
		d.DeliveryLocation = dl
	}
	if dp := child(el, "DeliveryParty"); dp != nil {
		party := &model.DeliveryParty{}
		if pn := child(dp, "PartyName"); pn != nil {
			party.PartyName = &model.PartyName{Name: text(pn, "Name")}
		}
		d.DeliveryParty = party
	}
	return d
}

func (p *parser) paymentMeans(root *etree.Element) *model.PaymentMeans {
	el := child(root, "PaymentMeans")
	if el == nil {
		return nil
	}
	pm := &model.PaymentMeans{
		PaymentMeansCode: p.code(el, "PaymentMeansCode", "PaymentMeans.PaymentMeansCode"),
		PaymentDueDate:   optText(el, "PaymentDueDate"),
		PaymentID:        optText(el, "PaymentID"),
	}
	if acc := child(el, "PayeeFinancialAccount"); acc != nil {
		account := &model.PayeeFinancialAccount{
			ID:   text(acc, "ID"),
			Name: optText(acc, "Name"),
		}
		if branch := child(acc, "FinancialInstitutionBranch"); branch != nil {
			account.FinancialInstitutionBranch = &model.FinancialInstitutionBranch{ID: text(branch, "ID")}
		}
		pm.PayeeFinancialAccount = account
	}
	return pm
}

func (p *parser) paymentTerms(root *etree.Element) *model.PaymentTerms {
	el := child(root, "PaymentTerms")
	if el == nil {
		return nil
	}
	return &model.PaymentTerms{Note: text(el, "Note")}
}

func (p *parser) allowanceCharges(root *etree.Element) []model.AllowanceCharge {
	var out []model.AllowanceCharge
	for i, el := range children(root, "AllowanceCharge") {
		path := fmt.Sprintf("AllowanceCharge[%d]", i)
		ac := model.AllowanceCharge{
			ChargeIndicator:       p.boolean(el, "ChargeIndicator", path+".ChargeIndicator"),
			AllowanceChargeReason: optText(el, "AllowanceChargeReason"),
			Amount:                p.amount(el, "Amount", path+".Amount"),
		}
		if tc := child(el, "TaxCategory"); tc != nil {
			cat := p.taxCategory(tc, path+".TaxCategory")
			ac.TaxCategory = &cat
		}
		out = append(out, ac)
	}
	return out
}

func (p *parser) taxCategory(el *etree.Element, path string) model.TaxCategory {
	return model.TaxCategory{
		ID:        text(el, "ID"),
		Percent:   p.numericChild(el, "Percent", path+".Percent"),
		TaxScheme: model.TaxScheme{ID: text(child(el, "TaxScheme"), "ID")},
	}
}

func (p *parser) taxTotals(root *etree.Element) []model.TaxTotal {
	var out []model.TaxTotal
	for i, el := range children(root, "TaxTotal") {
		path := fmt.Sprintf("TaxTotal[%d]", i)
		tt := model.TaxTotal{TaxAmount: p.amount(el, "TaxAmount", path+".TaxAmount")}
		for j, sub := range children(el, "TaxSubtotal") {
			subPath := fmt.Sprintf("%s.TaxSubtotal[%d]", path, j)
			ts := model.TaxSubtotal{
				TaxableAmount: p.amount(sub, "TaxableAmount", subPath+".TaxableAmount"),
				TaxAmount:     p.amount(sub, "TaxAmount", subPath+".TaxAmount"),
			}
			if tc := child(sub, "TaxCategory"); tc != nil {
				ts.TaxCategory = p.taxCategory(tc, subPath+".TaxCategory")
			}
			tt.TaxSubtotal = append(tt.TaxSubtotal, ts)
		}
		out = append(out, tt)
	}
	return out
}

func (p *parser) monetaryTotal(root *etree.Element) model.MonetaryTotal {
	el := child(root, "LegalMonetaryTotal")
	if el == nil {
		return model.MonetaryTotal{}
	}
	const path = "LegalMonetaryTotal"
	return model.MonetaryTotal{
		LineExtensionAmount: p.amount(el, "LineExtensionAmount", path+".LineExtensionAmount"),
		TaxExclusiveAmount:  p.amount(el, "TaxExclusiveAmount", path+".TaxExclusiveAmount"),
		TaxInclusiveAmount:  p.amount(el, "TaxInclusiveAmount", path+".TaxInclusiveAmount"),
		ChargeTotalAmount:   p.amount(el, "ChargeTotalAmount", path+".ChargeTotalAmount"),
		PayableAmount:       p.amount(el, "PayableAmount", path+".PayableAmount"),
	}
}

func (p *parser) lines(root *etree.Element, lineTag, quantityTag string) []model.Line {
	lines := []model.Line{}
	for i, el := range children(root, lineTag) {
		path := fmt.Sprintf("%s[%d]", lineTag, i)
		line := model.Line{
			ID:                  text(el, "ID"),
			Quantity:            p.quantity(el, quantityTag, path+"."+quantityTag),
			LineExtensionAmount: p.amount(el, "LineExtensionAmount", path+".LineExtensionAmount"),
			AccountingCost:      optText(el, "AccountingCost"),
		}
		if olr := child(el, "OrderLineReference"); olr != nil {
			line.OrderLineReference = &model.OrderLineReference{LineID: text(olr, "LineID")}
		}
		if item := child(el, "Item"); item != nil {
			line.Item = p.item(item, path+".Item")
		}
		if price := child(el, "Price"); price != nil {
			line.Price = model.Price{
				PriceAmount:  p.amount(price, "PriceAmount", path+".Price.PriceAmount"),
				BaseQuantity: p.quantity(price, "BaseQuantity", path+".Price.BaseQuantity"),
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func (p *parser) item(el *etree.Element, path string) model.Item {
	item := model.Item{
		Description: optText(el, "Description"),
		Name:        text(el, "Name"),
	}
	if sid := child(el, "StandardItemIdentification"); sid != nil {
		item.StandardItemIdentification = &model.StandardItemIdentification{ID: identifier(sid, "ID")}
	}
	if oc := child(el, "OriginCountry"); oc != nil {
		item.OriginCountry = &model.Country{IdentificationCode: text(oc, "IdentificationCode")}
	}
	if cc := child(el, "CommodityClassification"); cc != nil {
		code := child(cc, "ItemClassificationCode")
		item.CommodityClassification = &model.CommodityClassification{
			ItemClassificationCode: model.ListedCode{
				Value:  trimmed(code),
				ListID: attr(code, "listID"),
			},
		}
	}
	if ctc := child(el, "ClassifiedTaxCategory"); ctc != nil {
		item.ClassifiedTaxCategory = p.taxCategory(ctc, path+".ClassifiedTaxCategory")
	}
	return item
}
