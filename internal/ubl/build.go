package ubl

import (
	"github.com/beevik/etree"

	"github.com/letspeppol/letspeppol/internal/model"
)

// Build serializes a document to UBL XML. Child elements are emitted in a
// fixed order regardless of how the document was assembled, so two
// semantically equal documents always produce the same bytes.
func Build(doc model.Document) ([]byte, error) {
	switch d := doc.(type) {
	case *model.Invoice:
		return BuildInvoice(d)
	case *model.CreditNote:
		return BuildCreditNote(d)
	}
	return nil, model.NewParseError("ubl", "unsupported document variant", nil)
}

// BuildInvoice serializes an invoice.
func BuildInvoice(inv *model.Invoice) ([]byte, error) {
	doc, root := newRoot("Invoice", NsInvoice)
	b := &builder{currency: inv.DocumentCurrencyCode}

	b.cbc(root, "CustomizationID", inv.CustomizationID)
	b.cbc(root, "ProfileID", inv.ProfileID)
	b.cbc(root, "ID", inv.ID)
	b.cbc(root, "IssueDate", inv.IssueDate)
	b.cbcOpt(root, "DueDate", inv.DueDate)
	b.numericReq(root, "InvoiceTypeCode", inv.InvoiceTypeCode)
	b.cbcOpt(root, "Note", inv.Note)
	b.cbc(root, "DocumentCurrencyCode", inv.DocumentCurrencyCode)
	b.cbcOpt(root, "AccountingCost", inv.AccountingCost)
	b.cbcOpt(root, "BuyerReference", inv.BuyerReference)
	b.orderReference(root, inv.OrderReference)
	b.billingReference(root, inv.BillingReference)
	for _, ref := range inv.AdditionalDocumentReference {
		b.documentReference(root, ref)
	}
	b.accountingParty(root, "AccountingSupplierParty", inv.AccountingSupplierParty)
	b.accountingParty(root, "AccountingCustomerParty", inv.AccountingCustomerParty)
	b.delivery(root, inv.Delivery)
	b.paymentMeans(root, inv.PaymentMeans)
	b.paymentTerms(root, inv.PaymentTerms)
	b.allowanceCharges(root, inv.AllowanceCharge)
	b.taxTotals(root, inv.TaxTotal)
	b.monetaryTotal(root, inv.LegalMonetaryTotal)
	for _, line := range inv.InvoiceLine {
		b.line(root, "InvoiceLine", "InvoicedQuantity", line)
	}

	return serialize(doc)
}

// BuildCreditNote serializes a credit note. The layout matches the invoice
// apart from the missing due date and the credit-note line naming.
func BuildCreditNote(cn *model.CreditNote) ([]byte, error) {
	doc, root := newRoot("CreditNote", NsCreditNote)
	b := &builder{currency: cn.DocumentCurrencyCode}

	b.cbc(root, "CustomizationID", cn.CustomizationID)
	b.cbc(root, "ProfileID", cn.ProfileID)
	b.cbc(root, "ID", cn.ID)
	b.cbc(root, "IssueDate", cn.IssueDate)
	b.numericReq(root, "CreditNoteTypeCode", cn.CreditNoteTypeCode)
	b.cbcOpt(root, "Note", cn.Note)
	b.cbc(root, "DocumentCurrencyCode", cn.DocumentCurrencyCode)
	b.cbcOpt(root, "AccountingCost", cn.AccountingCost)
	b.cbcOpt(root, "BuyerReference", cn.BuyerReference)
	b.orderReference(root, cn.OrderReference)
	b.billingReference(root, cn.BillingReference)
	for _, ref := range cn.AdditionalDocumentReference {
		b.documentReference(root, ref)
	}
	b.accountingParty(root, "AccountingSupplierParty", cn.AccountingSupplierParty)
	b.accountingParty(root, "AccountingCustomerParty", cn.AccountingCustomerParty)
	b.delivery(root, cn.Delivery)
	b.paymentMeans(root, cn.PaymentMeans)
	b.paymentTerms(root, cn.PaymentTerms)
	b.allowanceCharges(root, cn.AllowanceCharge)
	b.taxTotals(root, cn.TaxTotal)
	b.monetaryTotal(root, cn.LegalMonetaryTotal)
	for _, line := range cn.CreditNoteLine {
		b.line(root, "CreditNoteLine", "CreditedQuantity", line)
	}

	return serialize(doc)
}

func newRoot(tag, ns string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tag)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)
	root.CreateAttr("xmlns", ns)
	return doc, root
}

func serialize(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	// Full end tags so present-but-empty elements come out as
	// <cbc:Note></cbc:Note>, matching how they arrived.
	doc.WriteSettings.CanonicalEndTags = true
	return doc.WriteToBytes()
}

// builder holds the document currency for amounts that were constructed
// without one.
type builder struct {
	currency string
}

// --- leaf writers ----------------------------------------------------------

func (b *builder) cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

// cbcOpt skips absent values but emits an empty element for a value that
// was present and empty in the source.
func (b *builder) cbcOpt(parent *etree.Element, tag string, value *string) {
	if value == nil {
		return
	}
	b.cbc(parent, tag, *value)
}

func (b *builder) cac(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement("cac:" + tag)
}

// numericReq always emits, even when the value was never set.
func (b *builder) numericReq(parent *etree.Element, tag string, n model.Numeric) {
	b.cbc(parent, tag, n.Raw)
}

func (b *builder) numericOpt(parent *etree.Element, tag string, n model.Numeric) {
	if !n.Defined() {
		return
	}
	b.cbc(parent, tag, n.Raw)
}

func (b *builder) amountEl(parent *etree.Element, tag string, a model.Amount) {
	el := b.cbc(parent, tag, a.Raw)
	currency := a.CurrencyID
	if currency == "" {
		currency = b.currency
	}
	if currency != "" {
		el.CreateAttr("currencyID", currency)
	}
}

func (b *builder) amountOpt(parent *etree.Element, tag string, a model.Amount) {
	if !a.Defined() {
		return
	}
	b.amountEl(parent, tag, a)
}

func (b *builder) quantityEl(parent *etree.Element, tag string, q model.Quantity) {
	el := b.cbc(parent, tag, q.Raw)
	unit := q.UnitCode
	if unit == "" {
		unit = DefaultUnitCode
	}
	el.CreateAttr("unitCode", unit)
}

func (b *builder) identifierOpt(parent *etree.Element, tag string, id model.Identifier) {
	if !id.Defined() {
		return
	}
	el := b.cbc(parent, tag, id.Value)
	if id.SchemeID != "" {
		el.CreateAttr("schemeID", id.SchemeID)
	}
}

// --- aggregates ------------------------------------------------------------

func (b *builder) orderReference(parent *etree.Element, ref *model.OrderReference) {
	if ref.Empty() {
		return
	}
	el := b.cac(parent, "OrderReference")
	b.cbcOpt(el, "ID", ref.ID)
	b.cbcOpt(el, "SalesOrderID", ref.SalesOrderID)
}

func (b *builder) billingReference(parent *etree.Element, ref *model.BillingReference) {
	if ref == nil {
		return
	}
	el := b.cac(parent, "BillingReference")
	inner := b.cac(el, "InvoiceDocumentReference")
	b.cbc(inner, "ID", ref.InvoiceDocumentReference.ID)
}

func (b *builder) documentReference(parent *etree.Element, ref model.AdditionalDocumentReference) {
	el := b.cac(parent, "AdditionalDocumentReference")
	b.cbc(el, "ID", ref.ID)
	b.cbcOpt(el, "DocumentDescription", ref.DocumentDescription)
	if ref.Attachment == nil {
		return
	}
	att := b.cac(el, "Attachment")
	if ext := ref.Attachment.ExternalReference; ext != nil {
		b.cbc(b.cac(att, "ExternalReference"), "URI", ext.URI)
	}
	if obj := ref.Attachment.EmbeddedDocumentBinaryObject; obj != nil {
		bin := b.cbc(att, "EmbeddedDocumentBinaryObject", obj.Value)
		bin.CreateAttr("mimeCode", obj.MimeCode)
		bin.CreateAttr("filename", obj.Filename)
	}
}

func (b *builder) accountingParty(parent *etree.Element, wrapper string, ap model.AccountingParty) {
	el := b.cac(parent, wrapper)
	b.party(el, ap.Party)
}

func (b *builder) party(parent *etree.Element, party model.Party) {
	el := b.cac(parent, "Party")
	b.identifierOpt(el, "EndpointID", party.EndpointID)
	for _, pi := range party.PartyIdentification {
		b.identifierOpt(b.cac(el, "PartyIdentification"), "ID", pi.ID)
	}
	if party.PartyName != nil {
		b.cbc(b.cac(el, "PartyName"), "Name", party.PartyName.Name)
	}
	if party.PostalAddress != nil {
		b.address(el, "PostalAddress", party.PostalAddress)
	}
	if pts := party.PartyTaxScheme; pts != nil {
		tax := b.cac(el, "PartyTaxScheme")
		b.identifierOpt(tax, "CompanyID", pts.CompanyID)
		b.cbc(b.cac(tax, "TaxScheme"), "ID", pts.TaxScheme.ID)
	}
	if ple := party.PartyLegalEntity; ple != nil {
		legal := b.cac(el, "PartyLegalEntity")
		b.cbcOpt(legal, "RegistrationName", ple.RegistrationName)
		b.identifierOpt(legal, "CompanyID", ple.CompanyID)
	}
	if c := party.Contact; c != nil {
		contact := b.cac(el, "Contact")
		b.cbcOpt(contact, "Name", c.Name)
		b.cbcOpt(contact, "Telephone", c.Telephone)
		b.cbcOpt(contact, "ElectronicMail", c.ElectronicMail)
	}
}

func (b *builder) address(parent *etree.Element, tag string, addr *model.Address) {
	el := b.cac(parent, tag)
	b.cbcOpt(el, "StreetName", addr.StreetName)
	b.cbcOpt(el, "AdditionalStreetName", addr.AdditionalStreetName)
	b.cbcOpt(el, "CityName", addr.CityName)
	b.cbcOpt(el, "PostalZone", addr.PostalZone)
	if addr.Country != nil {
		b.cbc(b.cac(el, "Country"), "IdentificationCode", addr.Country.IdentificationCode)
	}
}

func (b *builder) delivery(parent *etree.Element, d *model.Delivery) {
	if d == nil {
		return
	}
	el := b.cac(parent, "Delivery")
	b.cbcOpt(el, "ActualDeliveryDate", d.ActualDeliveryDate)
	if loc := d.DeliveryLocation; loc != nil {
		locEl := b.cac(el, "DeliveryLocation")
		b.identifierOpt(locEl, "ID", loc.ID)
		if loc.Address != nil {
			b.address(locEl, "Address", loc.Address)
		}
	}
	if dp := d.DeliveryParty; dp != nil {
		dpEl := b.cac(el, "DeliveryParty")
		if dp.PartyName != nil {
			b.cbc(b.cac(dpEl, "PartyName"), "Name", dp.PartyName.Name)
		}
	}
}

func (b *builder) paymentMeans(parent *etree.Element, pm *model.PaymentMeans) {
	if pm == nil {
		return
	}
	el := b.cac(parent, "PaymentMeans")
	code := b.cbc(el, "PaymentMeansCode", pm.PaymentMeansCode.Raw)
	if pm.PaymentMeansCode.Name != "" {
		code.CreateAttr("name", pm.PaymentMeansCode.Name)
	}
	b.cbcOpt(el, "PaymentDueDate", pm.PaymentDueDate)
	b.cbcOpt(el, "PaymentID", pm.PaymentID)
	if acc := pm.PayeeFinancialAccount; acc != nil {
		accEl := b.cac(el, "PayeeFinancialAccount")
		b.cbc(accEl, "ID", acc.ID)
		b.cbcOpt(accEl, "Name", acc.Name)
		if branch := acc.FinancialInstitutionBranch; branch != nil {
			b.cbc(b.cac(accEl, "FinancialInstitutionBranch"), "ID", branch.ID)
		}
	}
}

func (b *builder) paymentTerms(parent *etree.Element, pt *model.PaymentTerms) {
	if pt == nil {
		return
	}
	b.cbc(b.cac(parent, "PaymentTerms"), "Note", pt.Note)
}

func (b *builder) allowanceCharges(parent *etree.Element, charges []model.AllowanceCharge) {
	for _, ac := range charges {
		el := b.cac(parent, "AllowanceCharge")
		b.cbc(el, "ChargeIndicator", ac.ChargeIndicator.Raw)
		b.cbcOpt(el, "AllowanceChargeReason", ac.AllowanceChargeReason)
		b.amountEl(el, "Amount", ac.Amount)
		if ac.TaxCategory != nil {
			b.taxCategory(el, "TaxCategory", *ac.TaxCategory)
		}
	}
}

func (b *builder) taxCategory(parent *etree.Element, tag string, tc model.TaxCategory) {
	el := b.cac(parent, tag)
	b.cbc(el, "ID", tc.ID)
	b.numericOpt(el, "Percent", tc.Percent)
	b.cbc(b.cac(el, "TaxScheme"), "ID", tc.TaxScheme.ID)
}

func (b *builder) taxTotals(parent *etree.Element, totals []model.TaxTotal) {
	for _, tt := range totals {
		el := b.cac(parent, "TaxTotal")
		b.amountEl(el, "TaxAmount", tt.TaxAmount)
		for _, sub := range tt.TaxSubtotal {
			subEl := b.cac(el, "TaxSubtotal")
			b.amountEl(subEl, "TaxableAmount", sub.TaxableAmount)
			b.amountEl(subEl, "TaxAmount", sub.TaxAmount)
			b.taxCategory(subEl, "TaxCategory", sub.TaxCategory)
		}
	}
}

func (b *builder) monetaryTotal(parent *etree.Element, mt model.MonetaryTotal) {
	el := b.cac(parent, "LegalMonetaryTotal")
	b.amountOpt(el, "LineExtensionAmount", mt.LineExtensionAmount)
	b.amountOpt(el, "TaxExclusiveAmount", mt.TaxExclusiveAmount)
	b.amountOpt(el, "TaxInclusiveAmount", mt.TaxInclusiveAmount)
	b.amountOpt(el, "ChargeTotalAmount", mt.ChargeTotalAmount)
	b.amountEl(el, "PayableAmount", mt.PayableAmount)
}

func (b *builder) line(parent *etree.Element, lineTag, quantityTag string, line model.Line) {
	el := b.cac(parent, lineTag)
	b.cbc(el, "ID", line.ID)
	b.quantityEl(el, quantityTag, line.Quantity)
	b.amountEl(el, "LineExtensionAmount", line.LineExtensionAmount)
	b.cbcOpt(el, "AccountingCost", line.AccountingCost)
	if line.OrderLineReference != nil {
		b.cbc(b.cac(el, "OrderLineReference"), "LineID", line.OrderLineReference.LineID)
	}
	b.item(el, line.Item)
	b.price(el, line.Price)
}

func (b *builder) item(parent *etree.Element, item model.Item) {
	el := b.cac(parent, "Item")
	b.cbcOpt(el, "Description", item.Description)
	b.cbc(el, "Name", item.Name)
	if sid := item.StandardItemIdentification; sid != nil {
		b.identifierOpt(b.cac(el, "StandardItemIdentification"), "ID", sid.ID)
	}
	if oc := item.OriginCountry; oc != nil {
		b.cbc(b.cac(el, "OriginCountry"), "IdentificationCode", oc.IdentificationCode)
	}
	if cc := item.CommodityClassification; cc != nil {
		code := b.cbc(b.cac(el, "CommodityClassification"), "ItemClassificationCode", cc.ItemClassificationCode.Value)
		if cc.ItemClassificationCode.ListID != "" {
			code.CreateAttr("listID", cc.ItemClassificationCode.ListID)
		}
	}
	b.taxCategory(el, "ClassifiedTaxCategory", item.ClassifiedTaxCategory)
}

func (b *builder) price(parent *etree.Element, price model.Price) {
	el := b.cac(parent, "Price")
	b.amountEl(el, "PriceAmount", price.PriceAmount)
	if price.BaseQuantity.Defined() {
		b.quantityEl(el, "BaseQuantity", price.BaseQuantity)
	}
}
