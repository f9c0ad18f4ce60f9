// Package calc recomputes the derived monetary aggregates of a document
// from its lines: line extension amounts, the tax total with one subtotal
// per rate group, and the legal monetary total.
package calc

import (
	shopspring "github.com/shopspring/decimal"

	"github.com/letspeppol/letspeppol/internal/decimal"
	"github.com/letspeppol/letspeppol/internal/model"
)

// Recalculate rewrites the document's computed amounts in place. Rounding
// happens twice: once per line extension and once per group tax amount;
// every other step is exact decimal arithmetic. Document-level allowances
// and charges are never touched, only the pre-stated ChargeTotalAmount is
// carried into the tax-exclusive amount.
func Recalculate(doc model.Document) error {
	switch d := doc.(type) {
	case *model.Invoice:
		return recalculate(d.InvoiceLine, &d.TaxTotal, &d.LegalMonetaryTotal, d.DocumentCurrencyCode)
	case *model.CreditNote:
		return recalculate(d.CreditNoteLine, &d.TaxTotal, &d.LegalMonetaryTotal, d.DocumentCurrencyCode)
	}
	return nil
}

// rateGroup accumulates the taxable base for one tax rate. The category of
// the first line in the group labels the subtotal.
type rateGroup struct {
	category model.TaxCategory
	taxable  shopspring.Decimal
}

func recalculate(lines []model.Line, taxTotal *[]model.TaxTotal, totals *model.MonetaryTotal, currency string) error {
	exts := make([]shopspring.Decimal, 0, len(lines))
	var order []string
	groups := map[string]*rateGroup{}

	for i := range lines {
		line := &lines[i]
		price, ok := line.Price.PriceAmount.Decimal()
		if !ok {
			return &model.NonFiniteAmountError{LineID: line.ID, Field: "PriceAmount", Raw: line.Price.PriceAmount.Raw}
		}
		qty, ok := line.Quantity.Decimal()
		if !ok {
			return &model.NonFiniteAmountError{LineID: line.ID, Field: "Quantity", Raw: line.Quantity.Raw}
		}
		percent, ok := line.Item.ClassifiedTaxCategory.Percent.Decimal()
		if !ok {
			return &model.NonFiniteAmountError{LineID: line.ID, Field: "Percent", Raw: line.Item.ClassifiedTaxCategory.Percent.Raw}
		}

		ext := decimal.MulRound2(price, qty)
		line.LineExtensionAmount = model.NewAmount(ext, lineCurrency(line.LineExtensionAmount, currency))
		exts = append(exts, ext)

		key := percent.String()
		group, exists := groups[key]
		if !exists {
			group = &rateGroup{category: line.Item.ClassifiedTaxCategory}
			groups[key] = group
			order = append(order, key)
		}
		group.taxable = group.taxable.Add(ext)
	}

	taxes := make([]shopspring.Decimal, 0, len(order))
	var subtotals []model.TaxSubtotal
	for _, key := range order {
		group := groups[key]
		percent, _ := group.category.Percent.Decimal()
		tax := decimal.ApplyPercent(group.taxable, percent)
		taxes = append(taxes, tax)
		subtotals = append(subtotals, model.TaxSubtotal{
			TaxableAmount: model.NewAmount(group.taxable, currency),
			TaxAmount:     model.NewAmount(tax, currency),
			TaxCategory:   group.category,
		})
	}
	taxSum := decimal.Sum(taxes)
	*taxTotal = []model.TaxTotal{{
		TaxAmount:   model.NewAmount(taxSum, currency),
		TaxSubtotal: subtotals,
	}}

	lineTotal := decimal.Sum(exts)
	charge := decimal.Zero
	if v, ok := totals.ChargeTotalAmount.Decimal(); ok {
		charge = v
	}
	taxExclusive := lineTotal.Add(charge)
	taxInclusive := taxExclusive.Add(taxSum)

	totals.LineExtensionAmount = model.NewAmount(lineTotal, currency)
	totals.TaxExclusiveAmount = model.NewAmount(taxExclusive, currency)
	totals.TaxInclusiveAmount = model.NewAmount(taxInclusive, currency)
	totals.PayableAmount = model.NewAmount(taxInclusive, currency)
	return nil
}

func lineCurrency(a model.Amount, fallback string) string {
	if a.CurrencyID != "" {
		return a.CurrencyID
	}
	return fallback
}
