package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letspeppol/letspeppol/internal/calc"
	"github.com/letspeppol/letspeppol/internal/model"
)

func line(id, price, qty, percent string) model.Line {
	return model.Line{
		ID:       id,
		Quantity: model.Quantity{Numeric: model.NumericFromString(qty), UnitCode: "C62"},
		Item: model.Item{
			Name: "item " + id,
			ClassifiedTaxCategory: model.TaxCategory{
				ID:        "S",
				Percent:   model.NumericFromString(percent),
				TaxScheme: model.TaxScheme{ID: "VAT"},
			},
		},
		Price: model.Price{
			PriceAmount: model.Amount{Numeric: model.NumericFromString(price), CurrencyID: "EUR"},
		},
	}
}

func TestRecalculate_SingleRate(t *testing.T) {
	inv := &model.Invoice{
		DocumentCurrencyCode: "EUR",
		InvoiceLine: []model.Line{
			line("1", "400", "7", "25"),
			line("2", "150", "10", "25"),
		},
	}
	require.NoError(t, calc.Recalculate(inv))

	assert.Equal(t, "2800", inv.InvoiceLine[0].LineExtensionAmount.Raw)
	assert.Equal(t, "1500", inv.InvoiceLine[1].LineExtensionAmount.Raw)

	require.Len(t, inv.TaxTotal, 1)
	assert.Equal(t, "1075", inv.TaxTotal[0].TaxAmount.Raw)
	require.Len(t, inv.TaxTotal[0].TaxSubtotal, 1)
	sub := inv.TaxTotal[0].TaxSubtotal[0]
	assert.Equal(t, "4300", sub.TaxableAmount.Raw)
	assert.Equal(t, "1075", sub.TaxAmount.Raw)
	assert.Equal(t, "S", sub.TaxCategory.ID)
	assert.Equal(t, "25", sub.TaxCategory.Percent.Raw)

	totals := inv.LegalMonetaryTotal
	assert.Equal(t, "4300", totals.LineExtensionAmount.Raw)
	assert.Equal(t, "4300", totals.TaxExclusiveAmount.Raw)
	assert.Equal(t, "5375", totals.TaxInclusiveAmount.Raw)
	assert.Equal(t, "5375", totals.PayableAmount.Raw)
	assert.Equal(t, "EUR", totals.PayableAmount.CurrencyID)
}

func TestRecalculate_MixedRatesGroupInLineOrder(t *testing.T) {
	inv := &model.Invoice{
		DocumentCurrencyCode: "EUR",
		InvoiceLine: []model.Line{
			line("1", "100", "1", "21"),
			line("2", "50", "2", "6"),
			line("3", "10", "5", "21"),
		},
	}
	require.NoError(t, calc.Recalculate(inv))

	require.Len(t, inv.TaxTotal, 1)
	subs := inv.TaxTotal[0].TaxSubtotal
	require.Len(t, subs, 2)

	// 21% group: 100 + 50 = 150, tax 31.50
	assert.Equal(t, "150", subs[0].TaxableAmount.Raw)
	assert.Equal(t, "31.5", subs[0].TaxAmount.Raw)
	assert.Equal(t, "21", subs[0].TaxCategory.Percent.Raw)
	// 6% group: 100, tax 6
	assert.Equal(t, "100", subs[1].TaxableAmount.Raw)
	assert.Equal(t, "6", subs[1].TaxAmount.Raw)

	assert.Equal(t, "37.5", inv.TaxTotal[0].TaxAmount.Raw)
	assert.Equal(t, "287.5", inv.LegalMonetaryTotal.PayableAmount.Raw)
}

func TestRecalculate_RoundsPerLine(t *testing.T) {
	// Each line rounds to 0.01 before summing; a post-sum rounding would
	// give 0.01 instead of 0.02.
	inv := &model.Invoice{
		DocumentCurrencyCode: "EUR",
		InvoiceLine: []model.Line{
			line("1", "0.005", "1", "21"),
			line("2", "0.005", "1", "21"),
		},
	}
	require.NoError(t, calc.Recalculate(inv))
	assert.Equal(t, "0.01", inv.InvoiceLine[0].LineExtensionAmount.Raw)
	assert.Equal(t, "0.02", inv.LegalMonetaryTotal.LineExtensionAmount.Raw)
}

func TestRecalculate_ChargeTotalPassThrough(t *testing.T) {
	inv := &model.Invoice{
		DocumentCurrencyCode: "EUR",
		InvoiceLine:          []model.Line{line("1", "650", "2", "25")},
	}
	inv.LegalMonetaryTotal.ChargeTotalAmount = model.Amount{
		Numeric:    model.NumericFromString("25"),
		CurrencyID: "EUR",
	}
	require.NoError(t, calc.Recalculate(inv))

	totals := inv.LegalMonetaryTotal
	assert.Equal(t, "1300", totals.LineExtensionAmount.Raw)
	assert.Equal(t, "25", totals.ChargeTotalAmount.Raw)
	assert.Equal(t, "1325", totals.TaxExclusiveAmount.Raw)
	// Tax bases on the lines only, never on the charge.
	assert.Equal(t, "325", inv.TaxTotal[0].TaxAmount.Raw)
	assert.Equal(t, "1650", totals.TaxInclusiveAmount.Raw)
	assert.Equal(t, "1650", totals.PayableAmount.Raw)
}

func TestRecalculate_CreditNote(t *testing.T) {
	cn := &model.CreditNote{
		DocumentCurrencyCode: "EUR",
		CreditNoteLine:       []model.Line{line("1", "1325", "1", "25")},
	}
	require.NoError(t, calc.Recalculate(cn))
	require.Len(t, cn.TaxTotal, 1)
	assert.Equal(t, "331.25", cn.TaxTotal[0].TaxAmount.Raw)
	assert.Equal(t, "1656.25", cn.LegalMonetaryTotal.PayableAmount.Raw)
}

func TestRecalculate_NonFiniteAmounts(t *testing.T) {
	tests := []struct {
		name  string
		build func() *model.Invoice
		field string
	}{
		{
			name: "unparseable price",
			build: func() *model.Invoice {
				l := line("1", "not-a-price", "2", "21")
				return &model.Invoice{DocumentCurrencyCode: "EUR", InvoiceLine: []model.Line{l}}
			},
			field: "PriceAmount",
		},
		{
			name: "unparseable quantity",
			build: func() *model.Invoice {
				l := line("1", "10", "many", "21")
				return &model.Invoice{DocumentCurrencyCode: "EUR", InvoiceLine: []model.Line{l}}
			},
			field: "Quantity",
		},
		{
			name: "unparseable percent",
			build: func() *model.Invoice {
				l := line("1", "10", "2", "high")
				return &model.Invoice{DocumentCurrencyCode: "EUR", InvoiceLine: []model.Line{l}}
			},
			field: "Percent",
		},
		{
			name: "missing price",
			build: func() *model.Invoice {
				l := line("1", "10", "2", "21")
				l.Price.PriceAmount = model.Amount{}
				return &model.Invoice{DocumentCurrencyCode: "EUR", InvoiceLine: []model.Line{l}}
			},
			field: "PriceAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := calc.Recalculate(tt.build())
			require.Error(t, err)
			var nfErr *model.NonFiniteAmountError
			require.ErrorAs(t, err, &nfErr)
			assert.Equal(t, "1", nfErr.LineID)
			assert.Equal(t, tt.field, nfErr.Field)
		})
	}
}
