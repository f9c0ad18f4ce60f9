package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letspeppol/letspeppol/internal/model"
)

func TestNumericFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"integer", "2800", true},
		{"decimal", "331.25", true},
		{"negative", "-25", true},
		{"trailing zeros kept", "2800.00", true},
		{"text", "not-a-number", false},
		{"comma decimal", "12,5", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := model.NumericFromString(tt.input)
			assert.Equal(t, tt.input, n.Raw)
			assert.Equal(t, tt.valid, n.Valid)
		})
	}
}

func TestNumeric_RawSurvivesCoercion(t *testing.T) {
	// "2800.00" and "2800" are numerically equal but serialize differently.
	a := model.NumericFromString("2800.00")
	b := model.NumericFromString("2800")
	assert.True(t, a.Equal(b))
	assert.Equal(t, "2800.00", a.String())
	assert.Equal(t, "2800", b.String())
}

func TestNumeric_JSON(t *testing.T) {
	coerced := model.NumericFromString("331.25")
	out, err := json.Marshal(coerced)
	require.NoError(t, err)
	assert.Equal(t, "331.25", string(out))

	soft := model.NumericFromString("abc")
	out, err = json.Marshal(soft)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(out))

	undefined := model.Numeric{}
	out, err = json.Marshal(undefined)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	var back model.Numeric
	require.NoError(t, json.Unmarshal([]byte("331.25"), &back))
	assert.True(t, back.Valid)
	assert.Equal(t, "331.25", back.Raw)

	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &back))
	assert.False(t, back.Valid)
	assert.Equal(t, "abc", back.Raw)
}

func TestAmount_JSON(t *testing.T) {
	a := model.NewAmount(decimal.NewFromInt(25), "EUR")
	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":25,"currencyID":"EUR"}`, string(out))

	var back model.Amount
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "EUR", back.CurrencyID)
	assert.True(t, back.Numeric.Equal(a.Numeric))
}

func TestQuantity_JSON(t *testing.T) {
	q := model.NewQuantity(decimal.NewFromInt(7), "DZN")
	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":7,"unitCode":"DZN"}`, string(out))

	var back model.Quantity
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "DZN", back.UnitCode)
	assert.Equal(t, "7", back.Raw)
}

func TestCode_Int(t *testing.T) {
	code := model.NewCode(30, "Credit Transfer")
	n, ok := code.Int()
	require.True(t, ok)
	assert.Equal(t, 30, n)
	assert.Equal(t, "Credit Transfer", code.Name)

	_, ok = model.Code{Numeric: model.NumericFromString("30.5")}.Int()
	assert.False(t, ok)

	_, ok = model.Code{Numeric: model.NumericFromString("abc")}.Int()
	assert.False(t, ok)
}

func TestBoolFromString(t *testing.T) {
	b := model.BoolFromString("true")
	assert.True(t, b.Valid)
	assert.True(t, b.Value)

	b = model.BoolFromString("false")
	assert.True(t, b.Valid)
	assert.False(t, b.Value)

	// Only the exact literals coerce.
	for _, s := range []string{"True", "1", "yes", ""} {
		b = model.BoolFromString(s)
		assert.False(t, b.Valid, "input %q", s)
		assert.Equal(t, s, b.Raw)
	}
}

func TestDocumentUnion(t *testing.T) {
	var doc model.Document = &model.Invoice{ID: "INV-1", DocumentCurrencyCode: "EUR"}
	assert.Equal(t, model.KindInvoice, doc.Kind())
	assert.Equal(t, "INV-1", doc.DocumentID())
	assert.Equal(t, "EUR", doc.Currency())

	doc = &model.CreditNote{ID: "CN-1", DocumentCurrencyCode: "SEK"}
	assert.Equal(t, model.KindCreditNote, doc.Kind())
	assert.Equal(t, "SEK", doc.Currency())
}

func TestLines(t *testing.T) {
	inv := &model.Invoice{InvoiceLine: []model.Line{{ID: "1"}, {ID: "2"}}}
	assert.Len(t, model.Lines(inv), 2)

	cn := &model.CreditNote{CreditNoteLine: []model.Line{{ID: "1"}}}
	assert.Len(t, model.Lines(cn), 1)
}

func TestOrderReference_Empty(t *testing.T) {
	var nilRef *model.OrderReference
	assert.True(t, nilRef.Empty())
	assert.True(t, (&model.OrderReference{}).Empty())
	assert.False(t, (&model.OrderReference{ID: model.Str("123")}).Empty())
	assert.False(t, (&model.OrderReference{SalesOrderID: model.Str("S1")}).Empty())
	// Present-but-empty still serializes.
	assert.False(t, (&model.OrderReference{ID: model.Str("")}).Empty())
}

func TestErrors(t *testing.T) {
	err := model.NewParseError("ubl", "malformed XML", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "malformed XML")

	rootErr := &model.UnrecognizedRootError{Root: "Order"}
	assert.Contains(t, rootErr.Error(), "Order")

	nfErr := &model.NonFiniteAmountError{LineID: "1", Field: "PriceAmount", Raw: "abc"}
	assert.Contains(t, nfErr.Error(), "PriceAmount")

	w := model.Warning{Path: "InvoiceLine[0].Price", Tag: "number", Raw: "abc"}
	assert.Contains(t, w.String(), "InvoiceLine[0].Price")
}
