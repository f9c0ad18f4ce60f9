package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Str returns a pointer to s. Optional text fields are *string so that a
// present-but-empty source element is distinguishable from an absent one
// and rebuilds as an empty element.
func Str(s string) *string { return &s }

// Numeric is a numeric leaf that keeps the exact source text it was parsed
// from. Rebuilding a document emits Raw verbatim, so values like "2800" and
// "2800.00" survive a round trip unchanged. When the source text does not
// parse as a number, Raw is kept and Valid stays false (soft mismatch).
type Numeric struct {
	Raw   string
	Value decimal.Decimal
	Valid bool
}

// NumericFromDecimal builds a coerced Numeric from a decimal value.
func NumericFromDecimal(d decimal.Decimal) Numeric {
	return Numeric{Raw: d.String(), Value: d, Valid: true}
}

// NumericFromInt builds a coerced Numeric from an integer.
func NumericFromInt(n int64) Numeric {
	return NumericFromDecimal(decimal.NewFromInt(n))
}

// NumericFromString coerces s, keeping the original text either way.
func NumericFromString(s string) Numeric {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{Raw: s}
	}
	return Numeric{Raw: s, Value: d, Valid: true}
}

// Defined reports whether the value was present in the source at all.
func (n Numeric) Defined() bool {
	return n.Raw != "" || n.Valid
}

// Decimal returns the coerced value and whether coercion succeeded.
func (n Numeric) Decimal() (decimal.Decimal, bool) {
	return n.Value, n.Valid
}

// String returns the lexical form used for serialization.
func (n Numeric) String() string {
	return n.Raw
}

// Equal compares by numeric value when both sides coerced, by text otherwise.
func (n Numeric) Equal(o Numeric) bool {
	if n.Valid && o.Valid {
		return n.Value.Equal(o.Value)
	}
	return n.Raw == o.Raw && n.Valid == o.Valid
}

// MarshalJSON emits a JSON number for coerced values and the raw string for
// soft mismatches, mirroring what callers saw in the wire XML.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Defined() {
		return []byte("null"), nil
	}
	if n.Valid {
		return []byte(n.Value.String()), nil
	}
	return json.Marshal(n.Raw)
}

// UnmarshalJSON accepts a number, a numeric string, or a non-numeric string
// (which becomes a soft mismatch, same as parsing it from XML).
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Numeric{}
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*n = NumericFromString(str)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*n = Numeric{Raw: s, Value: d, Valid: true}
	return nil
}

// Amount is a monetary figure; CurrencyID is always set, defaulting from the
// document currency when the source element omitted the attribute.
type Amount struct {
	Numeric
	CurrencyID string `json:"currencyID,omitempty"`
}

// NewAmount builds an amount from a decimal value and currency.
func NewAmount(d decimal.Decimal, currency string) Amount {
	return Amount{Numeric: NumericFromDecimal(d), CurrencyID: currency}
}

// Defined reports whether the amount was present in the source.
func (a Amount) Defined() bool {
	return a.Numeric.Defined() || a.CurrencyID != ""
}

func (a Amount) MarshalJSON() ([]byte, error) {
	type alias struct {
		Value      Numeric `json:"value"`
		CurrencyID string  `json:"currencyID,omitempty"`
	}
	return json.Marshal(alias{Value: a.Numeric, CurrencyID: a.CurrencyID})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	type alias struct {
		Value      Numeric `json:"value"`
		CurrencyID string  `json:"currencyID"`
	}
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.Numeric = v.Value
	a.CurrencyID = v.CurrencyID
	return nil
}

// Quantity is a counted figure with its UN/ECE unit code (C62 = piece).
type Quantity struct {
	Numeric
	UnitCode string `json:"unitCode,omitempty"`
}

// NewQuantity builds a quantity from a decimal value and unit code.
func NewQuantity(d decimal.Decimal, unitCode string) Quantity {
	return Quantity{Numeric: NumericFromDecimal(d), UnitCode: unitCode}
}

// Defined reports whether the quantity was present in the source.
func (q Quantity) Defined() bool {
	return q.Numeric.Defined() || q.UnitCode != ""
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	type alias struct {
		Value    Numeric `json:"value"`
		UnitCode string  `json:"unitCode,omitempty"`
	}
	return json.Marshal(alias{Value: q.Numeric, UnitCode: q.UnitCode})
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	type alias struct {
		Value    Numeric `json:"value"`
		UnitCode string  `json:"unitCode"`
	}
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	q.Numeric = v.Value
	q.UnitCode = v.UnitCode
	return nil
}

// Identifier is a string identifier with an optional scheme (Peppol
// participant IDs carry one, VAT numbers do not).
type Identifier struct {
	Value    string `json:"value"`
	SchemeID string `json:"schemeID,omitempty"`
}

// Defined reports whether the identifier carries a value.
func (id Identifier) Defined() bool {
	return id.Value != ""
}

// Code is a coded leaf with an optional name attribute (PaymentMeansCode).
type Code struct {
	Numeric
	Name string `json:"name,omitempty"`
}

// NewCode builds a code from an integer value and display name.
func NewCode(value int64, name string) Code {
	return Code{Numeric: NumericFromInt(value), Name: name}
}

// Defined reports whether the code was present in the source.
func (c Code) Defined() bool {
	return c.Numeric.Defined() || c.Name != ""
}

// Int returns the code as an int when it coerced to a whole number.
func (c Code) Int() (int, bool) {
	if !c.Valid {
		return 0, false
	}
	if c.Value.Exponent() < 0 && !c.Value.Equal(c.Value.Truncate(0)) {
		return 0, false
	}
	n, err := strconv.Atoi(c.Value.Truncate(0).String())
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c Code) MarshalJSON() ([]byte, error) {
	type alias struct {
		Value Numeric `json:"value"`
		Name  string  `json:"name,omitempty"`
	}
	return json.Marshal(alias{Value: c.Numeric, Name: c.Name})
}

func (c *Code) UnmarshalJSON(data []byte) error {
	type alias struct {
		Value Numeric `json:"value"`
		Name  string  `json:"name"`
	}
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.Numeric = v.Value
	c.Name = v.Name
	return nil
}

// Bool is a boolean leaf (ChargeIndicator) with the same soft-coercion
// behavior as Numeric: only the literals "true" and "false" coerce.
type Bool struct {
	Raw   string
	Value bool
	Valid bool
}

// BoolFromString coerces s against the literal true/false strings.
func BoolFromString(s string) Bool {
	switch s {
	case "true":
		return Bool{Raw: s, Value: true, Valid: true}
	case "false":
		return Bool{Raw: s, Valid: true}
	default:
		return Bool{Raw: s}
	}
}

// Defined reports whether the value was present in the source.
func (b Bool) Defined() bool {
	return b.Raw != ""
}

// String returns the lexical form used for serialization.
func (b Bool) String() string {
	return b.Raw
}

func (b Bool) MarshalJSON() ([]byte, error) {
	if !b.Defined() {
		return []byte("null"), nil
	}
	if b.Valid {
		return json.Marshal(b.Value)
	}
	return json.Marshal(b.Raw)
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch s {
	case "null":
		*b = Bool{}
	case "true":
		*b = Bool{Raw: "true", Value: true, Valid: true}
	case "false":
		*b = Bool{Raw: "false", Valid: true}
	default:
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*b = BoolFromString(str)
	}
	return nil
}
