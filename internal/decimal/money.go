package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Round2 rounds half away from zero to 2 decimal places, the EN16931
// rounding for monetary amounts
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MulRound2 multiplies two decimals and rounds to 2 places
func MulRound2(a, b decimal.Decimal) decimal.Decimal {
	return Round2(a.Mul(b))
}

// ApplyPercent computes amount * (percent/100), rounded to 2 places
func ApplyPercent(amount, percent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return Round2(amount.Mul(percent).Div(hundred))
}

// Sum sums a slice of decimals without additional rounding
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}
