package decimal_test

import (
	"testing"

	shopspring "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/letspeppol/letspeppol/internal/decimal"
)

func TestRound2_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"1.005", "1.01"},
		{"-1.005", "-1.01"},
		{"2.675", "2.68"},
		{"331.25", "331.25"},
		{"2800", "2800"},
	}

	for _, tt := range tests {
		got := decimal.Round2(shopspring.RequireFromString(tt.in))
		assert.Equal(t, tt.expected, got.String(), "Round2(%s)", tt.in)
	}
}

func TestApplyPercent(t *testing.T) {
	taxable := shopspring.RequireFromString("1325")
	percent := shopspring.NewFromInt(25)

	got := decimal.ApplyPercent(taxable, percent)

	assert.Equal(t, "331.25", got.String())
}

func TestMulRound2(t *testing.T) {
	price := shopspring.RequireFromString("5.33")
	qty := shopspring.NewFromInt(2)

	got := decimal.MulRound2(price, qty)

	assert.Equal(t, "10.66", got.String())
}

func TestSum(t *testing.T) {
	values := []shopspring.Decimal{
		shopspring.RequireFromString("10.66"),
		shopspring.RequireFromString("2800"),
	}

	assert.Equal(t, "2810.66", decimal.Sum(values).String())
	assert.True(t, decimal.Sum(nil).IsZero())
}
