package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pledge-engine/internal/core/domain"
)

func amounts(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func TestValidateAmount(t *testing.T) {
	presetsOnly := domain.AmountConstraints{
		Minimum: decimal.NewFromInt(1),
		Maximum: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Presets: amounts(5, 10, 20),
	}
	custom := presetsOnly
	custom.AllowCustom = true

	cases := []struct {
		name    string
		amount  string
		c       domain.AmountConstraints
		wantErr string
	}{
		{"preset", "10", presetsOnly, ""},
		{"preset with cents", "10.00", presetsOnly, ""},
		{"not a preset", "7", presetsOnly, "Please select a valid preset amount"},
		{"custom allowed", "7", custom, ""},
		{"below minimum", "0.5", custom, "Minimum daily amount is $1"},
		{"above maximum", "101", custom, "Maximum daily amount is $100"},
		{"bounds before presets", "150", presetsOnly, "Maximum daily amount is $100"},
		{"minimum inclusive", "1", custom, ""},
		{"maximum inclusive", "100", custom, ""},
		{"no maximum", "100000", domain.AmountConstraints{Minimum: decimal.NewFromInt(1)}, ""},
		{"no presets", "3.33", domain.AmountConstraints{Minimum: decimal.NewFromInt(1)}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateAmount(decimal.RequireFromString(tc.amount), tc.c)
			assert.Equal(t, tc.wantErr == "", got.IsValid)
			assert.Equal(t, tc.wantErr, got.Error)
		})
	}
}

func TestValidateAmountText(t *testing.T) {
	c := domain.AmountConstraints{
		Minimum: decimal.RequireFromString("2.50"),
		Presets: amounts(5, 10),
	}

	for _, raw := range []string{"", "abc", "NaN", "1e", "$5"} {
		got := ValidateAmountText(raw, c)
		assert.False(t, got.IsValid, raw)
		assert.Equal(t, "Minimum daily amount is $2.5", got.Error, raw)
	}

	got := ValidateAmountText(" 5 ", c)
	assert.True(t, got.IsValid)
	assert.Empty(t, got.Error)

	got = ValidateAmountText("6", c)
	assert.Contains(t, got.Error, "preset amount")
}
