package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/domain"
)

const errInvalidPreset = "Please select a valid preset amount"

// ParseAmount parses a decimal amount as typed into a form.
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// ValidateAmount checks a daily amount against the campaign constraints.
// Bounds are checked before preset membership.
func ValidateAmount(amount decimal.Decimal, c domain.AmountConstraints) domain.AmountValidationResult {
	if amount.LessThan(c.Minimum) {
		return invalidAmount("Minimum daily amount is $" + c.Minimum.String())
	}
	if c.Maximum.Valid && amount.GreaterThan(c.Maximum.Decimal) {
		return invalidAmount("Maximum daily amount is $" + c.Maximum.Decimal.String())
	}
	if !c.AllowCustom && len(c.Presets) > 0 && !isPreset(amount, c.Presets) {
		return invalidAmount(errInvalidPreset)
	}
	return domain.AmountValidationResult{IsValid: true}
}

// ValidateAmountText parses raw and validates it. Text that is not a number
// fails the minimum check.
func ValidateAmountText(raw string, c domain.AmountConstraints) domain.AmountValidationResult {
	amount, err := ParseAmount(raw)
	if err != nil {
		return invalidAmount("Minimum daily amount is $" + c.Minimum.String())
	}
	return ValidateAmount(amount, c)
}

func isPreset(amount decimal.Decimal, presets []decimal.Decimal) bool {
	for _, p := range presets {
		if p.Equal(amount) {
			return true
		}
	}
	return false
}

func invalidAmount(msg string) domain.AmountValidationResult {
	return domain.AmountValidationResult{Error: msg}
}
