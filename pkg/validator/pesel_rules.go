package validator

import (
	"strings"

	"github.com/dmitrymomot/pesel/pkg/pesel"
)

// RequiredString fails for empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPESEL checks that value is exactly 11 decimal digits.
// The check digit is not verified, see ValidPESELChecksum.
func ValidPESEL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := pesel.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        pesel.ErrWrongFormat.Error(),
			TranslationKey: "validation.pesel",
			TranslationValues: map[string]any{
				"field":  field,
				"length": pesel.Length,
			},
		},
	}
}

// ValidPESELChecksum checks the format and that the last digit matches the
// checksum of the preceding ten.
func ValidPESELChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			n, err := pesel.Parse(value)
			if err != nil {
				return false
			}
			return pesel.Checksum(n.Payload()) == n.CheckDigit()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid PESEL check digit",
			TranslationKey: "validation.pesel_checksum",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
