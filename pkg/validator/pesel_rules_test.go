package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pesel/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.RequiredString("pesel", "93061412550")))

	for _, value := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.RequiredString("pesel", value))
		require.Error(t, err, "value should be rejected: %q", value)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "pesel", verrs[0].TranslationValues["field"])
	}
}

func TestValidPESEL(t *testing.T) {
	t.Run("valid format", func(t *testing.T) {
		// check digit is not verified by this rule
		for _, value := range []string{"93061412550", "00124567890", "91000000000", "93061412551"} {
			err := validator.Apply(validator.ValidPESEL("pesel", value))
			assert.NoError(t, err, "value should be valid: %s", value)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, value := range []string{"", "0012457897", "931212121212", "pesel878711", "+9306141255"} {
			err := validator.Apply(validator.ValidPESEL("pesel", value))
			require.Error(t, err, "value should be invalid: %q", value)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "pesel", verrs[0].Field)
			assert.Equal(t, "Wrong format", verrs[0].Message)
			assert.Equal(t, "validation.pesel", verrs[0].TranslationKey)
			assert.Equal(t, 11, verrs[0].TranslationValues["length"])
		}
	})
}

func TestValidPESELChecksum(t *testing.T) {
	t.Run("matching check digit", func(t *testing.T) {
		for _, value := range []string{"93061412550", "02070803628", "44051401458", "00000000000"} {
			err := validator.Apply(validator.ValidPESELChecksum("pesel", value))
			assert.NoError(t, err, "value should be valid: %s", value)
		}
	})

	t.Run("mismatched check digit", func(t *testing.T) {
		for _, value := range []string{"93061412551", "02070803620", "99999999999"} {
			err := validator.Apply(validator.ValidPESELChecksum("pesel", value))
			require.Error(t, err, "value should be invalid: %s", value)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "validation.pesel_checksum", verrs[0].TranslationKey)
		}
	})

	t.Run("malformed input fails", func(t *testing.T) {
		err := validator.Apply(validator.ValidPESELChecksum("pesel", "pesel878711"))
		assert.Error(t, err)
	})
}

func TestPESELRules_Combined(t *testing.T) {
	apply := func(value string) validator.ValidationErrors {
		return validator.ExtractValidationErrors(validator.Apply(
			validator.RequiredString("pesel", value),
			validator.ValidPESEL("pesel", value),
			validator.ValidPESELChecksum("pesel", value),
		))
	}

	assert.Nil(t, apply("93061412550"))

	verrs := apply("")
	require.Len(t, verrs, 3)
	assert.Equal(t, "validation.required", verrs[0].TranslationKey)

	verrs = apply("93061412551")
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.pesel_checksum", verrs[0].TranslationKey)
	assert.Equal(t, []string{"pesel"}, verrs.Fields())
}
