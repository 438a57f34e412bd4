package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
)

func TestValidatorChain_AccumulatesErrors(t *testing.T) {
	chain := NewValidatorChain(Required("title")).
		Add(OneOf("title", []string{"SavvyLite"}))

	result := chain.Validate("")
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "required", result.Errors[0].Code)
	assert.Equal(t, "one_of", result.Errors[1].Code)

	assert.True(t, chain.Validate("SavvyLite").Valid)
}

func TestValidationResult_ToError(t *testing.T) {
	assert.NoError(t, Valid().ToError())

	err := Invalid(
		NewValidationError("i18n.defaultLocale", "locale_missing", "default locale must be listed"),
		NewValidationError("", "generic", "something else"),
	).ToError()

	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "field 'i18n.defaultLocale': default locale must be listed; something else")
}

func TestOneOf_RecordsValue(t *testing.T) {
	result := OneOf("footer.style", []string{"dark", "light"})("blue")
	require.False(t, result.Valid)
	assert.Equal(t, "blue", result.Errors[0].Value)
}
