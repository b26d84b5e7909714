package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkotenko/regform/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", "   ").Check())
	})
}

func TestMinLenString(t *testing.T) {
	assert.True(t, validator.MinLenString("password", "12345", 5).Check())
	assert.True(t, validator.MinLenString("password", "123456", 5).Check())

	rule := validator.MinLenString("password", "1234", 5)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be at least 5 characters long", rule.Error.Message)

	// Multibyte characters count once each.
	assert.True(t, validator.MinLenString("fullName", "Ño", 2).Check())
	assert.False(t, validator.MinLenString("fullName", "Ñ", 2).Check())
}

func TestMaxLenString(t *testing.T) {
	assert.True(t, validator.MaxLenString("comments", "short", 500).Check())

	rule := validator.MaxLenString("comments", strings.Repeat("a", 501), 500)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be at most 500 characters long", rule.Error.Message)

	// 500 accented runes are 1000 bytes but still within the limit.
	assert.True(t, validator.MaxLenString("comments", strings.Repeat("é", 500), 500).Check())
	assert.False(t, validator.MaxLenString("comments", strings.Repeat("é", 501), 500).Check())
}

func TestDigitString(t *testing.T) {
	t.Run("requires exact length", func(t *testing.T) {
		assert.True(t, validator.DigitString("nationalId", "1712345675", 10).Check())
		assert.False(t, validator.DigitString("nationalId", "171234567", 10).Check())
		assert.False(t, validator.DigitString("nationalId", "17123456755", 10).Check())
	})

	t.Run("rejects non-digits", func(t *testing.T) {
		rule := validator.DigitString("nationalId", "171234567a", 10)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be exactly 10 digits", rule.Error.Message)
	})

	t.Run("aliases delegate to the string rules", func(t *testing.T) {
		assert.True(t, validator.Required("f", "x").Check())
		assert.True(t, validator.MinLen("f", "abc", 3).Check())
		assert.True(t, validator.MaxLen("f", "abc", 3).Check())
	})
}
