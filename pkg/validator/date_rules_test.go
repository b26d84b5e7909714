package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/regform/pkg/validator"
)

var today = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	t.Run("parses the wire format", func(t *testing.T) {
		d, ok := validator.ParseDate("2006-01-02")
		require.True(t, ok)
		assert.Equal(t, 2006, d.Year())
	})

	t.Run("rejects malformed input without error", func(t *testing.T) {
		_, ok := validator.ParseDate("not-a-date")
		assert.False(t, ok)

		_, ok = validator.ParseDate("15/06/2024")
		assert.False(t, ok)
	})
}

func TestNotFutureDateAt(t *testing.T) {
	t.Run("passes for today and the past", func(t *testing.T) {
		assert.True(t, validator.NotFutureDateAt("birthDate", today, today).Check())
		assert.True(t, validator.NotFutureDateAt("birthDate", today.AddDate(-1, 0, 0), today).Check())
	})

	t.Run("fails for tomorrow", func(t *testing.T) {
		rule := validator.NotFutureDateAt("birthDate", today.AddDate(0, 0, 1), today)
		assert.False(t, rule.Check())
		assert.Equal(t, "date cannot be in the future", rule.Error.Message)
	})
}

func TestMinAgeAt(t *testing.T) {
	t.Run("passes exactly on the eighteenth birthday", func(t *testing.T) {
		birth := today.AddDate(-18, 0, 0)
		assert.True(t, validator.MinAgeAt("birthDate", birth, today, 18).Check())
	})

	t.Run("fails one day short of eighteen", func(t *testing.T) {
		birth := today.AddDate(-18, 0, 1)
		rule := validator.MinAgeAt("birthDate", birth, today, 18)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 18 years old", rule.Error.Message)
	})

	t.Run("clock time of day does not tighten the boundary", func(t *testing.T) {
		birth, ok := validator.ParseDate("2006-06-15")
		require.True(t, ok)
		assert.True(t, validator.MinAgeAt("birthDate", birth, today, 18).Check())
	})
}

func TestMaxAgeAt(t *testing.T) {
	t.Run("passes exactly at the hundred-year boundary", func(t *testing.T) {
		birth := today.AddDate(-100, 0, 0)
		assert.True(t, validator.MaxAgeAt("birthDate", birth, today, 100).Check())
	})

	t.Run("fails one day beyond a hundred years", func(t *testing.T) {
		birth := today.AddDate(-100, 0, -1)
		rule := validator.MaxAgeAt("birthDate", birth, today, 100)
		assert.False(t, rule.Check())
		assert.Equal(t, "date is unrealistically far in the past", rule.Error.Message)
	})

	t.Run("clock time of day does not reject the boundary date", func(t *testing.T) {
		birth, ok := validator.ParseDate("1924-06-15")
		require.True(t, ok)
		assert.True(t, validator.MaxAgeAt("birthDate", birth, today, 100).Check())
	})
}
