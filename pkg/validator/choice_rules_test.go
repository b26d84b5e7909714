package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkotenko/regform/pkg/validator"
)

func TestRequiredChoice(t *testing.T) {
	assert.True(t, validator.RequiredChoice("country", "EC").Check())

	rule := validator.RequiredChoice("country", "")
	assert.False(t, rule.Check())
	assert.Equal(t, "an option must be selected", rule.Error.Message)

	assert.False(t, validator.RequiredChoice("country", "   ").Check())
}

func TestGroupSelected(t *testing.T) {
	assert.True(t, validator.GroupSelected("gender", []string{"other"}).Check())

	rule := validator.GroupSelected("gender", nil)
	assert.False(t, rule.Check())
	assert.Equal(t, "an option must be selected", rule.Error.Message)
}

func TestMinSelected(t *testing.T) {
	t.Run("message names the minimum", func(t *testing.T) {
		rule := validator.MinSelected("interests", []string{"music"}, 2)
		assert.False(t, rule.Check())
		assert.Equal(t, "select at least 2 options", rule.Error.Message)
	})

	t.Run("exactly the minimum passes", func(t *testing.T) {
		assert.True(t, validator.MinSelected("interests", []string{"music", "sports"}, 2).Check())
	})

	t.Run("empty selection fails", func(t *testing.T) {
		assert.False(t, validator.MinSelected("interests", nil, 2).Check())
	})
}

func TestAccepted(t *testing.T) {
	assert.True(t, validator.Accepted("terms", true).Check())

	rule := validator.Accepted("terms", false)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be accepted", rule.Error.Message)
}

func TestInListString(t *testing.T) {
	allowed := []string{"EC", "CO", "PE"}
	assert.True(t, validator.InListString("country", "CO", allowed).Check())

	rule := validator.InListString("country", "XX", allowed)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be one of: EC, CO, PE", rule.Error.Message)
}
