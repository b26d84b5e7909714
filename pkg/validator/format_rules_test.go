package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkotenko/regform/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.org",
		"u+tag@example.co",
	}
	for _, email := range valid {
		t.Run("accepts "+email, func(t *testing.T) {
			assert.True(t, validator.ValidEmail("email", email).Check())
		})
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"two@@example.com",
		"a@b@example.com",
		"has space@example.com",
		"user@exam ple.com",
		"@example.com",
	}
	for _, email := range invalid {
		t.Run("rejects "+email, func(t *testing.T) {
			rule := validator.ValidEmail("email", email)
			assert.False(t, rule.Check())
			assert.Equal(t, "must be a valid email address", rule.Error.Message)
		})
	}
}

func TestValidWebsite(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com",
		"https://www.example.com",
		"https://example.com/path/to?query=1",
		"https://sub.domain.example.io",
	}
	for _, site := range valid {
		t.Run("accepts "+site, func(t *testing.T) {
			assert.True(t, validator.ValidWebsite("website", site).Check())
		})
	}

	invalid := []string{
		"example.com",
		"ftp://example.com",
		"https://",
		"https://nodot",
		"https://example.toolongtld",
		"https://exa mple.com",
	}
	for _, site := range invalid {
		t.Run("rejects "+site, func(t *testing.T) {
			assert.False(t, validator.ValidWebsite("website", site).Check())
		})
	}
}

func TestValidPhoneEC(t *testing.T) {
	valid := []string{
		"0991234567",
		"991234567",
		"+593991234567",
		"593991234567",
		"099-123-4567",
		"(0)99 123 4567",
		"+593 99 123 4567",
	}
	for _, phone := range valid {
		t.Run("accepts "+phone, func(t *testing.T) {
			assert.True(t, validator.ValidPhoneEC("phone", phone).Check())
		})
	}

	invalid := []string{
		"",
		"0191234567",  // local number cannot start with 1
		"09912345",    // too short
		"09912345678", // too long
		"+1 555 123 4567",
		"abc1234567",
	}
	for _, phone := range invalid {
		t.Run("rejects "+phone, func(t *testing.T) {
			rule := validator.ValidPhoneEC("phone", phone)
			assert.False(t, rule.Check())
			assert.Equal(t, "must be a valid phone number", rule.Error.Message)
		})
	}
}
