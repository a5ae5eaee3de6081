package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	req := require.New(t)

	req.False(ValidateSignup("Alice Waters", "alice@example.com", "secret1").HasErrors())

	errs := ValidateSignup("", "", "")
	req.True(errs.HasErrors())
	req.Contains(errs, "full_name")
	req.Contains(errs, "email")
	req.Contains(errs, "password")

	errs = ValidateSignup("Alice", "not-an-email", "secret1")
	req.Contains(errs, "email")

	errs = ValidateSignup("Alice", "alice@example.com", "short")
	req.Contains(errs, "password")
}

func TestValidateLogin(t *testing.T) {
	req := require.New(t)

	req.False(ValidateLogin("alice@example.com", "anything").HasErrors())

	errs := ValidateLogin("", "")
	req.Contains(errs, "email")
	req.Contains(errs, "password")
}
