package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Strength policy thresholds, matching the defaults of the web frontend's
// password checker.
const (
	minSecretLength  = 8
	minSecretLower   = 1
	minSecretUpper   = 1
	minSecretDigits  = 1
	minSecretSymbols = 1
)

const (
	tagStrongSecret = "strongsecret"
	tagEmailTLD     = "emailtld"
)

// inputValidator checks raw credentials. Each check is exposed separately
// so the service controls their order.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The only error is a duplicate tag name, which cannot happen here.
	_ = v.RegisterValidation(tagStrongSecret, func(fl validator.FieldLevel) bool {
		return isStrongSecret(fl.Field().String())
	})
	_ = v.RegisterValidation(tagEmailTLD, func(fl validator.FieldLevel) bool {
		return hasEmailTLD(fl.Field().String())
	})
	return &inputValidator{v: v}
}

func (iv *inputValidator) validIdentifier(identifier string) bool {
	return iv.v.Var(identifier, "email,"+tagEmailTLD) == nil
}

func (iv *inputValidator) strongSecret(secret string) bool {
	return iv.v.Var(secret, tagStrongSecret) == nil
}

func isStrongSecret(s string) bool {
	if utf8.RuneCountInString(s) < minSecretLength {
		return false
	}

	var lower, upper, digits, symbols int
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			digits++
		case !unicode.IsLetter(r):
			symbols++
		}
	}

	return lower >= minSecretLower &&
		upper >= minSecretUpper &&
		digits >= minSecretDigits &&
		symbols >= minSecretSymbols
}

// hasEmailTLD reports whether the domain of address ends in a top-level
// domain of at least two letters, or an IDNA "xn--" label.
func hasEmailTLD(address string) bool {
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return false
	}
	domain := strings.TrimSuffix(address[at+1:], ".")
	dot := strings.LastIndexByte(domain, '.')
	if dot < 0 {
		return false
	}

	tld := domain[dot+1:]
	if strings.HasPrefix(strings.ToLower(tld), "xn--") {
		return len(tld) > len("xn--")
	}
	if utf8.RuneCountInString(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
