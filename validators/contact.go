package validators

import (
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("missing required fields")

const (
	contactNameMax    = 120
	contactEmailMax   = 180
	contactMessageMax = 4000
)

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate normalizes the form in place and reports the first problem.
// Overlong fields are truncated, not rejected.
func (f *ContactForm) Validate() error {
	f.Name = NormalizeText(f.Name, contactNameMax)
	f.Email = strings.ToLower(NormalizeText(f.Email, contactEmailMax))
	f.Message = NormalizeText(f.Message, contactMessageMax)

	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrMissingFields
	}

	return EmailValidator(f.Email)
}

// NormalizeText trims the value and caps it at max characters.
func NormalizeText(v string, max int) string {
	s := strings.TrimSpace(v)

	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}

	return s
}
