package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid performs a syntactic check only. Deliverability is the
// backend's problem; the gateway must not block a form submit on DNS.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts "Name <a@b>"; the form sends a bare address.
	if addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	return strings.Contains(email[at+1:], ".")
}
