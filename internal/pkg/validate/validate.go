package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

// Algerian mobile numbers: local 0[5-7]XXXXXXXX or international prefix.
var phonePattern = regexp.MustCompile(`^(\+213|00213|0)(5|6|7)[0-9]{8}$`)

// Email reports whether address is a deliverable address and returns its
// normalized (trimmed, lowercased) form.
func Email(address string) (bool, string) {
	trimmed := strings.TrimSpace(address)
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false, ""
	}
	// Reject the "Name <addr>" form: forms expect a bare address.
	if parsed.Address != trimmed {
		return false, ""
	}
	return true, strings.ToLower(parsed.Address)
}

// Phone reports whether number is a valid Algerian mobile number.
// Spaces, dots and dashes are ignored.
func Phone(number string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(number)
	return phonePattern.MatchString(cleaned)
}
