// internal/app/system/inputval/inputval.go

// Package inputval validates user-supplied field values before they reach a
// store. Validation here is format-only; uniqueness and existence checks
// belong to the stores.
package inputval

import "strings"

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Name <a@b>") are rejected: stored emails are
// addresses only. Single-label domains are allowed for dev environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	if !validDotAtom(local) || !validDotAtom(domain) {
		return false
	}
	return true
}

// validDotAtom checks a dot-separated atom: no leading, trailing, or
// consecutive dots, no whitespace or angle brackets.
func validDotAtom(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return !strings.ContainsAny(s, " \t<>@")
}
