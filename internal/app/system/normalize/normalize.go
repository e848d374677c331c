// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied identity
// fields before they are written to the store.
package normalize

import "strings"

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
