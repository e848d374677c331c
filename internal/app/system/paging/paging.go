// internal/app/system/paging/paging.go

// Package paging parses the skip/limit paging parameters used by list
// endpoints. Invalid or absent values fall back to defaults rather than
// erroring: paging inputs narrow a list, they never fail a request.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size when no limit parameter is given.
const DefaultLimit = 100

// MaxLimit caps client-requested page sizes.
const MaxLimit = 1000

// ParseSkip extracts the "skip" query parameter. Returns 0 if absent,
// invalid, or negative.
func ParseSkip(r *http.Request) int64 {
	s := query.Get(r, "skip")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseLimit extracts the "limit" query parameter, clamped to MaxLimit.
// Returns DefaultLimit if absent, invalid, or non-positive.
func ParseLimit(r *http.Request) int64 {
	s := query.Get(r, "limit")
	if s == "" {
		return DefaultLimit
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
