// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON request/response conventions shared by
// every API handler: responses are objects, failures are {"error": ...},
// and validation failures carry per-field messages.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// FieldErrors writes a 422 with per-field validation messages:
// {"error": {"email": "required", ...}}.
func FieldErrors(w http.ResponseWriter, fields map[string]string) {
	Write(w, http.StatusUnprocessableEntity, map[string]any{"error": fields})
}

// ErrEmptyBody is returned by Decode when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// Decode reads the request body into v. Unknown fields are ignored, matching
// the filter-document contract where unrecognized keys are dropped.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
