// Package validate implements declarative per-endpoint field validation.
//
// Each write endpoint declares its rules in order; Collect evaluates every
// rule and returns all violations at once, preserving declaration order.
// This collect-all behaviour (rather than fail-fast) is part of the API
// contract — clients depend on seeing every failed field in one response.
package validate

import "strings"

// FieldError reports a single violated rule. The JSON shape is part of the
// API error contract: {"field": "...", "message": "..."}.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule is one field constraint. check returns true when the value passes.
type Rule struct {
	Field   string
	Message string
	value   string
	check   func(string) bool
}

// Required declares that value must be non-empty (after trimming
// whitespace) for the named field.
func Required(field, value, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		value:   value,
		check:   func(v string) bool { return strings.TrimSpace(v) != "" },
	}
}

// Collect evaluates every rule and returns the violations in the order the
// rules were declared. A nil result means the input is valid.
func Collect(rules ...Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if !r.check(r.value) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}
