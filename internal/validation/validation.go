package validation

import (
	"fmt"
	"strings"
)

// FieldError reports a single field that failed validation. It is returned
// before any persistence attempt is made.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Err returns a FieldError for the first violated field in the given order,
// or nil when everything passed. Callers list their fields explicitly so the
// reported field is deterministic.
func (v Violations) Err(order ...string) error {
	for _, field := range order {
		if reason, ok := v[field]; ok {
			return &FieldError{Field: field, Reason: reason}
		}
	}
	return nil
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "must be a non-empty string"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must be a positive number"
	}
}

func Email(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" || !strings.Contains(value, "@") {
		v[field] = "must be a valid email address"
	}
}
