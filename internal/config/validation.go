package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var tablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration for values the control cannot use.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Combo.HistoryCapacity < 1 {
		errs = append(errs, ValidationError{
			Field:   "combo.history_capacity",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Combo.HistoryCapacity),
		})
	}
	if c.Combo.MaxVisible < 1 {
		errs = append(errs, ValidationError{
			Field:   "combo.max_visible",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Combo.MaxVisible),
		})
	}
	if c.Items.Table != "" && !tablePattern.MatchString(c.Items.Table) {
		errs = append(errs, ValidationError{
			Field:   "items.table",
			Message: fmt.Sprintf("%q is not a plain identifier", c.Items.Table),
		})
	}
	if c.Items.Watch && c.Items.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "items.watch",
			Message: "requires items.path",
		})
	}
	if c.Items.DebounceMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "items.debounce_ms",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
