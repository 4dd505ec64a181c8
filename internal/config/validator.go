package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "shell.regions")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid shell themes
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateShell()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateDispatch()...)

	return errors
}

func (c *Config) validateShell() []ValidationError {
	var errors []ValidationError

	if len(c.Shell.Regions) == 0 {
		errors = append(errors, ValidationError{
			Field:   "shell.regions",
			Value:   c.Shell.Regions,
			Message: "at least one region is required",
		})
	}

	seen := make(map[string]bool)
	for _, name := range c.Shell.Regions {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   "shell.regions",
				Value:   name,
				Message: "region names must not be blank",
			})
			continue
		}
		if seen[name] {
			errors = append(errors, ValidationError{
				Field:   "shell.regions",
				Value:   name,
				Message: "region names must be unique",
			})
		}
		seen[name] = true
	}

	if !slices.Contains(ValidThemes(), c.Shell.Theme) {
		errors = append(errors, ValidationError{
			Field:   "shell.theme",
			Value:   c.Shell.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.Shell.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "shell.width",
			Value:   c.Shell.Width,
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateDispatch() []ValidationError {
	var errors []ValidationError

	if c.Dispatch.QueueSize < 0 {
		errors = append(errors, ValidationError{
			Field:   "dispatch.queue_size",
			Value:   c.Dispatch.QueueSize,
			Message: "must not be negative",
		})
	}

	return errors
}
