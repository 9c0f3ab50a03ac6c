package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the answers file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the answers file has invalid syntax or structure.
	ConfigInvalid
	// ConfigValidationFailed indicates configuration validation failed.
	ConfigValidationFailed
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the answers file path, if the error came from one.
	File string
	// Field is the configuration field that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	prefix := "configuration error"
	if e.File != "" {
		prefix = fmt.Sprintf("configuration error in %s", e.File)
	}
	if e.Field != "" {
		prefix = fmt.Sprintf("%s [field: %s]", prefix, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Message: message,
	}
}

// NewFieldError creates a validation error for a specific field.
func NewFieldError(field, message string) *ConfigError {
	return &ConfigError{
		Type:    ConfigValidationFailed,
		Field:   field,
		Message: message,
	}
}

// NewFileError creates an error for a specific answers file.
func NewFileError(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
