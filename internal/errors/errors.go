package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies the fatal conditions of a pipeline run. Every error
// is terminal: the orchestrator logs it and the process exits non-zero.
type ErrorType string

const (
	ErrTypeNoInputFiles     ErrorType = "NO_INPUT_FILES"
	ErrTypeFileNotFound     ErrorType = "FILE_NOT_FOUND"
	ErrTypeRead             ErrorType = "READ"
	ErrTypeValueConversion  ErrorType = "VALUE_CONVERSION"
	ErrTypeMissingField     ErrorType = "MISSING_FIELD"
	ErrTypeInsufficientData ErrorType = "INSUFFICIENT_DATA"
	ErrTypeEmptyInput       ErrorType = "EMPTY_INPUT"
	ErrTypeWrite            ErrorType = "WRITE"
	ErrTypeConfig           ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err if it is (or wraps) an AppError,
// or the empty string otherwise.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}

// Helper functions for the pipeline error classes

// NewNoInputFilesError signals that the input directory contains no .dat files.
func NewNoInputFilesError(dir string) *AppError {
	return NewAppError(ErrTypeNoInputFiles, fmt.Sprintf("no .dat files present in %s", dir), nil).
		WithContext("input_dir", dir)
}

// NewFileNotFoundError signals that an input file path does not exist.
func NewFileNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeFileNotFound, fmt.Sprintf("file not found: %s", path), cause).
		WithContext("path", path)
}

// NewReadError signals an I/O or parse failure while reading an input file.
func NewReadError(path string, cause error) *AppError {
	return NewAppError(ErrTypeRead, fmt.Sprintf("error reading file %s", path), cause).
		WithContext("path", path)
}

// NewValueConversionError signals a non-integer salary or allowances field.
func NewValueConversionError(row []string, cause error) *AppError {
	return NewAppError(ErrTypeValueConversion, fmt.Sprintf("error converting salary to int in row %v", row), cause).
		WithContext("row", row)
}

// NewMissingFieldError signals a row too short to hold the salary columns.
func NewMissingFieldError(row []string) *AppError {
	return NewAppError(ErrTypeMissingField, fmt.Sprintf("error accessing salary data in row %v", row), nil).
		WithContext("row", row)
}

// NewInsufficientDataError signals fewer than two distinct gross salary values.
func NewInsufficientDataError(distinctCount int) *AppError {
	return NewAppError(ErrTypeInsufficientData,
		fmt.Sprintf("need at least 2 distinct gross salary values, got %d", distinctCount), nil).
		WithContext("distinct_count", distinctCount)
}

// NewEmptyInputError signals that no rows survived the merge.
func NewEmptyInputError() *AppError {
	return NewAppError(ErrTypeEmptyInput, "no rows to summarize", nil)
}

// NewWriteError signals an I/O failure while writing the output workbook.
func NewWriteError(path string, cause error) *AppError {
	return NewAppError(ErrTypeWrite, fmt.Sprintf("error writing to output file %s", path), cause).
		WithContext("path", path)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
