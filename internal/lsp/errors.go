package lsp

import (
	"errors"
	"fmt"
)

// Standard errors returned by the mapping functions.
var (
	// ErrInvalidCoordinate indicates a negative editor line or column.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnreachableEnumValue indicates an editor enum value outside the known set.
	ErrUnreachableEnumValue = errors.New("unreachable enum value")

	// ErrInvalidResponse indicates an invalid response from the server.
	ErrInvalidResponse = errors.New("invalid response from server")
)

// CoordinateError reports which coordinate was rejected.
type CoordinateError struct {
	Field string
	Value int
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: %s %d is negative", ErrInvalidCoordinate, e.Field, e.Value)
}

// Unwrap returns ErrInvalidCoordinate.
func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// EnumError reports an unmapped enumeration value.
type EnumError struct {
	Enum  string
	Value int
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("%v: %s(%d)", ErrUnreachableEnumValue, e.Enum, e.Value)
}

// Unwrap returns ErrUnreachableEnumValue.
func (e *EnumError) Unwrap() error {
	return ErrUnreachableEnumValue
}
