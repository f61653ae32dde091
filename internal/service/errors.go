package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrNotFound is returned when a session or submission does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when concurrent requests keep changing the same session
	ErrConflict = errors.New("conflicting update")

	// ErrUpstreamFailure is returned when the email provider or renderer fails
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrMisconfigured is returned when a required collaborator is not configured
	ErrMisconfigured = errors.New("service not configured")

	// ErrUnknownOption is returned for ids that are not in the catalog
	ErrUnknownOption = fmt.Errorf("%w: unknown catalog option", ErrInvalidInput)
)
