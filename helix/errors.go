package helix

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParameter = errors.New("helix: missing required parameter")
	ErrOutOfRange       = errors.New("helix: parameter out of range")
	ErrInvalidEnumValue = errors.New("helix: invalid enum value")
	ErrTooLong          = errors.New("helix: parameter too long")

	ErrNoToken          = errors.New("helix: no access token available")
	ErrAuthFailed       = errors.New("helix: authentication failed")
	ErrTransport        = errors.New("helix: request failed")
	ErrCreateRequest    = errors.New("helix: failed to create request")
	ErrEncodeBody       = errors.New("helix: failed to encode request body")
	ErrDecode           = errors.New("helix: failed to decode response")
	ErrResponseTooLarge = errors.New("helix: response body too large")
	ErrAPI              = errors.New("helix: api error")
)

type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

type APIError struct {
	StatusCode int
	ErrorText  string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("helix: upstream returned status %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return errors.Is(target, ErrAPI)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
