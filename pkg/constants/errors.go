package constants

import "errors"

// Errors
var (
	ErrFault              = errors.New("registry fault")
	ErrMissingField       = errors.New("required field is missing")
	ErrMissingBody        = errors.New("soap envelope has no body")
	ErrEmptyBody          = errors.New("soap body has no element")
	ErrUnexpectedResponse = errors.New("unexpected registry response")
	ErrNoEndpoint         = errors.New("endpoint url not set")
	ErrCacheMiss          = errors.New("cache miss")
)
