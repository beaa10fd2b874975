package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when the requested organization/repo pair doesn't exist.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by a missing organization/repo.
func IsNotFoundError(err error) bool {
	var nfe interface {
		IsNotFound() bool
	}
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// RateLimitError is returned when github signals quota exhaustion.
type RateLimitError string

// Error implements error interface.
func (e RateLimitError) Error() string {
	return string(e)
}

// IsRateLimit tells that this error is 'rate limit'.
// Returns always true.
func (RateLimitError) IsRateLimit() bool {
	return true
}

// IsRateLimitError checks if given error is caused by exhausted api quota.
func IsRateLimitError(err error) bool {
	var rle interface {
		IsRateLimit() bool
	}
	if errors.As(err, &rle) {
		return rle.IsRateLimit()
	}

	return false
}

// TransportError is returned on any network-layer failure,
// including non-2xx responses to avatar fetches.
type TransportError string

// Error implements error interface.
func (e TransportError) Error() string {
	return string(e)
}

// IsTransport tells that this error is 'transport'.
// Returns always true.
func (TransportError) IsTransport() bool {
	return true
}

// IsTransportError checks if given error is caused by a network failure.
func IsTransportError(err error) bool {
	var te interface {
		IsTransport() bool
	}
	if errors.As(err, &te) {
		return te.IsTransport()
	}

	return false
}

// EmptyInputError is returned when a gallery is requested for zero contributors.
type EmptyInputError string

// Error implements error interface.
func (e EmptyInputError) Error() string {
	return string(e)
}

// IsEmptyInput tells that this error is 'empty input'.
// Returns always true.
func (EmptyInputError) IsEmptyInput() bool {
	return true
}

// IsEmptyInputError checks if given error is caused by an empty contributor list.
func IsEmptyInputError(err error) bool {
	var eie interface {
		IsEmptyInput() bool
	}
	if errors.As(err, &eie) {
		return eie.IsEmptyInput()
	}

	return false
}
