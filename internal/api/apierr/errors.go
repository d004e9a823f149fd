package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidLength      = "INVALID_LENGTH"
	CodeInvalidAlphabet    = "INVALID_ALPHABET"
	CodeRangeTooLarge      = "RANGE_TOO_LARGE"
	CodeEntropyUnavailable = "ENTROPY_UNAVAILABLE"
	CodeTokenNotFound      = "TOKEN_NOT_FOUND"
	CodeTokenTooShort      = "TOKEN_TOO_SHORT"
	CodeInvalidPurpose     = "INVALID_PURPOSE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map engine errors
	switch {
	case errors.Is(err, random.ErrInvalidLength):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLength, "Length must be positive"}}
	case errors.Is(err, random.ErrInvalidAlphabetSpec):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAlphabet, "Invalid alphabet specification"}}
	case errors.Is(err, random.ErrRangeTooLarge):
		return &httpError{http.StatusBadRequest, APIError{CodeRangeTooLarge, "Requested range is too large"}}
	case errors.Is(err, random.ErrEntropyUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeEntropyUnavailable, "Entropy source unavailable"}}

	// Map token errors
	case errors.Is(err, model.ErrTokenNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTokenNotFound, "Token not found"}}
	case errors.Is(err, model.ErrTokenTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeTokenTooShort, "Token length is below the minimum"}}
	case errors.Is(err, model.ErrInvalidPurpose):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPurpose, "Purpose is required"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
