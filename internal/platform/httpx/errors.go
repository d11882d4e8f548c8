package httpx

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel errors for the domain layer. Services wrap them with a
// user-facing detail, e.g. fmt.Errorf("%w: invalid password", ErrValidation).
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate entry")
)

// RespondError maps domain errors to HTTP responses. Anything outside the
// sentinel taxonomy is reported as a generic server error so internal detail
// never reaches the caller.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, clientMessage(err, ErrValidation))
	case errors.Is(err, ErrDuplicate):
		Error(w, http.StatusBadRequest, clientMessage(err, ErrDuplicate))
	case errors.Is(err, ErrTokenExpired):
		Error(w, http.StatusUnauthorized, clientMessage(err, ErrTokenExpired))
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, clientMessage(err, ErrUnauthorized))
	case errors.Is(err, ErrForbidden):
		Error(w, http.StatusForbidden, clientMessage(err, ErrForbidden))
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, clientMessage(err, ErrNotFound))
	default:
		Error(w, http.StatusInternalServerError, "server error")
	}
}

// IsClientError reports whether err belongs to the 4xx part of the taxonomy.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound)
}

// clientMessage strips the sentinel prefix so a wrapped error surfaces only
// its user-facing detail.
func clientMessage(err error, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
