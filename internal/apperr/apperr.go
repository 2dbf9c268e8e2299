package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication"
	KindDomain         Kind = "domain"
)

// Error is a service-layer failure carrying a status hint. The transport
// layer maps it to an HTTP response; nothing below the handlers touches
// status codes directly.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Status: http.StatusBadRequest}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Status: http.StatusNotFound}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Status: http.StatusBadRequest}
}

func Domain(message string) *Error {
	return &Error{Kind: KindDomain, Message: message, Status: http.StatusBadRequest}
}

// StatusOf resolves the HTTP status for any error, defaulting to 400
// when no hint is present.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusBadRequest
}

func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
