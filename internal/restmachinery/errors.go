package restmachinery

import (
	"fmt"
	"net/http"
)

// Error is implemented by errors that know which HTTP status and message key
// they should be reported with.
type Error interface {
	error
	HTTPStatus() int
	MessageKey() string
}

type ErrAuthentication struct {
	Reason string
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

func (e *ErrAuthentication) HTTPStatus() int {
	return http.StatusUnauthorized
}

func (e *ErrAuthentication) MessageKey() string {
	return "not.authenticated"
}

type ErrAuthorization struct {
	Reason string
}

func (e *ErrAuthorization) Error() string {
	if e.Reason == "" {
		return "The request is not authorized."
	}
	return fmt.Sprintf("The request is not authorized: %s", e.Reason)
}

func (e *ErrAuthorization) HTTPStatus() int {
	return http.StatusForbidden
}

func (e *ErrAuthorization) MessageKey() string {
	return "not.authorized"
}

type ErrBadRequest struct {
	Reason  string
	Details []string
}

func (e *ErrBadRequest) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("Bad request: %s", e.Reason)
	}
	msg := fmt.Sprintf("Bad request: %s:", e.Reason)
	for i, detail := range e.Details {
		msg = fmt.Sprintf("%s\n  %d. %s", msg, i, detail)
	}
	return msg
}

func (e *ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

func (e *ErrBadRequest) MessageKey() string {
	return "bad.request"
}

type ErrNotFound struct {
	Type string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found.", e.Type, e.ID)
}

func (e *ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

func (e *ErrNotFound) MessageKey() string {
	return "not.found"
}

type ErrConflict struct {
	Type   string
	ID     string
	Reason string
}

func (e *ErrConflict) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("A %s with the ID %q already exists.", e.Type, e.ID)
}

func (e *ErrConflict) HTTPStatus() int {
	return http.StatusConflict
}

func (e *ErrConflict) MessageKey() string {
	return "already.exists"
}

type ErrInternalServer struct{}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}

func (e *ErrInternalServer) HTTPStatus() int {
	return http.StatusInternalServerError
}

func (e *ErrInternalServer) MessageKey() string {
	return "server.error"
}
