package meta

import (
	"fmt"
	"net/http"
)

// ErrBackend represents an application-level failure reported by the backend
// inside a Response envelope.
type ErrBackend struct {
	// HTTPStatus is the status reported in the envelope's first item.
	HTTPStatus int `json:"httpStatus"`
	// Message is the backend's description of the failure.
	Message string `json:"message,omitempty"`
	// MessageKey is the backend's machine-readable key for Message.
	MessageKey string `json:"messageKey,omitempty"`
}

// NewErrBackend returns an *ErrBackend built from the given ResponseItem.
func NewErrBackend(item ResponseItem) *ErrBackend {
	return &ErrBackend{
		HTTPStatus: int(item.HTTPStatus),
		Message:    item.Message,
		MessageKey: item.MessageKey,
	}
}

func (e *ErrBackend) Error() string {
	if e.Message == "" {
		return fmt.Sprintf(
			"The backend reported a failure: %d %s",
			e.HTTPStatus,
			http.StatusText(e.HTTPStatus),
		)
	}
	return fmt.Sprintf(
		"The backend reported a failure: %d %s",
		e.HTTPStatus,
		e.Message,
	)
}

// ErrUnexpectedResponse represents a non-success HTTP response whose body
// could not be interpreted as a Response envelope. It carries whatever the
// transport provided.
type ErrUnexpectedResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body,omitempty"`
}

func (e *ErrUnexpectedResponse) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Received %d from the backend.", e.StatusCode)
	}
	return fmt.Sprintf(
		"Received %d from the backend: %s",
		e.StatusCode,
		e.Body,
	)
}

// ErrMalformedEnvelope represents a response body that is not shaped like
// the Response envelope the caller expected, e.g. one with no items.
type ErrMalformedEnvelope struct {
	Reason string `json:"reason"`
}

func (e *ErrMalformedEnvelope) Error() string {
	return fmt.Sprintf("Malformed response envelope: %s", e.Reason)
}
