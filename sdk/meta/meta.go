package meta

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Response is the envelope in which the OpenWMS backend wraps every result,
// successful or not.
type Response struct {
	// Items holds one entry per outcome reported by the backend. Single-resource
	// operations only ever report one.
	Items []ResponseItem `json:"items"`
}

// ResponseItem is a single outcome within a Response.
type ResponseItem struct {
	// Message is a human-readable description of the outcome.
	Message string `json:"message,omitempty"`
	// MessageKey is a machine-readable key identifying Message.
	MessageKey string `json:"messageKey,omitempty"`
	// HTTPStatus is the status the backend reports for this outcome. It may
	// differ from the status line of the HTTP response that carried it.
	HTTPStatus HTTPStatus `json:"httpStatus,omitempty"`
	// Obj holds the nested result objects. Decoding is deferred until the
	// caller knows what type to decode into.
	Obj []json.RawMessage `json:"obj,omitempty"`
}

// FirstItem returns the first ResponseItem of the Response or an
// *ErrMalformedEnvelope if there is none.
func (r Response) FirstItem() (ResponseItem, error) {
	if len(r.Items) == 0 {
		return ResponseItem{}, &ErrMalformedEnvelope{
			Reason: "response contains no items",
		}
	}
	return r.Items[0], nil
}

// FirstObject decodes the first nested object of the first ResponseItem into
// obj.
func (r Response) FirstObject(obj interface{}) error {
	item, err := r.FirstItem()
	if err != nil {
		return err
	}
	if len(item.Obj) == 0 {
		return &ErrMalformedEnvelope{
			Reason: "first response item contains no objects",
		}
	}
	if err := json.Unmarshal(item.Obj[0], obj); err != nil {
		return &ErrMalformedEnvelope{
			Reason: errors.Wrap(err, "error unmarshaling first object").Error(),
		}
	}
	return nil
}

// HTTPStatus is an HTTP status code as carried inside a ResponseItem. The
// backend serializes it as a string ("404"), or by name ("NOT_FOUND"), but a
// bare number is accepted as well.
type HTTPStatus int

// statusesByName maps upper snake case status names ("NOT_FOUND") to codes.
var statusesByName = map[string]int{}

func init() {
	for code := 100; code < 600; code++ {
		if text := http.StatusText(code); text != "" {
			statusesByName[statusName(text)] = code
		}
	}
}

func statusName(text string) string {
	return strings.Map(
		func(r rune) rune {
			switch r {
			case ' ', '-':
				return '_'
			case '\'':
				return -1
			}
			return unicode.ToUpper(r)
		},
		text,
	)
}

// MarshalJSON serializes the status the way the backend does.
func (h HTTPStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(h)))
}

// UnmarshalJSON accepts a JSON number, a numeric string, a status name such
// as "NOT_FOUND" or "404 NOT_FOUND", or null. Anything else decodes to 0 so
// that an unrecognized status never hides the rest of the ResponseItem.
func (h *HTTPStatus) UnmarshalJSON(data []byte) error {
	*h = 0
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return nil
		}
		str = num.String()
	}
	str = strings.TrimSpace(str)
	if status, err := strconv.Atoi(str); err == nil {
		*h = HTTPStatus(status)
		return nil
	}
	fields := strings.Fields(str)
	if len(fields) > 1 {
		if status, err := strconv.Atoi(fields[0]); err == nil {
			*h = HTTPStatus(status)
			return nil
		}
	}
	*h = HTTPStatus(statusesByName[statusName(str)])
	return nil
}
