package restmachinery

import (
	"crypto/subtle"
	"net/http"
)

// Filter is an interface to be implemented by components that can wrap a
// new http.HandlerFunc that handles authentication around another
// http.HandlerFunc.
type Filter interface {
	// Decorate decorates one http.HandlerFunc with another
	Decorate(http.HandlerFunc) http.HandlerFunc
}

type tokenAuthFilter struct {
	*BaseEndpoints
	token string
}

// NewTokenAuthFilter returns a Filter that only admits requests whose
// Auth-Token header carries the given token.
func NewTokenAuthFilter(token string) Filter {
	return &tokenAuthFilter{
		BaseEndpoints: &BaseEndpoints{},
		token:         token,
	}
}

func (t *tokenAuthFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Auth-Token")
		if token == "" {
			t.WriteError(
				w,
				&ErrAuthentication{Reason: `"Auth-Token" header is missing.`},
			)
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(t.token)) != 1 {
			t.WriteError(
				w,
				&ErrAuthentication{Reason: "Invalid token."},
			)
			return
		}
		handle(w, r)
	}
}
