package restmachinery

// OutboundRequest describes a single request to the backend.
type OutboundRequest struct {
	Method string
	// URL is the complete request URL. Callers assemble it from a root URL and
	// a suffix.
	URL         string
	AuthHeaders map[string]string
	Headers     map[string]string
	// ReqBodyObj is marshaled to JSON unless it is already a []byte, in which
	// case it is sent verbatim.
	ReqBodyObj interface{}
	// RespObj, when non-nil, receives the JSON-decoded response body.
	RespObj interface{}
}
