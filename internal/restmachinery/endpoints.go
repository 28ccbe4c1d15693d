package restmachinery

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/openwms/openwms-go/sdk/meta"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Endpoints is an interface to be implemented by all REST API endpoints.
type Endpoints interface {
	// Register is invoked in order to register endpoints with a
	// *mux.Router.
	Register(router *mux.Router)
}

// BaseEndpoints provides common functionality for all endpoints.
type BaseEndpoints struct {
	TokenAuthFilter Filter
}

// InboundRequest represents an inbound REST API request.
type InboundRequest struct {
	W                   http.ResponseWriter
	R                   *http.Request
	ReqBodySchemaLoader gojsonschema.JSONLoader
	ReqBodyObj          interface{}
	// EndpointLogic returns the object to place inside the response envelope.
	// A nil object produces an envelope item without objects.
	EndpointLogic func() (interface{}, error)
	SuccessCode   int
}

func (b *BaseEndpoints) readAndValidateRequestBody(
	w http.ResponseWriter,
	r *http.Request,
	bodySchemaLoader gojsonschema.JSONLoader,
	bodyObj interface{},
) bool {
	defer r.Body.Close()
	bodyBytes, err := ioutil.ReadAll(r.Body)
	if err != nil {
		// Log it in case something is actually wrong...
		glog.Error(errors.Wrap(err, "error reading request body"))
		// But we're going to assume this is because the request body is missing, so
		// we'll treat it as a bad request.
		b.WriteError(w, &ErrBadRequest{Reason: "Could not read request body."})
		return false
	}
	if bodySchemaLoader != nil {
		var validationResult *gojsonschema.Result
		validationResult, err = gojsonschema.Validate(
			bodySchemaLoader,
			gojsonschema.NewBytesLoader(bodyBytes),
		)
		if err != nil {
			// The most likely scenario here is that the request body wasn't valid
			// JSON.
			glog.V(2).Info(errors.Wrap(err, "error validating request body"))
			b.WriteError(
				w,
				&ErrBadRequest{Reason: "Could not validate request body."},
			)
			return false
		}
		if !validationResult.Valid() {
			verrStrs := make([]string, len(validationResult.Errors()))
			for i, verr := range validationResult.Errors() {
				verrStrs[i] = verr.String()
			}
			b.WriteError(
				w,
				&ErrBadRequest{
					Reason:  "Request body failed JSON validation",
					Details: verrStrs,
				},
			)
			return false
		}
	}
	if bodyObj != nil {
		if err = json.Unmarshal(bodyBytes, bodyObj); err != nil {
			glog.V(2).Info(errors.Wrap(err, "error unmarshaling request body"))
			b.WriteError(
				w,
				&ErrBadRequest{Reason: "Could not unmarshal request body."},
			)
			return false
		}
	}
	return true
}

// ServeRequest reads and validates the request body, invokes the endpoint
// logic and writes its outcome as a Response envelope.
func (b *BaseEndpoints) ServeRequest(req InboundRequest) {
	if req.ReqBodySchemaLoader != nil || req.ReqBodyObj != nil {
		if !b.readAndValidateRequestBody(
			req.W,
			req.R,
			req.ReqBodySchemaLoader,
			req.ReqBodyObj,
		) {
			return
		}
	}
	respBodyObj, err := req.EndpointLogic()
	if err != nil {
		b.WriteError(req.W, err)
		return
	}
	item := meta.ResponseItem{
		HTTPStatus: meta.HTTPStatus(req.SuccessCode),
		Message:    http.StatusText(req.SuccessCode),
	}
	if respBodyObj != nil {
		objBytes, err := json.Marshal(respBodyObj)
		if err != nil {
			glog.Error(errors.Wrap(err, "error marshaling response object"))
			b.WriteError(req.W, &ErrInternalServer{})
			return
		}
		item.Obj = []json.RawMessage{objBytes}
	}
	b.WriteAPIResponse(
		req.W,
		req.SuccessCode,
		meta.Response{Items: []meta.ResponseItem{item}},
	)
}

// WriteError writes the given error as a Response envelope. Errors that do
// not implement Error are logged and reported as internal server errors.
func (b *BaseEndpoints) WriteError(w http.ResponseWriter, err error) {
	apiErr, ok := errors.Cause(err).(Error)
	if !ok {
		glog.Error(err)
		apiErr = &ErrInternalServer{}
	}
	b.WriteAPIResponse(
		w,
		apiErr.HTTPStatus(),
		meta.Response{
			Items: []meta.ResponseItem{
				{
					HTTPStatus: meta.HTTPStatus(apiErr.HTTPStatus()),
					Message:    apiErr.Error(),
					MessageKey: apiErr.MessageKey(),
				},
			},
		},
	)
}

// WriteAPIResponse writes the given Response as JSON.
func (b *BaseEndpoints) WriteAPIResponse(
	w http.ResponseWriter,
	statusCode int,
	response meta.Response,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	responseBody, err := json.Marshal(response)
	if err != nil {
		glog.Error(errors.Wrap(err, "error marshaling response body"))
	}
	if _, err := w.Write(responseBody); err != nil {
		glog.Error(errors.Wrap(err, "error writing response body"))
	}
}
