package restmachinery

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/golang/glog"
	"github.com/openwms/openwms-go/sdk/meta"
	"github.com/pkg/errors"
)

// AuthTokenHeader is the request header the backend authenticates with.
const AuthTokenHeader = "Auth-Token"

// BaseClient holds what every specialized client needs to talk to the
// backend. It holds no credentials or default headers; those are supplied
// per request.
type BaseClient struct {
	HTTPClient *http.Client
}

// NewBaseClient returns a *BaseClient whose TLS verification can optionally
// be disabled.
func NewBaseClient(allowInsecure bool) *BaseClient {
	return &BaseClient{
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: allowInsecure, // nolint: gosec
				},
			},
		},
	}
}

// AuthTokenHeaders returns a new header map carrying the given token.
func (b *BaseClient) AuthTokenHeaders(token string) map[string]string {
	return map[string]string{
		AuthTokenHeader: token,
	}
}

// ExecuteRequest submits the request and, if the request specifies a RespObj,
// decodes the response body into it.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	req OutboundRequest,
) error {
	resp, err := b.SubmitRequest(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return &meta.ErrMalformedEnvelope{
				Reason: errors.Wrap(err, "error unmarshaling response body").Error(),
			}
		}
	}
	return nil
}

// SubmitRequest submits the request and returns the raw response if it
// carries a 2xx status. Any other status is converted into an error: an
// *meta.ErrBackend when the body is a Response envelope with at least one
// item, an *meta.ErrMalformedEnvelope when the envelope has no items, and an
// *meta.ErrUnexpectedResponse otherwise.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reqBodyReader)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.URL,
		)
	}
	for k, v := range req.AuthHeaders {
		r.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	glog.V(4).Infof("sending %s %s", req.Method, req.URL)

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	glog.V(4).Infof("received %d for %s %s", resp.StatusCode, req.Method, req.URL)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		return nil, errorFromResponse(resp.StatusCode, bodyBytes)
	}
	return resp, nil
}

func errorFromResponse(statusCode int, bodyBytes []byte) error {
	envelope := meta.Response{}
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil ||
		envelope.Items == nil {
		return &meta.ErrUnexpectedResponse{
			StatusCode: statusCode,
			Body:       strings.TrimSpace(string(bodyBytes)),
		}
	}
	item, err := envelope.FirstItem()
	if err != nil {
		return err
	}
	backendErr := meta.NewErrBackend(item)
	if backendErr.HTTPStatus == 0 {
		backendErr.HTTPStatus = statusCode
	}
	return backendErr
}
