package restmachinery

import (
	"context"
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openwms/openwms-go/sdk/meta"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testAuthToken = "11235813213455"

func TestNewBaseClient(t *testing.T) {
	client := NewBaseClient(true)
	require.IsType(t, &http.Transport{}, client.HTTPClient.Transport)
	require.IsType(
		t,
		&tls.Config{},
		client.HTTPClient.Transport.(*http.Transport).TLSClientConfig,
	)
	require.True(
		t,
		client.HTTPClient.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify, // nolint: lll
	)
}

func TestAuthTokenHeaders(t *testing.T) {
	client := NewBaseClient(false)
	headers := client.AuthTokenHeaders(testAuthToken)
	require.Equal(t, map[string]string{"Auth-Token": testAuthToken}, headers)
	// Every call yields a fresh map
	headers[AuthTokenHeader] = "mutated"
	require.Equal(
		t,
		testAuthToken,
		client.AuthTokenHeaders(testAuthToken)[AuthTokenHeader],
	)
}

func TestExecuteRequest(t *testing.T) {
	testCases := []struct {
		name       string
		handler    http.HandlerFunc
		req        func(serverURL string) OutboundRequest
		assertions func(t *testing.T, req OutboundRequest, err error)
	}{
		{
			name: "request body and headers are sent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				defer r.Body.Close()
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/roles", r.URL.Path)
				require.Equal(t, testAuthToken, r.Header.Get("Auth-Token"))
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				bodyBytes, err := ioutil.ReadAll(r.Body)
				require.NoError(t, err)
				require.JSONEq(t, `{"name":"ADMIN"}`, string(bodyBytes))
				w.WriteHeader(http.StatusCreated)
				fmt.Fprintln(w, `{"items":[]}`)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method:      http.MethodPost,
					URL:         serverURL + "/roles",
					AuthHeaders: map[string]string{AuthTokenHeader: testAuthToken},
					Headers:     map[string]string{"Content-Type": "application/json"},
					ReqBodyObj:  map[string]string{"name": "ADMIN"},
					RespObj:     &meta.Response{},
				}
			},
			assertions: func(t *testing.T, req OutboundRequest, err error) {
				require.NoError(t, err)
				require.Empty(t, req.RespObj.(*meta.Response).Items)
			},
		},
		{
			name: "byte request bodies are sent verbatim",
			handler: func(w http.ResponseWriter, r *http.Request) {
				defer r.Body.Close()
				bodyBytes, err := ioutil.ReadAll(r.Body)
				require.NoError(t, err)
				require.Equal(t, `{"name":"ADMIN","extra":true}`, string(bodyBytes))
				w.WriteHeader(http.StatusOK)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method:     http.MethodPut,
					URL:        serverURL + "/roles",
					ReqBodyObj: []byte(`{"name":"ADMIN","extra":true}`),
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "unparseable success body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "<html></html>")
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method:  http.MethodGet,
					URL:     serverURL + "/roles",
					RespObj: &meta.Response{},
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrMalformedEnvelope{}, err)
			},
		},
		{
			name: "backend reported failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				fmt.Fprintln(
					w,
					`{"items":[{"httpStatus":"409","message":"Role exists"}]}`,
				)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodPost,
					URL:    serverURL + "/roles",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrBackend{}, err)
				require.Equal(t, http.StatusConflict, err.(*meta.ErrBackend).HTTPStatus)
				require.Equal(t, "Role exists", err.(*meta.ErrBackend).Message)
			},
		},
		{
			name: "backend reported failure without status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprintln(w, `{"items":[{"message":"Role is immutable"}]}`)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodPut,
					URL:    serverURL + "/roles",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrBackend{}, err)
				require.Equal(
					t,
					http.StatusForbidden,
					err.(*meta.ErrBackend).HTTPStatus,
				)
			},
		},
		{
			name: "backend reported failure with a status name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(
					w,
					`{"items":[{"httpStatus":"NOT_FOUND","message":"Role ADMIN not found"}]}`, // nolint: lll
				)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodPost,
					URL:    serverURL + "/roles",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrBackend{}, err)
				require.Equal(t, http.StatusNotFound, err.(*meta.ErrBackend).HTTPStatus)
				require.Equal(t, "Role ADMIN not found", err.(*meta.ErrBackend).Message)
			},
		},
		{
			name: "backend reported failure with an unrecognized status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				fmt.Fprintln(
					w,
					`{"items":[{"httpStatus":"UNHAPPY","message":"Role ADMIN exists"}]}`, // nolint: lll
				)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodPost,
					URL:    serverURL + "/roles",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrBackend{}, err)
				require.Equal(t, http.StatusConflict, err.(*meta.ErrBackend).HTTPStatus)
				require.Equal(t, "Role ADMIN exists", err.(*meta.ErrBackend).Message)
			},
		},
		{
			name: "failure with an empty envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprintln(w, `{"items":[]}`)
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodDelete,
					URL:    serverURL + "/roles/ADMIN",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrMalformedEnvelope{}, err)
			},
		},
		{
			name: "failure without an envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprintln(w, "bad gateway")
			},
			req: func(serverURL string) OutboundRequest {
				return OutboundRequest{
					Method: http.MethodGet,
					URL:    serverURL + "/roles",
				}
			},
			assertions: func(t *testing.T, _ OutboundRequest, err error) {
				require.Error(t, err)
				require.IsType(t, &meta.ErrUnexpectedResponse{}, err)
				require.Equal(
					t,
					http.StatusBadGateway,
					err.(*meta.ErrUnexpectedResponse).StatusCode,
				)
				require.Equal(t, "bad gateway", err.(*meta.ErrUnexpectedResponse).Body)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()
			req := testCase.req(server.URL)
			err := NewBaseClient(false).ExecuteRequest(context.Background(), req)
			testCase.assertions(t, req, err)
		})
	}
}

func TestExecuteRequestTransportFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	serverURL := server.URL
	server.Close()
	err := NewBaseClient(false).ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			URL:    serverURL + "/roles",
		},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error invoking API")
}

func TestExecuteRequestCanceledContext(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewBaseClient(false).ExecuteRequest(
		ctx,
		OutboundRequest{
			Method: http.MethodGet,
			URL:    server.URL + "/roles",
		},
	)
	require.Error(t, err)
	require.Contains(t, errors.Cause(err).Error(), context.Canceled.Error())
}
