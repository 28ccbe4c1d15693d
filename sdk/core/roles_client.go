package core

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openwms/openwms-go/sdk/internal/restmachinery"
	"github.com/openwms/openwms-go/sdk/meta"
	"github.com/pkg/errors"
)

// RolesPath is the path, relative to a root URL, of the Roles collection.
const RolesPath = "/roles"

// RolesClient is the specialized client for managing Roles with the OpenWMS
// API. Each operation issues exactly one request and never retries. All
// operations are safe for concurrent use, including with differing
// CallContexts.
type RolesClient interface {
	// Add creates a Role that does not yet exist by POSTing it to
	// callCtx.RootURL + urlSuffix and returns the Role as stored by the
	// backend.
	Add(
		ctx context.Context,
		urlSuffix string,
		callCtx CallContext,
		role Role,
	) (Role, error)
	// AddFromBytes is like Add, but sends the given JSON verbatim.
	AddFromBytes(
		ctx context.Context,
		urlSuffix string,
		callCtx CallContext,
		roleBytes []byte,
	) (Role, error)
	// Delete sends a DELETE to callCtx.RootURL + urlSuffix.
	Delete(ctx context.Context, urlSuffix string, callCtx CallContext) error
	// Save updates an existing Role by PUTting it to callCtx.RootURL +
	// urlSuffix and returns the Role as returned, and possibly modified, by the
	// backend.
	Save(
		ctx context.Context,
		urlSuffix string,
		callCtx CallContext,
		role Role,
	) (Role, error)
	// SaveFromBytes is like Save, but sends the given JSON verbatim.
	SaveFromBytes(
		ctx context.Context,
		urlSuffix string,
		callCtx CallContext,
		roleBytes []byte,
	) (Role, error)
	// GetAll retrieves all Roles from callCtx.RootURL + RolesPath.
	GetAll(ctx context.Context, callCtx CallContext) ([]Role, error)
}

type rolesClient struct {
	*restmachinery.BaseClient
}

// NewRolesClient returns a specialized client for managing Roles.
func NewRolesClient(allowInsecure bool) RolesClient {
	return &rolesClient{
		BaseClient: restmachinery.NewBaseClient(allowInsecure),
	}
}

func (r *rolesClient) Add(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	role Role,
) (Role, error) {
	return r.add(ctx, urlSuffix, callCtx, role)
}

func (r *rolesClient) AddFromBytes(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	roleBytes []byte,
) (Role, error) {
	return r.add(ctx, urlSuffix, callCtx, roleBytes)
}

func (r *rolesClient) add(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	reqBodyObj interface{},
) (Role, error) {
	envelope := meta.Response{}
	if err := r.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			URL:         callCtx.RootURL + urlSuffix,
			AuthHeaders: r.AuthTokenHeaders(callCtx.AuthToken),
			Headers:     jsonContentHeaders(),
			ReqBodyObj:  reqBodyObj,
			RespObj:     &envelope,
		},
	); err != nil {
		return Role{}, err
	}
	role := Role{}
	err := envelope.FirstObject(&role)
	return role, err
}

func (r *rolesClient) Delete(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
) error {
	return r.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			URL:         callCtx.RootURL + urlSuffix,
			AuthHeaders: r.AuthTokenHeaders(callCtx.AuthToken),
		},
	)
}

func (r *rolesClient) Save(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	role Role,
) (Role, error) {
	return r.save(ctx, urlSuffix, callCtx, role)
}

func (r *rolesClient) SaveFromBytes(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	roleBytes []byte,
) (Role, error) {
	return r.save(ctx, urlSuffix, callCtx, roleBytes)
}

func (r *rolesClient) save(
	ctx context.Context,
	urlSuffix string,
	callCtx CallContext,
	reqBodyObj interface{},
) (Role, error) {
	respBody := json.RawMessage{}
	if err := r.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPut,
			URL:         callCtx.RootURL + urlSuffix,
			AuthHeaders: r.AuthTokenHeaders(callCtx.AuthToken),
			Headers:     jsonContentHeaders(),
			ReqBodyObj:  reqBodyObj,
			RespObj:     &respBody,
		},
	); err != nil {
		return Role{}, err
	}
	return savedRole(respBody)
}

func (r *rolesClient) GetAll(
	ctx context.Context,
	callCtx CallContext,
) ([]Role, error) {
	envelope := meta.Response{}
	if err := r.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			URL:         callCtx.RootURL + RolesPath,
			AuthHeaders: r.AuthTokenHeaders(callCtx.AuthToken),
			RespObj:     &envelope,
		},
	); err != nil {
		return nil, err
	}
	roles := []Role{}
	if err := envelope.FirstObject(&roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// savedRole extracts the saved Role from a PUT response body. The backend
// answers a PUT either with the bare entity or with the entity wrapped in a
// Response envelope.
func savedRole(respBody json.RawMessage) (Role, error) {
	envelope := meta.Response{}
	if err := json.Unmarshal(respBody, &envelope); err == nil &&
		envelope.Items != nil {
		role := Role{}
		err = envelope.FirstObject(&role)
		return role, err
	}
	role := Role{}
	if err := json.Unmarshal(respBody, &role); err != nil {
		return Role{}, &meta.ErrMalformedEnvelope{
			Reason: errors.Wrap(err, "error unmarshaling saved role").Error(),
		}
	}
	return role, nil
}

func jsonContentHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
	}
}
