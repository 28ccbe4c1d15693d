package roles

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/sdk/core"
	"github.com/xeipuuv/gojsonschema"
)

// Endpoints serves the Roles collection the way the OpenWMS backend does.
type Endpoints struct {
	*restmachinery.BaseEndpoints
	RoleSchemaLoader gojsonschema.JSONLoader
	Service          Service
}

func (e *Endpoints) Register(router *mux.Router) {
	// List Roles
	router.HandleFunc(
		core.RolesPath,
		e.TokenAuthFilter.Decorate(e.list),
	).Methods(http.MethodGet)

	// Create Role
	router.HandleFunc(
		core.RolesPath,
		e.TokenAuthFilter.Decorate(e.create),
	).Methods(http.MethodPost)

	// Update Role
	router.HandleFunc(
		core.RolesPath,
		e.TokenAuthFilter.Decorate(e.update),
	).Methods(http.MethodPut)

	// Delete Role
	router.HandleFunc(
		core.RolesPath+"/{name}",
		e.TokenAuthFilter.Decorate(e.delete),
	).Methods(http.MethodDelete)
}

func (e *Endpoints) list(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.Service.List(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *Endpoints) create(w http.ResponseWriter, r *http.Request) {
	role := core.Role{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.RoleSchemaLoader,
			ReqBodyObj:          &role,
			EndpointLogic: func() (interface{}, error) {
				return e.Service.Create(r.Context(), role)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *Endpoints) update(w http.ResponseWriter, r *http.Request) {
	role := core.Role{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.RoleSchemaLoader,
			ReqBodyObj:          &role,
			EndpointLogic: func() (interface{}, error) {
				return e.Service.Update(r.Context(), role)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *Endpoints) delete(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil, e.Service.Delete(r.Context(), mux.Vars(r)["name"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}
