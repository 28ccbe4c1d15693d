package restmachinery

import (
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/openwms/openwms-go/internal/file"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server is an interface for the component that responds to HTTP API requests
type Server interface {
	// Handler returns the http.Handler that serves all registered endpoints.
	Handler() http.Handler
	// ListenAndServe causes the server to start serving HTTP requests. It will
	// block until an error occurs and will return that error.
	ListenAndServe() error
}

type server struct {
	*BaseEndpoints
	config  Config
	handler http.Handler
}

// NewServer returns a REST API server
func NewServer(config Config, endpoints []Endpoints) Server {
	router := mux.NewRouter()
	router.StrictSlash(true)

	for _, eps := range endpoints {
		eps.Register(router)
	}

	s := &server{
		BaseEndpoints: &BaseEndpoints{},
		config:        config,
		handler: cors.New(
			cors.Options{
				AllowedMethods: []string{"DELETE", "GET", "POST", "PUT"},
				AllowedHeaders: []string{"Auth-Token", "Content-Type"},
			},
		).Handler(router),
	}

	// Health check
	router.HandleFunc(
		"/healthz",
		s.checkHealth, // No filters applied to this request
	).Methods(http.MethodGet)

	return s
}

func (s *server) Handler() http.Handler {
	return s.handler
}

func (s *server) ListenAndServe() error {
	address := fmt.Sprintf(":%d", s.config.Port())
	if s.config.TLSEnabled() {
		for _, path := range []string{
			s.config.TLSCertPath(),
			s.config.TLSKeyPath(),
		} {
			if !file.Exists(path) {
				return errors.Errorf(
					"TLS is enabled, but %s does not exist",
					path,
				)
			}
		}
		glog.Infof(
			"Stub server is listening with TLS enabled on 0.0.0.0:%d",
			s.config.Port(),
		)
		return http.ListenAndServeTLS(
			address,
			s.config.TLSCertPath(),
			s.config.TLSKeyPath(),
			s.handler,
		)
	}
	glog.Infof(
		"Stub server is listening without TLS on 0.0.0.0:%d",
		s.config.Port(),
	)
	return http.ListenAndServe(
		address,
		h2c.NewHandler(s.handler, &http2.Server{}),
	)
}

func (s *server) checkHealth(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}
