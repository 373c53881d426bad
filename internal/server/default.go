package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/configuration"
	"github.com/campuskit/campuskit/pkg/constants"
	"github.com/campuskit/campuskit/pkg/httpapi"
	"github.com/campuskit/campuskit/pkg/middleware"
	"github.com/campuskit/campuskit/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.RequestParams(),
		middleware.RequireTenantFromHost(app),
		middleware.ActorFromHeader(options.Configuration.ActorIDHeader),
	}
	app.RegisterMiddleware(middlewares...)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "resource not found", nil)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})

	return server.NewHTTPServer(app, notFound, methodNotAllowed), nil
}
