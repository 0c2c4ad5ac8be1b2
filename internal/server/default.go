package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/configuration"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/middleware"
	"github.com/peopledesk/peopledesk/pkg/serrors"
	"github.com/peopledesk/peopledesk/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   *application.Application
}

// Default assembles the shared middleware stack and the capability-gated
// router around the application's controllers.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Authorize(app.Authz(), app.Session(), authz.DefaultRouteViews()),
	}
	app.RegisterMiddleware(middlewares...)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, serrors.CodeRequestFailed, "page not found", nil)
	})

	return server.NewHTTPServer(app, notFound), nil
}
