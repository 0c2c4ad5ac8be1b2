package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/session"
	"github.com/peopledesk/peopledesk/pkg/transport"
	"github.com/peopledesk/peopledesk/pkg/types"
)

// Controller registers one surface's routes on the shared router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires one domain's services, controllers and navigation into the
// application at boot.
type Module interface {
	Name() string
	Register(app *Application) error
}

type Options struct {
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
	Session  *session.Provider
	Authz    *authz.Service
	API      *transport.Client
}

type Application struct {
	eventBus eventbus.EventBus
	logger   *logrus.Logger
	session  *session.Provider
	authz    *authz.Service
	api      *transport.Client

	controllers map[string]Controller
	services    map[reflect.Type]any
	middleware  []mux.MiddlewareFunc
	navItems    []types.NavigationItem
}

func New(opts *Options) *Application {
	return &Application{
		eventBus:    opts.EventBus,
		logger:      opts.Logger,
		session:     opts.Session,
		authz:       opts.Authz,
		api:         opts.API,
		controllers: make(map[string]Controller),
		services:    make(map[reflect.Type]any),
	}
}

func (a *Application) EventPublisher() eventbus.EventBus { return a.eventBus }
func (a *Application) Logger() *logrus.Logger            { return a.logger }
func (a *Application) Session() *session.Provider        { return a.session }
func (a *Application) Authz() *authz.Service             { return a.authz }
func (a *Application) API() *transport.Client            { return a.api }

func (a *Application) RegisterServices(services ...any) {
	for _, service := range services {
		a.services[reflect.TypeOf(service)] = service
	}
}

// Use resolves a registered service by its concrete type.
func Use[T any](a *Application) T {
	var zero T
	service, ok := a.services[reflect.TypeOf(zero)]
	if !ok {
		panic(fmt.Sprintf("application: service %T not registered", zero))
	}
	return service.(T)
}

func (a *Application) RegisterControllers(controllers ...Controller) {
	for _, controller := range controllers {
		a.controllers[controller.Key()] = controller
	}
}

func (a *Application) Controllers() []Controller {
	out := make([]Controller, 0, len(a.controllers))
	for _, controller := range a.controllers {
		out = append(out, controller)
	}
	return out
}

func (a *Application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *Application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *Application) RegisterNavItems(items ...types.NavigationItem) {
	a.navItems = append(a.navItems, items...)
}

// NavItems returns the sidebar entries visible to the given role, pruned
// by the capability table.
func (a *Application) NavItems(role authz.Role) []types.NavigationItem {
	return types.FilterNavigation(a.navItems, a.authz, role)
}
