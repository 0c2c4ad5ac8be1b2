package core

import (
	"github.com/peopledesk/peopledesk/modules/core/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/core/presentation/controllers"
	"github.com/peopledesk/peopledesk/modules/core/services"
	"github.com/peopledesk/peopledesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	app.RegisterServices(
		services.NewAuthService(api.NewAuthEndpoints(app.API()), app.Session(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewAuthController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
