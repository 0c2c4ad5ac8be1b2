package helpdesk

import (
	"github.com/peopledesk/peopledesk/modules/helpdesk/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/helpdesk/presentation/controllers"
	"github.com/peopledesk/peopledesk/modules/helpdesk/services"
	"github.com/peopledesk/peopledesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	app.RegisterServices(
		services.NewTicketService(api.NewTicketEndpoints(app.API()), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewTicketController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "helpdesk"
}
