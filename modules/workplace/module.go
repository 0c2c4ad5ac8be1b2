package workplace

import (
	"github.com/peopledesk/peopledesk/modules/workplace/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/workplace/presentation/controllers"
	"github.com/peopledesk/peopledesk/modules/workplace/services"
	"github.com/peopledesk/peopledesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	client := app.API()
	bus := app.EventPublisher()

	app.RegisterServices(
		services.NewEventService(api.NewEventEndpoints(client), bus),
		services.NewHolidayService(api.NewHolidayEndpoints(client), bus),
		services.NewAnnouncementService(api.NewAnnouncementEndpoints(client), bus),
		services.NewHandbookService(api.NewHandbookEndpoints(client), bus),
	)
	app.RegisterControllers(
		controllers.NewEventController(app),
		controllers.NewWorkplaceController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "workplace"
}
