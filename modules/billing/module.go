package billing

import (
	"github.com/peopledesk/peopledesk/modules/billing/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/billing/presentation/controllers"
	"github.com/peopledesk/peopledesk/modules/billing/services"
	"github.com/peopledesk/peopledesk/pkg/application"
)

const companyName = "PeopleDesk Ltd"

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	app.RegisterServices(
		services.NewInvoiceService(api.NewInvoiceEndpoints(app.API()), app.EventPublisher()),
		services.NewInvoiceExportService(companyName),
	)
	app.RegisterControllers(
		controllers.NewInvoiceController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "billing"
}
