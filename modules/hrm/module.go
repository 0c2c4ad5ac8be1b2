package hrm

import (
	"github.com/peopledesk/peopledesk/modules/hrm/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/hrm/presentation/controllers"
	"github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	client := app.API()
	bus := app.EventPublisher()

	attendanceSvc := services.NewAttendanceService(api.NewAttendanceEndpoints(client), bus)
	conf := configuration.Use()
	app.RegisterServices(
		attendanceSvc,
		services.NewAttendancePoller(attendanceSvc, conf.Attendance, app.Logger()),
		services.NewLeaveService(api.NewLeaveEndpoints(client), bus),
		services.NewAdvanceSalaryService(api.NewAdvanceSalaryEndpoints(client), bus),
		services.NewEmployeeService(api.NewEmployeeEndpoints(client), bus),
		services.NewSalarySlipService(api.NewSalarySlipEndpoints(client), bus),
	)
	app.RegisterControllers(
		controllers.NewAttendanceController(app),
		controllers.NewLeaveController(app),
		controllers.NewAdvanceSalaryController(app),
		controllers.NewEmployeeController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "hrm"
}
