package logging

import (
	"github.com/peopledesk/peopledesk/modules/logging/handlers"
	"github.com/peopledesk/peopledesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app *application.Application) error {
	handlers.RegisterOperationEventHandlers(app)
	return nil
}

func (m *Module) Name() string {
	return "logging"
}
