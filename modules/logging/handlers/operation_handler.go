// Package handlers subscribes audit logging to the event bus: operation
// lifecycle and session events get one structured line each.
package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/peopledesk/peopledesk/modules/core/domain/auth"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/crud"
)

type OperationEventsHandler struct {
	logger *logrus.Logger
}

func RegisterOperationEventHandlers(app *application.Application) {
	handler := &OperationEventsHandler{logger: app.Logger()}
	bus := app.EventPublisher()
	bus.Subscribe(handler.onOperationFailed)
	bus.Subscribe(handler.onUserLoggedIn)
	bus.Subscribe(handler.onUserLoggedOut)
}

func (h *OperationEventsHandler) onOperationFailed(event crud.OperationFailed) {
	h.logger.WithFields(logrus.Fields{
		"operation": event.Operation,
		"at":        event.At,
	}).WithError(event.Err).Warn("operation rejected")
}

func (h *OperationEventsHandler) onUserLoggedIn(event auth.UserLoggedInEvent) {
	h.logger.WithFields(logrus.Fields{
		"employee_id": event.Employee.ID,
		"role":        event.Employee.Type.String(),
	}).Info("user logged in")
}

func (h *OperationEventsHandler) onUserLoggedOut(event auth.UserLoggedOutEvent) {
	h.logger.WithField("employee_id", event.EmployeeID).Info("user logged out")
}
