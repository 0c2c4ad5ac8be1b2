package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/core/domain/auth"
	"github.com/peopledesk/peopledesk/modules/core/infrastructure/api"
	"github.com/peopledesk/peopledesk/pkg/composables"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/session"
)

// AuthAPI is the slice of the auth endpoints the service consumes.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (api.LoginResult, error)
	Logout(ctx context.Context) error
}

type AuthService struct {
	endpoints AuthAPI
	sessions  *session.Provider
	publisher eventbus.EventBus
}

func NewAuthService(endpoints AuthAPI, sessions *session.Provider, publisher eventbus.EventBus) *AuthService {
	return &AuthService{
		endpoints: endpoints,
		sessions:  sessions,
		publisher: publisher,
	}
}

// Login authenticates against the backend and initializes the session.
// The session is only written once the backend has accepted the
// credentials; a rejected login leaves the current state untouched.
func (s *AuthService) Login(ctx context.Context, data *auth.LoginDTO) (session.Employee, error) {
	result, err := s.endpoints.Login(ctx, api.Credentials{
		Email:    data.Email,
		Password: data.Password,
	})
	if err != nil {
		return session.Employee{}, err
	}
	if err := s.sessions.Login(result.Employee, result.Token); err != nil {
		return session.Employee{}, err
	}
	s.publisher.Publish(auth.UserLoggedInEvent{Employee: result.Employee})
	return result.Employee, nil
}

// Logout tears the session down. Backend revocation is best effort: a dead
// backend must never trap the user in a logged-in state.
func (s *AuthService) Logout(ctx context.Context) error {
	employeeID := s.sessions.CurrentEmployeeID()
	if err := s.endpoints.Logout(ctx); err != nil {
		if logger, ok := composables.TryUseLogger(ctx); ok {
			logger.WithError(err).Warn("auth: backend logout failed, clearing local session anyway")
		}
	}
	if err := s.sessions.Logout(); err != nil {
		return err
	}
	s.publisher.Publish(auth.UserLoggedOutEvent{EmployeeID: employeeID})
	return nil
}
