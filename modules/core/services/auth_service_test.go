package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/core/domain/auth"
	"github.com/peopledesk/peopledesk/modules/core/infrastructure/api"
	"github.com/peopledesk/peopledesk/modules/core/services"
	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/session"
)

type authAPIStub struct {
	result    api.LoginResult
	loginErr  error
	logoutErr error
	logouts   int
}

func (s *authAPIStub) Login(_ context.Context, _ api.Credentials) (api.LoginResult, error) {
	if s.loginErr != nil {
		return api.LoginResult{}, s.loginErr
	}
	return s.result, nil
}

func (s *authAPIStub) Logout(_ context.Context) error {
	s.logouts++
	return s.logoutErr
}

func newSessions(t *testing.T) (*session.Provider, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.NewProvider(path, logrus.New()), path
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	stub := &authAPIStub{result: api.LoginResult{
		Employee: session.Employee{ID: "7", Name: "Dana", Type: authz.RoleHR, JobRole: "HR Generalist"},
		Token:    "tok-1",
	}}
	sessions, _ := newSessions(t)
	bus := eventbus.NewEventPublisher(logrus.New())

	var loggedIn []auth.UserLoggedInEvent
	bus.Subscribe(func(ev auth.UserLoggedInEvent) { loggedIn = append(loggedIn, ev) })

	svc := services.NewAuthService(stub, sessions, bus)
	employee, err := svc.Login(context.Background(), &auth.LoginDTO{Email: "dana@acme.test", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "Dana", employee.Name)
	require.Equal(t, authz.RoleHR, sessions.Role())
	require.Equal(t, "tok-1", sessions.Token())
	require.Len(t, loggedIn, 1)
}

func TestAuthService_RejectedLoginLeavesSessionUntouched(t *testing.T) {
	stub := &authAPIStub{loginErr: errors.New("invalid credentials")}
	sessions, _ := newSessions(t)

	svc := services.NewAuthService(stub, sessions, eventbus.NewEventPublisher(logrus.New()))
	_, err := svc.Login(context.Background(), &auth.LoginDTO{Email: "x@acme.test", Password: "bad"})
	require.Error(t, err)

	_, ok := sessions.CurrentUser()
	require.False(t, ok)
}

func TestAuthService_LogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	stub := &authAPIStub{
		result:    api.LoginResult{Employee: session.Employee{ID: "7", Name: "Dana", Type: authz.RoleHR}, Token: "tok"},
		logoutErr: errors.New("backend down"),
	}
	sessions, path := newSessions(t)
	svc := services.NewAuthService(stub, sessions, eventbus.NewEventPublisher(logrus.New()))

	_, err := svc.Login(context.Background(), &auth.LoginDTO{Email: "dana@acme.test", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, 1, stub.logouts)
	_, ok := sessions.CurrentUser()
	require.False(t, ok)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}
