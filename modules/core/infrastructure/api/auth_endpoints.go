// Package api is the REST boundary of the core module. Each endpoint set
// pins down the envelope its backend route actually uses, so the rest of
// the module only ever sees normalized payloads.
package api

import (
	"context"

	"github.com/peopledesk/peopledesk/pkg/session"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the session blob as the backend issues it.
type LoginResult struct {
	Employee session.Employee `json:"employee"`
	Token    string           `json:"token"`
}

type AuthEndpoints struct {
	client *transport.Client
}

func NewAuthEndpoints(client *transport.Client) *AuthEndpoints {
	return &AuthEndpoints{client: client}
}

func (e *AuthEndpoints) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	resp, err := transport.Post[LoginResult](ctx, e.client, "/auth/login", creds, transport.Bare())
	if err != nil {
		return LoginResult{}, err
	}
	return resp.Data, nil
}

// Logout tells the backend to revoke the token. Local teardown happens
// regardless of the outcome.
func (e *AuthEndpoints) Logout(ctx context.Context) error {
	_, err := transport.Post[struct{}](ctx, e.client, "/auth/logout", nil, transport.Bare())
	return err
}
