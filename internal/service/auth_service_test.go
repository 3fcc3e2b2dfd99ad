package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studenthub/examgate/config"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
)

type fakeIdentityRepo struct {
	identities map[string]model.Identity
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{identities: make(map[string]model.Identity)}
}

func (f *fakeIdentityRepo) Create(identity *model.Identity) error {
	f.identities[identity.Key] = *identity
	return nil
}

func (f *fakeIdentityRepo) FindByKey(key string) (*model.Identity, error) {
	identity, ok := f.identities[key]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &identity, nil
}

func (f *fakeIdentityRepo) DeleteByKey(key string) error {
	delete(f.identities, key)
	return nil
}

func newAuthService(client examapi.Client, repo *fakeIdentityRepo) AuthService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	return NewAuthService(cfg, client, repo)
}

func TestLoginIssuesGatewayToken(t *testing.T) {
	client := &fakeClient{
		loginFn: func(_ context.Context, username, password string) (*examapi.LoginResult, error) {
			assert.Equal(t, "colan", username)
			assert.Equal(t, "pw", password)
			return &examapi.LoginResult{Token: "remote-tok", Name: "Cô Lan", Role: auth.RoleTeacher}, nil
		},
	}
	repo := newFakeIdentityRepo()
	svc := newAuthService(client, repo)

	resp, err := svc.Login(context.Background(), "colan", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Cô Lan", resp.Name)
	assert.Equal(t, auth.RoleTeacher, resp.Role)
	assert.NotEqual(t, "remote-tok", resp.Token, "the remote bearer token must never leave the gateway")

	ac, err := svc.Authenticate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Cô Lan", ac.Name)
	assert.Equal(t, auth.RoleTeacher, ac.Role)
	assert.Equal(t, "remote-tok", ac.RemoteToken)
}

func TestLoginFailurePropagates(t *testing.T) {
	client := &fakeClient{
		loginFn: func(context.Context, string, string) (*examapi.LoginResult, error) {
			return nil, examapi.ErrUnauthorized
		},
	}
	svc := newAuthService(client, newFakeIdentityRepo())

	_, err := svc.Login(context.Background(), "colan", "wrong")
	assert.ErrorIs(t, err, examapi.ErrUnauthorized)
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	svc := newAuthService(&fakeClient{}, newFakeIdentityRepo())

	_, err := svc.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestClearInvalidatesTheSession(t *testing.T) {
	client := &fakeClient{
		loginFn: func(context.Context, string, string) (*examapi.LoginResult, error) {
			return &examapi.LoginResult{Token: "remote-tok", Name: "An", Role: auth.RoleStudent}, nil
		},
	}
	repo := newFakeIdentityRepo()
	svc := newAuthService(client, repo)

	resp, err := svc.Login(context.Background(), "an", "pw")
	require.NoError(t, err)
	ac, err := svc.Authenticate(resp.Token)
	require.NoError(t, err)

	svc.Clear(ac.Key)

	// The gateway token is still a valid JWT but its identity is gone, so the
	// next request fails authentication and forces a fresh login.
	_, err = svc.Authenticate(resp.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
