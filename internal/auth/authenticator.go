package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tutorial_sync/internal/cms"
)

// AuthenticationError is returned when the login call is rejected.
type AuthenticationError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("login failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("login failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Credentials identify the admin account used to log in.
type Credentials struct {
	Email    string
	Password string
}

type TokenCache interface {
	Load() (*Token, error)
	Save(tok Token) error
}

type LoginClient interface {
	Login(ctx context.Context, email, password string) (*cms.LoginResponse, error)
}

// Authenticator builds request headers, logging in only when no cached
// token is available. A cached token is trusted as is; if the API rejects
// it the failing call reports that and nothing re-authenticates.
type Authenticator struct {
	client LoginClient
	cache  TokenCache
	creds  Credentials
	now    func() time.Time
	logger *slog.Logger
}

func NewAuthenticator(client LoginClient, cache TokenCache, creds Credentials, logger *slog.Logger) *Authenticator {
	return &Authenticator{
		client: client,
		cache:  cache,
		creds:  creds,
		now:    time.Now,
		logger: logger.With("component", "auth"),
	}
}

// Headers returns the Authorization, Content-Type and Accept headers for
// admin API calls.
func (a *Authenticator) Headers(ctx context.Context) (http.Header, error) {
	tok, err := a.cache.Load()
	if err != nil {
		a.logger.Warn("token cache unavailable, logging in", "error", err)
	}
	if tok != nil {
		a.logger.Debug("using cached token")
		return buildHeaders(tok.AccessToken), nil
	}

	tok, err = a.login(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Save(*tok); err != nil {
		a.logger.Warn("failed to cache token", "error", err)
	}

	return buildHeaders(tok.AccessToken), nil
}

func (a *Authenticator) login(ctx context.Context) (*Token, error) {
	if a.creds.Email == "" || a.creds.Password == "" {
		return nil, &AuthenticationError{Err: errors.New("no credentials configured")}
	}

	a.logger.Info("logging in", "email", a.creds.Email)

	resp, err := a.client.Login(ctx, a.creds.Email, a.creds.Password)
	if err != nil {
		var se *cms.StatusError
		if errors.As(err, &se) {
			return nil, &AuthenticationError{StatusCode: se.StatusCode, Body: se.Body, Err: err}
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if resp.AccessToken == "" {
		return nil, &AuthenticationError{StatusCode: http.StatusOK, Body: "response has no access_token"}
	}

	now := a.now()
	tok := &Token{
		AccessToken: resp.AccessToken,
		ObtainedAt:  now,
	}
	if resp.ExpiresIn > 0 {
		exp := now.Add(time.Duration(resp.ExpiresIn) * time.Second)
		tok.ExpiresAt = &exp
	}

	a.logger.Info("login succeeded")
	return tok, nil
}

func buildHeaders(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}
