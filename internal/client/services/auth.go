// Package services contains the application services of the client. This
// file defines the authentication service: login, registration with local
// validation, and logout housekeeping.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/session"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

var (
	// ErrMissingFields is an input-validation failure raised before any
	// network call.
	ErrMissingFields = errors.New("all fields are required")

	// ErrEmailNotGmail rejects registration e-mails outside @gmail.com.
	// The backend only provisions Gmail accounts.
	ErrEmailNotGmail = errors.New("e-mail must be a valid Gmail address")
)

var gmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: authenticate and persist the returned identity locally.
//   - Register: validate locally, then create the account on the server.
//   - Logout: wipe the locally stored identity.
//   - Session: read the stored identity (empty when not logged in).
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (models.Session, error)
}

type authService struct {
	api   api.Client
	store session.Store
	log   logging.Logger
}

func NewAuthService(apiClient api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, store: store, log: log.With("component", "auth")}
}

// Login submits trimmed credentials and, on success, persists the resolved
// identity as one batch. A persistence failure is surfaced, never swallowed:
// a session the app cannot restore later is not a successful login.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	sess, err := a.api.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
	if err != nil {
		return models.Session{}, err
	}

	if err := a.store.SaveIdentity(ctx, *sess); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
		return models.Session{}, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "logged in", "user", sess.User, "role", sess.UserType)
	return *sess, nil
}

// Register runs the local checks the app performs before touching the
// network: the four mandatory fields and the Gmail-only e-mail pattern.
func (a *authService) Register(ctx context.Context, req api.RegisterRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return ErrMissingFields
	}
	if !gmailRe.MatchString(req.Email) {
		return ErrEmailNotGmail
	}
	return a.api.Register(ctx, req)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Session(ctx context.Context) (models.Session, error) {
	return a.store.Session(ctx)
}
