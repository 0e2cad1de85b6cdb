// Package cli implements the interactive screens of the patrimônio client:
// a REPL standing in for the mobile app's navigation, with one command per
// screen.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/config"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/rooms"
	"github.com/sispat/patrimonio-cli/internal/client/services"
	"github.com/sispat/patrimonio-cli/internal/client/session"
	"github.com/sispat/patrimonio-cli/internal/client/theme"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	auth    services.AuthService
	rooms   *rooms.Service
	theme   *theme.Manager
	store   session.Store
	session models.Session
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg, log, store)
}

// newApp wires the app around an already opened store. The store is owned
// from here on: a failed mount closes it, a successful one hands it to Run.
func newApp(ctx context.Context, cfg *config.Config, log logging.Logger, store session.Store) (*App, error) {
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, log)

	a := &App{
		config: cfg,
		log:    log,
		api:    apiClient,
		auth:   services.NewAuthService(apiClient, store, log),
		rooms:  rooms.NewService(apiClient, log),
		theme:  theme.NewManager(store, log),
		store:  store,
		reader: bufio.NewReader(os.Stdin),
	}

	// Root mount: restore the persisted identity and resolve the theme once.
	var err error
	if a.session, err = store.Session(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	if _, err := a.theme.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}
