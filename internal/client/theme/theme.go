// Package theme holds the process-wide theme state: loaded once from the
// session store at startup, falling back to the system preference, and
// written through on every toggle.
package theme

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/session"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

// detectSystem is a test seam for the system-preference probe.
var detectSystem = DetectSystem

// DetectSystem guesses the terminal's color scheme from COLORFGBG, the only
// broadly available hint. Low-numbered backgrounds are dark. When the
// variable is absent or unparseable the guess is light.
func DetectSystem() string {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return models.ThemeLight
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return models.ThemeLight
	}
	if bg <= 6 || bg == 8 {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// Manager is the explicit theme context passed down through the screens.
type Manager struct {
	store   session.Store
	log     logging.Logger
	current string
}

func NewManager(store session.Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log.With("component", "theme")}
}

// Load resolves the active theme once at root mount: the stored preference
// wins; with nothing stored the system preference applies (and is not
// persisted — only explicit toggles write).
func (m *Manager) Load(ctx context.Context) (string, error) {
	stored, err := m.store.Get(ctx, session.KeyTheme)
	if err != nil {
		return "", err
	}
	if stored == models.ThemeLight || stored == models.ThemeDark {
		m.current = stored
	} else {
		m.current = detectSystem()
	}
	m.log.Debug(ctx, "theme resolved", "theme", m.current, "stored", stored != "")
	return m.current, nil
}

// Current returns the active theme ("" before Load).
func (m *Manager) Current() string { return m.current }

// Toggle flips the active theme and persists the new preference.
func (m *Manager) Toggle(ctx context.Context) (string, error) {
	next := models.ThemeLight
	if m.current == models.ThemeLight {
		next = models.ThemeDark
	}
	if err := m.store.Set(ctx, session.KeyTheme, next); err != nil {
		return "", err
	}
	m.current = next
	return next, nil
}
