// Package session persists the small set of key/value strings that survive
// app restarts: the logged-in identity and the theme preference.
package session

import (
	"context"

	"github.com/sispat/patrimonio-cli/internal/client/models"
)

// Store keys. Values are plain strings; readers must tolerate absence.
const (
	KeyUser      = "user"
	KeyUserType  = "userType"
	KeyFirstName = "firstName"
	KeyTheme     = "theme"
)

// Store is the local session store.
//
// Get returns "" (and no error) for a missing key — "no session" and
// "no stored theme" are normal states, not failures.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// Session assembles the stored identity. A partially absent identity
	// comes back with empty fields.
	Session(ctx context.Context) (models.Session, error)

	// SaveIdentity persists user, userType and firstName as one batch:
	// either all three keys land or none do.
	SaveIdentity(ctx context.Context, s models.Session) error

	// Clear wipes every stored key (logout).
	Clear(ctx context.Context) error

	Close() error
}
