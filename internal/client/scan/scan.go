// Package scan implements the QR-driven asset lookup: extracting a 6-digit
// inventory number from a scanned payload and resolving it against the
// directory snapshot fetched for the current screen.
package scan

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/sispat/patrimonio-cli/internal/client/models"
)

var (
	// ErrInvalidFormat means the payload carries no 6-digit run at all.
	ErrInvalidFormat = errors.New("payload carries no inventory number")

	// ErrNotFound means a number was extracted but no asset matches it.
	ErrNotFound = errors.New("no asset matches the inventory number")

	// ErrLocked means the surface already consumed a payload and has not
	// been reopened yet.
	ErrLocked = errors.New("scanning surface is locked")
)

var inventoryNumberRe = regexp.MustCompile(`[0-9]{6}`)

// ExtractInventoryNumber pulls the inventory number out of a scanned payload.
// The first 6-digit run wins; later runs are ignored even though inventory
// numbers are unique. Returns ErrInvalidFormat when no run exists.
func ExtractInventoryNumber(payload string) (string, error) {
	m := inventoryNumberRe.FindString(payload)
	if m == "" {
		return "", ErrInvalidFormat
	}
	return m, nil
}

// Directory is the request-scoped snapshot of the asset list, fetched once
// per screen activation and owned exclusively by that screen. Order is
// preserved as received from the server.
type Directory struct {
	assets []models.Asset
}

func NewDirectory(assets []models.Asset) *Directory {
	return &Directory{assets: assets}
}

func (d *Directory) Len() int { return len(d.assets) }

func (d *Directory) Assets() []models.Asset { return d.assets }

// Lookup scans linearly for the asset whose inventory number equals num
// (exact string equality). Misses return ErrNotFound, which is distinct
// from a malformed payload.
func (d *Directory) Lookup(num string) (*models.Asset, error) {
	for i := range d.assets {
		if d.assets[i].InventoryNumber == num {
			return &d.assets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, num)
}

// Surface models the scanning surface and its one-shot lock: the first
// payload read engages the lock regardless of outcome, and further reads are
// refused until the surface is reopened.
type Surface struct {
	dir    *Directory
	locked bool
}

func NewSurface(dir *Directory) *Surface {
	return &Surface{dir: dir}
}

func (s *Surface) Locked() bool { return s.locked }

// Reopen clears the lock, like reopening the camera view.
func (s *Surface) Reopen() { s.locked = false }

// Read consumes one scanned payload and resolves it against the directory.
func (s *Surface) Read(payload string) (*models.Asset, error) {
	if s.locked {
		return nil, ErrLocked
	}
	s.locked = true

	num, err := ExtractInventoryNumber(payload)
	if err != nil {
		return nil, err
	}
	return s.dir.Lookup(num)
}
