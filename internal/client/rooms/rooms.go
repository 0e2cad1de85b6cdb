// Package rooms implements the sala detail and management flow: client-side
// filtering of the asset directory by room, and the coordinator-gated edit
// and delete operations.
package rooms

import (
	"context"
	"strings"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

// FilterByRoom keeps the assets whose sala field equals name, compared
// case-insensitively. Input order is preserved.
func FilterByRoom(assets []models.Asset, name string) []models.Asset {
	out := make([]models.Asset, 0)
	for _, a := range assets {
		if strings.EqualFold(a.Room, name) {
			out = append(out, a)
		}
	}
	return out
}

// Summary is one row of the room list, derived from the directory.
type Summary struct {
	Name  string
	Count int
}

// Summaries derives the room list from the asset directory: distinct sala
// names in first-seen order, each with its asset count. The external contract
// has no room-list endpoint, so this is how the list screen is populated.
func Summaries(assets []models.Asset) []Summary {
	index := make(map[string]int)
	out := make([]Summary, 0)
	for _, a := range assets {
		key := strings.ToLower(a.Room)
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, Summary{Name: a.Room, Count: 1})
	}
	return out
}

// Service drives the room screens against the remote API.
type Service struct {
	api api.Client
	log logging.Logger
}

func NewService(apiClient api.Client, log logging.Logger) *Service {
	return &Service{api: apiClient, log: log.With("component", "rooms")}
}

// Detail fetches the directory and builds the room screen state: the assets
// filtered by room name and the metadata snapshot with its item count
// recomputed from the filtered result. Whatever count the snapshot carried
// is never trusted.
func (s *Service) Detail(ctx context.Context, snapshot models.Room) (models.Room, []models.Asset, error) {
	assets, err := s.api.ListAssets(ctx)
	if err != nil {
		return models.Room{}, nil, err
	}

	filtered := FilterByRoom(assets, snapshot.Name)
	snapshot.ItemCount = len(filtered)

	s.log.Debug(ctx, "room detail assembled", "sala", snapshot.Name, "items", snapshot.ItemCount)
	return snapshot, filtered, nil
}

// Update submits the full room record as a replace. All fields go on the
// wire, including the unchanged ones.
func (s *Service) Update(ctx context.Context, room models.Room) error {
	return s.api.UpdateRoom(ctx, room)
}

// Delete removes a room by name. The caller confirms beforehand and
// navigates away on success; the local copy is stale either way.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.api.DeleteRoom(ctx, name)
}
