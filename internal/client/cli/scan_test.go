package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/models"
)

type fakeDirectoryAPI struct {
	assets  []models.Asset
	listErr error
	fetches int
	deleted []string
	updated []models.Room
	roomErr error
}

func (f *fakeDirectoryAPI) ListAssets(context.Context) ([]models.Asset, error) {
	f.fetches++
	return f.assets, f.listErr
}
func (f *fakeDirectoryAPI) Login(context.Context, string, string) (*models.Session, error) {
	return nil, api.ErrLoginFailed
}
func (f *fakeDirectoryAPI) Register(context.Context, api.RegisterRequest) error { return nil }
func (f *fakeDirectoryAPI) UpdateRoom(_ context.Context, room models.Room) error {
	f.updated = append(f.updated, room)
	return f.roomErr
}
func (f *fakeDirectoryAPI) DeleteRoom(_ context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return f.roomErr
}

func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })
	return &copied
}

func scanApp(input string, f *fakeDirectoryAPI) *App {
	return &App{
		api:    f,
		log:    discardLogger(),
		reader: bufio.NewReader(strings.NewReader(input)),
	}
}

func TestScanResolvesAndCopies(t *testing.T) {
	copied := stubClipboard(t)
	f := &fakeDirectoryAPI{assets: []models.Asset{
		{InventoryNumber: "100001", Denomination: "Projetor", Room: "Lab A"},
	}}

	// One payload, copy confirmed, then an empty line closes the screen.
	a := scanApp("PAT 100001 sala 3\ny\n\n", f)
	a.Scan(context.Background())

	require.Equal(t, []string{"100001"}, *copied)
	// The screen fetched the directory exactly once for its whole visit.
	assert.Equal(t, 1, f.fetches)
}

func TestScanMultiplePayloadsOneFetch(t *testing.T) {
	copied := stubClipboard(t)
	f := &fakeDirectoryAPI{assets: []models.Asset{
		{InventoryNumber: "100001"},
		{InventoryNumber: "100002"},
	}}

	a := scanApp("100001\nn\ngarbage\n999999\n100002\nn\n\n", f)
	a.Scan(context.Background())

	assert.Empty(t, *copied)
	assert.Equal(t, 1, f.fetches)
}

func TestScanUnreachableDirectory(t *testing.T) {
	f := &fakeDirectoryAPI{listErr: api.ErrUnavailable}

	a := scanApp("", f)
	a.Scan(context.Background())

	assert.Equal(t, 1, f.fetches)
}
