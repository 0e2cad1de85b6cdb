package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/rooms"
)

func roomsApp(input string, f *fakeDirectoryAPI, sess models.Session) *App {
	log := discardLogger()
	return &App{
		api:    f,
		auth:   &fakeAuth{sess: sess},
		rooms:  rooms.NewService(f, log),
		log:    log,
		reader: bufio.NewReader(strings.NewReader(input)),
	}
}

func coordinator() models.Session {
	return models.Session{User: "ana", UserType: models.RoleCoordinator, FirstName: "Ana"}
}

func professor() models.Session {
	return models.Session{User: "bia", UserType: models.RoleProfessor, FirstName: "Bia"}
}

func TestEditRoomSendsFullRecord(t *testing.T) {
	f := &fakeDirectoryAPI{}
	a := roomsApp("nova descrição\nbloco B\nhttp://img\nAna\nana@gmail.com\n", f, coordinator())

	a.EditRoom(context.Background(), "Lab A")

	require.Len(t, f.updated, 1)
	assert.Equal(t, models.Room{
		Name: "Lab A", Description: "nova descrição", Location: "bloco B",
		ImageURL: "http://img", Responsible: "Ana", ResponsibleEmail: "ana@gmail.com",
	}, f.updated[0])
}

func TestEditRoomCarriesRecomputedCount(t *testing.T) {
	f := &fakeDirectoryAPI{assets: []models.Asset{
		{InventoryNumber: "100001", Room: "Lab A"},
		{InventoryNumber: "100002", Room: "lab a"},
		{InventoryNumber: "100003", Room: "Lab A"},
		{InventoryNumber: "999999", Room: "Sala 2"},
	}}
	a := roomsApp("desc\nbloco B\n\nAna\nana@gmail.com\n", f, coordinator())

	a.EditRoom(context.Background(), "Lab A")

	// The replace must never zero the stored count: it carries the count
	// recomputed from the mount-time fetch.
	require.Len(t, f.updated, 1)
	assert.Equal(t, 3, f.updated[0].ItemCount)
	assert.Equal(t, 1, f.fetches)
}

func TestEditRoomGatedByRole(t *testing.T) {
	f := &fakeDirectoryAPI{}
	a := roomsApp("", f, professor())

	a.EditRoom(context.Background(), "Lab A")

	assert.Empty(t, f.updated)
}

func TestDeleteRoomConfirmedNavigatesBack(t *testing.T) {
	f := &fakeDirectoryAPI{assets: []models.Asset{{InventoryNumber: "100001", Room: "Lab A"}}}
	a := roomsApp("y\n", f, coordinator())

	a.DeleteRoom(context.Background(), "Lab A")

	require.Equal(t, []string{"Lab A"}, f.deleted)
	// Navigating back to the room list triggers a fresh fetch.
	assert.Equal(t, 1, f.fetches)
}

func TestDeleteRoomDeclinedDoesNothing(t *testing.T) {
	f := &fakeDirectoryAPI{}
	a := roomsApp("n\n", f, coordinator())

	a.DeleteRoom(context.Background(), "Lab A")

	assert.Empty(t, f.deleted)
	assert.Zero(t, f.fetches)
}

func TestDeleteRoomGatedByRole(t *testing.T) {
	f := &fakeDirectoryAPI{}
	a := roomsApp("y\n", f, professor())

	a.DeleteRoom(context.Background(), "Lab A")

	assert.Empty(t, f.deleted)
}

func TestDeleteRoomFailureStaysPut(t *testing.T) {
	f := &fakeDirectoryAPI{roomErr: assert.AnError}
	a := roomsApp("y\n", f, coordinator())

	a.DeleteRoom(context.Background(), "Lab A")

	// The delete was attempted but there is no navigation fetch afterwards.
	require.Len(t, f.deleted, 1)
	assert.Zero(t, f.fetches)
}
