package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/rooms"
)

// Rooms is the sala list screen, derived from a fresh directory fetch.
func (a *App) Rooms(ctx context.Context) {
	assets, err := a.api.ListAssets(ctx)
	if err != nil {
		a.log.Error(ctx, "loading directory", "error", err)
		fmt.Println("Could not load the rooms, try again later.")
		return
	}

	summaries := rooms.Summaries(assets)
	if len(summaries) == 0 {
		fmt.Println("No rooms found.")
		return
	}
	for _, s := range summaries {
		fmt.Printf("%-30s %d item(s)\n", s.Name, s.Count)
	}
}

// RoomDetail is the per-sala screen: assets filtered by room name, item
// count recomputed from the filtered result. Edit/delete hints only show up
// for coordinators.
func (a *App) RoomDetail(ctx context.Context, name string) {
	name, ok := a.askRoomName(name)
	if !ok {
		return
	}

	room, assets, err := a.rooms.Detail(ctx, models.Room{Name: name})
	if err != nil {
		a.log.Error(ctx, "loading room", "sala", name, "error", err)
		fmt.Println("Could not load the room, try again later.")
		return
	}

	fmt.Printf("Sala %s — %d item(s)\n", room.Name, room.ItemCount)
	for _, asset := range assets {
		fmt.Println(" ", asset)
	}

	if sess := a.mountSession(ctx); sess.IsCoordinator() {
		fmt.Println("Coordinator actions: editroom", room.Name, "| delroom", room.Name)
	}
}

// EditRoom submits a full-record replace. All fields are prompted, including
// the ones the user does not want to change; the item count is recomputed
// from the directory at mount so the replace never writes a stale count.
func (a *App) EditRoom(ctx context.Context, name string) {
	if !a.requireCoordinator(ctx) {
		return
	}
	name, ok := a.askRoomName(name)
	if !ok {
		return
	}

	room, _, err := a.rooms.Detail(ctx, models.Room{Name: name})
	if err != nil {
		a.log.Error(ctx, "loading room", "sala", name, "error", err)
		fmt.Println("Could not load the room, try again later.")
		return
	}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Description", &room.Description},
		{"Location", &room.Location},
		{"Image URL", &room.ImageURL},
		{"Responsible", &room.Responsible},
		{"Responsible e-mail", &room.ResponsibleEmail},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			a.log.Error(ctx, "reading input", "error", err)
			return
		}
		*f.dst = v
	}

	if err := a.rooms.Update(ctx, room); err != nil {
		a.log.Error(ctx, "editing room", "sala", name, "error", err)
		fmt.Println("Could not edit the room.")
		return
	}
	fmt.Println("Room edited successfully! The list reflects it on the next fetch.")
}

// DeleteRoom is the two-step delete: explicit confirmation, then the
// name-keyed call. On failure the user stays where they are.
func (a *App) DeleteRoom(ctx context.Context, name string) {
	if !a.requireCoordinator(ctx) {
		return
	}
	name, ok := a.askRoomName(name)
	if !ok {
		return
	}

	if !GetConfirm(a.reader, fmt.Sprintf("Delete sala %q? This cannot be undone.", name), os.Stdout) {
		fmt.Println("Cancelled.")
		return
	}

	if err := a.rooms.Delete(ctx, name); err != nil {
		a.log.Error(ctx, "deleting room", "sala", name, "error", err)
		fmt.Println("Could not delete the room.")
		return
	}
	fmt.Println("Room deleted successfully! Returning to the room list.")
	a.Rooms(ctx)
}

func (a *App) askRoomName(name string) (string, bool) {
	if name != "" {
		return name, true
	}
	name, err := getSimpleText(a.reader, "Sala name", os.Stdout)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// mountSession reads the identity from the local store the way a screen
// reads it at mount time.
func (a *App) mountSession(ctx context.Context) models.Session {
	sess, err := a.auth.Session(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session", "error", err)
		return models.Session{}
	}
	return sess
}

// requireCoordinator gates the mutation screens. Presentational only: the
// server still makes the authoritative check.
func (a *App) requireCoordinator(ctx context.Context) bool {
	if a.mountSession(ctx).IsCoordinator() {
		return true
	}
	fmt.Println("Only coordinators can manage rooms.")
	return false
}
