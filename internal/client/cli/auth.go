package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login is the login screen: credentials in, identity persisted, home screen
// next. Transport failure gets its own message, every other failure the
// generic one.
func (a *App) Login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter user", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "reading input", "error", err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "reading input", "error", err)
		return
	}

	sess, err := a.auth.Login(ctx, username, password)
	switch {
	case err == nil:
		a.session = sess
		fmt.Printf("Login successful! Welcome, %s.\n", sess.FirstName)
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Could not reach the server, try again later.")
	default:
		a.log.Warn(ctx, "login rejected", "error", err)
		fmt.Println("Login failed, check your credentials and try again.")
	}
}

// Register is the cadastro screen. Local validation runs before any network
// call; server-side failures map per status to their own messages.
func (a *App) Register(ctx context.Context) {
	req := api.RegisterRequest{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"User", &req.User},
		{"E-mail", &req.Email},
		{"Group (Coordenador/Professor)", &req.Group},
		{"Sala", &req.Room},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			a.log.Error(ctx, "reading input", "error", err)
			return
		}
		*f.dst = v
	}
	pw, err := getPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "reading input", "error", err)
		return
	}
	req.Password = pw

	err = a.auth.Register(ctx, req)
	switch {
	case err == nil:
		fmt.Println("Registration successful! You can now log in.")
	case errors.Is(err, services.ErrMissingFields):
		fmt.Println("All fields are required.")
	case errors.Is(err, services.ErrEmailNotGmail):
		fmt.Println("The e-mail must be a valid Gmail address (e.g. usuario@gmail.com).")
	case errors.Is(err, api.ErrValidation):
		fmt.Println("Registration rejected:", err)
	case errors.Is(err, api.ErrAlreadyRegistered):
		fmt.Println("User or e-mail already registered.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Unexpected error. Try again later.")
	default:
		a.log.Warn(ctx, "registration failed", "error", err)
		fmt.Println("Could not complete the registration, check the data and try again.")
	}
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Println("Could not clear the local session.")
		return
	}
	a.session = models.Session{}
	fmt.Println("Logged out.")
}

func (a *App) Whoami(ctx context.Context) {
	// Read from the store, not the in-memory copy: this is what survives
	// a restart.
	sess, err := a.auth.Session(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session", "error", err)
		return
	}
	if !sess.LoggedIn() {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s (%s), logged in as %s\n", sess.FirstName, sess.UserType, sess.User)
}
