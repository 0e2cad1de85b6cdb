package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.session.FirstName != "" {
		s = a.session.FirstName + " " + a.session.UserType
	}
	if t := a.theme.Current(); t != "" {
		if s != "" {
			s += " "
		}
		s += t
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: scan, rooms, room <sala>, editroom <sala>, delroom <sala>, theme, whoami, logout, exit")
	} else {
		fmt.Println("Available commands: login, register, theme, exit")
	}
}

// Root runs the command loop. Every handler catches its own errors and
// returns control here; no command may leave the loop wedged.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Patrimônio CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("pat %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		// Each command is one screen visit: its fetches die with it, so a
		// late response can never touch a screen the user already left.
		screenCtx, cancel := context.WithCancel(ctx)

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.Login(screenCtx)
		case "register":
			a.Register(screenCtx)
		case "logout":
			a.Logout(screenCtx)
		case "whoami":
			a.Whoami(screenCtx)
		case "scan":
			a.Scan(screenCtx)
		case "rooms":
			a.Rooms(screenCtx)
		case "room":
			a.RoomDetail(screenCtx, strings.Join(args, " "))
		case "editroom":
			a.EditRoom(screenCtx, strings.Join(args, " "))
		case "delroom":
			a.DeleteRoom(screenCtx, strings.Join(args, " "))
		case "theme":
			a.ToggleTheme(screenCtx)
		case "exit", "quit":
			cancel()
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		cancel()
	}
}
