package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListActors(ctx context.Context) error
	ShowActor(ctx context.Context, id string) error
	AddActor(ctx context.Context) error
	EditActor(ctx context.Context, id string) error
	DeleteActor(ctx context.Context, id string) error
	ListIncidents(ctx context.Context) error
	ShowIncident(ctx context.Context, id string) error
	AddIncident(ctx context.Context) error
	EditIncident(ctx context.Context, id string) error
	DeleteIncident(ctx context.Context, id string) error
}

const (
	helpAnonymous = "Available commands: login, register, help, exit"
	helpLoggedIn  = "Available commands: actors, actor <id>, addactor, editactor <id>, delactor <id>, " +
		"incidents, incident <id>, addincident, editincident <id>, delincident <id>, whoami, logout, exit"
)

// runREPL is the shell: it reads a line, parses the first token as the
// command, and dispatches to 'a'. Commands taking an identifier require
// it as an argument. Errors returned by handlers have already been
// presented by the handler; the loop itself never fails. Exits on scanner
// EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "cti %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		// One id argument, or a usage line.
		withID := func(fn func(context.Context, string) error, usage string) {
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: "+usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "actors":
			_ = a.ListActors(ctx)
		case "actor":
			withID(a.ShowActor, "actor <id>")
		case "addactor":
			_ = a.AddActor(ctx)
		case "editactor":
			withID(a.EditActor, "editactor <id>")
		case "delactor":
			withID(a.DeleteActor, "delactor <id>")

		case "incidents":
			_ = a.ListIncidents(ctx)
		case "incident":
			withID(a.ShowIncident, "incident <id>")
		case "addincident":
			_ = a.AddIncident(ctx)
		case "editincident":
			withID(a.EditIncident, "editincident <id>")
		case "delincident":
			withID(a.DeleteIncident, "delincident <id>")

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
