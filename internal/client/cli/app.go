package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/client/config"
	"github.com/dmitrijs2005/ctibook/internal/client/services"
	"github.com/dmitrijs2005/ctibook/internal/client/session"
	"github.com/dmitrijs2005/ctibook/internal/client/tokenstore"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

// App wires the terminal client together: one API client, one session,
// one service per entity collection, and the interactive reader.
//
// App also keeps the most recently listed rows per entity. A successful
// delete removes the row from that local copy and re-renders it instead
// of re-fetching the collection.
type App struct {
	config    *config.Config
	session   *session.Session
	actors    services.ThreatActorService
	incidents services.IncidentLogService
	reader    *bufio.Reader
	out       io.Writer

	actorRows    []models.ThreatActor
	incidentRows []models.IncidentLog
}

// NewApp builds an App from config: opens the token store, constructs the
// API client reading tokens from it, and binds session and services.
func NewApp(cfg *config.Config) (*App, error) {
	dir, err := tokenstore.DefaultDir()
	if err != nil {
		return nil, err
	}
	store, err := tokenstore.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	client := api.New(cfg.ServerURL, cfg.RequestTimeout, store)

	return &App{
		config:    cfg,
		session:   session.New(client, store),
		actors:    services.NewThreatActorService(client),
		incidents: services.NewIncidentLogService(client),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// status renders the prompt suffix: the username when logged in, empty
// otherwise.
func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// Run restores any stored session, then hands control to the REPL. The
// restore happens before the first prompt so a valid stored token never
// shows an anonymous prompt first.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "ctibook — cyber threat intelligence records (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		fmt.Fprintln(a.out, mutedStyle.Render("Stored session is no longer valid, please log in again."))
	} else if u := a.session.User(); u != nil {
		fmt.Fprintln(a.out, okLine("Welcome back, "+u.Username))
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}
