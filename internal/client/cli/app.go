// Package cli implements the interactive QRKeeper client. Anonymous
// sessions work against the local JSON slot; after login the same commands
// run against the remote account store. The store is picked once per
// session change, never per call.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/qrkeeper/qrkeeper/internal/client/api"
	"github.com/qrkeeper/qrkeeper/internal/client/config"
	"github.com/qrkeeper/qrkeeper/internal/client/records"
	"github.com/qrkeeper/qrkeeper/internal/client/storage"
)

type App struct {
	config   *config.Config
	api      *api.Client
	local    *records.LocalStore
	store    records.Store
	token    string
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	local := records.NewLocalStore(storage.NewStore(c.LocalStorePath))
	return &App{
		config: c,
		api:    api.New(c.ServerBaseURL),
		local:  local,
		store:  local,
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "anonymous (local store)"
}

// startSession switches the session to the remote account store.
func (a *App) startSession(userName, token string) {
	a.userName = userName
	a.token = token
	a.store = records.NewRemoteStore(a.api, token)
}

// endSession drops the token and falls back to the local store. The token
// only exists client-side; there is nothing to revoke on the server.
func (a *App) endSession() {
	a.userName = ""
	a.token = ""
	a.store = a.local
}
