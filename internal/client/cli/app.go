// Package cli implements the interactive blogctl client: a small REPL that
// talks to a blogd server over its HTTP API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/blogd-io/blogd/internal/client/api"
	"github.com/blogd-io/blogd/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader

	// session state of the logged-in account
	user         *api.User
	accessToken  string
	refreshToken string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.accessToken != ""
}

func (a *App) getStatus() string {
	if a.user != nil {
		return fmt.Sprintf("(%s)", a.user.UserName)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to blogctl (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
