package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

// AuthAPI is the server surface the CLI needs; *client.AuthClient implements it.
type AuthAPI interface {
	Register(ctx context.Context, r client.RegisterRequest) (*client.User, error)
	Login(ctx context.Context, email, password string) error
	Me(ctx context.Context) (*client.Session, error)
	Logout(ctx context.Context) error
}

type App struct {
	api      AuthAPI
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	hc := client.NewHTTPClient(c.RequestTimeout, c.InsecureSkipVerify)

	api, err := client.NewAuthClient(c.ServerURL, hc)
	if err != nil {
		return nil, err
	}

	return newApp(api, os.Stdin, os.Stdout), nil
}

func newApp(api AuthAPI, in io.Reader, out io.Writer) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return "anonymous"
	}
	return a.userName
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
