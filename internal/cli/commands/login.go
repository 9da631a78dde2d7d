package commands

import (
	"context"
	"errors"
	"fmt"

	"RegistryAdmin/internal/cli/bootstrap"
	"RegistryAdmin/internal/cli/service"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := app.Registry.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s\n", args[0])
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := app.Registry.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether the stored session is accepted by the server" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if _, err := app.Registry.CurrentUser(); errors.Is(err, service.ErrNotLoggedIn) {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	user, err := app.Registry.Whoami(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s at %s\n", user, app.Config.ServerURL)
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(statusCmd{})
}
