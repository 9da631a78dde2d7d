package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"RegistryAdmin/internal/cli/bootstrap"
	"RegistryAdmin/internal/cli/service"
	"RegistryAdmin/internal/config"
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" { // regadmin help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	nav := NewNavigator(Out)
	app, err := bootstrap.Open(cfg, nav)
	if err != nil {
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
	defer app.Close()
	nav.Attach(app.Session)

	// route guard
	if requiresSession(c) && app.Session.Token() == "" {
		fmt.Fprintf(Out, "Not logged in. Run `%s` first.\n", loginRoute(cfg))
		return 1
	}

	err = c.Run(ctx, app, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	case errors.Is(err, service.ErrRedirected):
		// навигатор уже напечатал подсказку
		return 1
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}

func loginRoute(cfg *config.Config) string {
	if cfg.ForbiddenRoute != "" {
		return cfg.ForbiddenRoute
	}
	return "login"
}
