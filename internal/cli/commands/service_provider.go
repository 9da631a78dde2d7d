package commands

import (
	"context"
	"fmt"
	"strings"

	"RegistryAdmin/internal/cli/bootstrap"
	"RegistryAdmin/internal/cli/model"
)

type spCmd struct{ protected }

func (spCmd) Name() string        { return "sp" }
func (spCmd) Description() string { return "Show the service provider" }
func (spCmd) Usage() string       { return "sp" }

func (spCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sp, err := app.Registry.ServiceProvider(ctx)
	if err != nil {
		return err
	}
	if sp == nil {
		fmt.Fprintln(Out, "Service provider is not configured, use sp-set")
		return nil
	}
	return printTable([]string{"ID", "NAME", "EMAIL", "PHONE", "WEBSITE"},
		[][]string{{sp.ID, sp.Name, sp.Email, sp.Phone, sp.Website}})
}

type spSetCmd struct{ protected }

func (spSetCmd) Name() string        { return "sp-set" }
func (spSetCmd) Description() string { return "Create or update the service provider" }
func (spSetCmd) Usage() string       { return "sp-set <name> [email] [phone] [website]" }

func (spSetCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 1 || len(args) > 4 {
		return ErrUsage
	}
	at := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	sp, err := app.Registry.SaveServiceProvider(ctx, model.ServiceProvider{
		Name:    at(0),
		Email:   at(1),
		Phone:   at(2),
		Website: at(3),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Service provider %s saved: %s\n", sp.Name, sp.ID)
	return nil
}

type endpointsCmd struct{ protected }

func (endpointsCmd) Name() string        { return "endpoints" }
func (endpointsCmd) Description() string { return "List endpoints of the service provider" }
func (endpointsCmd) Usage() string       { return "endpoints" }

func (endpointsCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	eps, err := app.Registry.Endpoints(ctx)
	if err != nil {
		return err
	}
	if len(eps) == 0 {
		fmt.Fprintln(Out, "No endpoints")
		return nil
	}
	rows := make([][]string, 0, len(eps))
	for _, ep := range eps {
		rows = append(rows, []string{ep.ID, ep.Type, ep.URL})
	}
	return printTable([]string{"ID", "TYPE", "URL"}, rows)
}

type endpointAddCmd struct{ protected }

func (endpointAddCmd) Name() string        { return "endpoint-add" }
func (endpointAddCmd) Description() string { return "Register an endpoint" }
func (endpointAddCmd) Usage() string       { return "endpoint-add <type> <url>" }

func (endpointAddCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	ep, err := app.Registry.RegisterEndpoint(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Endpoint registered: %s\n", ep.ID)
	return nil
}

type endpointRmCmd struct{ protected }

func (endpointRmCmd) Name() string        { return "endpoint-rm" }
func (endpointRmCmd) Description() string { return "Remove an endpoint" }
func (endpointRmCmd) Usage() string       { return "endpoint-rm <id>" }

func (endpointRmCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := app.Registry.DeleteEndpoint(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Endpoint removed: %s\n", args[0])
	return nil
}

type servicesCmd struct{ protected }

func (servicesCmd) Name() string        { return "services" }
func (servicesCmd) Description() string { return "List services of the service provider" }
func (servicesCmd) Usage() string       { return "services" }

func (servicesCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := app.Registry.Services(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No services")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		eps := strings.Join(s.Endpoints, ",")
		if eps == "" {
			eps = "-"
		}
		rows = append(rows, []string{s.ID, s.Name, eps})
	}
	return printTable([]string{"ID", "NAME", "ENDPOINTS"}, rows)
}

type serviceAddCmd struct{ protected }

func (serviceAddCmd) Name() string        { return "service-add" }
func (serviceAddCmd) Description() string { return "Add a service bound to endpoints" }
func (serviceAddCmd) Usage() string       { return "service-add <name> [endpoint-id...]" }

func (serviceAddCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	s, err := app.Registry.AddService(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Service added: %s\n", s.ID)
	return nil
}

func init() {
	RegisterCmd(spCmd{})
	RegisterCmd(spSetCmd{})
	RegisterCmd(endpointsCmd{})
	RegisterCmd(endpointAddCmd{})
	RegisterCmd(endpointRmCmd{})
	RegisterCmd(servicesCmd{})
	RegisterCmd(serviceAddCmd{})
}
