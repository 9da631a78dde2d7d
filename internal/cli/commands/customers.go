package commands

import (
	"context"
	"fmt"
	"strconv"

	"RegistryAdmin/internal/cli/bootstrap"
	"RegistryAdmin/internal/cli/model"
)

type customersCmd struct{ protected }

func (customersCmd) Name() string        { return "customers" }
func (customersCmd) Description() string { return "List connected customers" }
func (customersCmd) Usage() string       { return "customers" }

func (customersCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := app.Registry.Customers(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No customers")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, customerRow(c))
	}
	if err := printTable([]string{"ID", "DID", "NAME", "TOWN", "ACTIVE"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func customerRow(c model.Customer) []string {
	return []string{c.ID, c.Did, c.Name, deref(c.Town), strconv.FormatBool(c.Active)}
}

type customerCmd struct{ protected }

func (customerCmd) Name() string        { return "customer" }
func (customerCmd) Description() string { return "Show a single customer" }
func (customerCmd) Usage() string       { return "customer <id>" }

func (customerCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := app.Registry.Customer(ctx, args[0])
	if err != nil {
		return err
	}
	return printTable([]string{"ID", "DID", "NAME", "TOWN", "ACTIVE"}, [][]string{customerRow(*c)})
}

type connectCmd struct{ protected }

func (connectCmd) Name() string        { return "connect" }
func (connectCmd) Description() string { return "Connect a customer and assign it a DID" }
func (connectCmd) Usage() string       { return "connect <id> <name> [town]" }

func (connectCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	c, err := app.Registry.ConnectCustomer(ctx, model.ConnectCustomerRequest{
		ID:   args[0],
		Name: args[1],
		Town: optional(args, 2),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Connected %s: %s\n", c.ID, c.Did)
	return nil
}

type customerUpdateCmd struct{ protected }

func (customerUpdateCmd) Name() string        { return "customer-update" }
func (customerUpdateCmd) Description() string { return "Update name, town or active flag of a customer" }
func (customerUpdateCmd) Usage() string {
	return "customer-update <id> <true|false> <name> [town]"
}

func (customerUpdateCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	active, err := strconv.ParseBool(args[1])
	if err != nil {
		return ErrUsage
	}
	c, err := app.Registry.UpdateCustomer(ctx, args[0], model.UpdateCustomerRequest{
		Active: active,
		Name:   args[2],
		Town:   optional(args, 3),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated %s (active=%t)\n", c.ID, c.Active)
	return nil
}

type customerServicesCmd struct{ protected }

func (customerServicesCmd) Name() string        { return "customer-services" }
func (customerServicesCmd) Description() string { return "List services enabled for a customer" }
func (customerServicesCmd) Usage() string       { return "customer-services <id>" }

func (customerServicesCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	refs, err := app.Registry.CustomerServices(ctx, args[0])
	if err != nil {
		return err
	}
	return printServiceRefs(refs)
}

type customerServicesSetCmd struct{ protected }

func (customerServicesSetCmd) Name() string { return "customer-services-set" }
func (customerServicesSetCmd) Description() string {
	return "Replace the set of services enabled for a customer"
}
func (customerServicesSetCmd) Usage() string { return "customer-services-set <id> [service-id...]" }

func (customerServicesSetCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	refs, err := app.Registry.SetCustomerServices(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	return printServiceRefs(refs)
}

func printServiceRefs(refs []model.CustomerServiceRef) error {
	if len(refs) == 0 {
		fmt.Fprintln(Out, "No services")
		return nil
	}
	rows := make([][]string, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, []string{r.Type, r.ServiceID, r.Ref})
	}
	return printTable([]string{"TYPE", "SERVICE", "REF"}, rows)
}

func init() {
	RegisterCmd(customersCmd{})
	RegisterCmd(customerCmd{})
	RegisterCmd(connectCmd{})
	RegisterCmd(customerUpdateCmd{})
	RegisterCmd(customerServicesCmd{})
	RegisterCmd(customerServicesSetCmd{})
}
