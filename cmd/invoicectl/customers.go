package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/invoicing/invoicectl/internal/controller"
)

// screenErr translates a controller's end state into a command error.
func screenErr(state controller.State, msg string) error {
	switch state {
	case controller.StateIdle:
		return errors.New("not signed in")
	case controller.StateErrored:
		return errors.New(msg)
	}
	if msg != "" {
		return errors.New(msg)
	}
	return nil
}

func (e *env) customersCommand() *cli.Command {
	return &cli.Command{
		Name:  "customers",
		Usage: "list, create, update, and delete customers",
		Subcommands: []*cli.Command{
			e.customersListCommand(),
			e.customersCreateCommand(),
			e.customersUpdateCommand(),
			e.customersDeleteCommand(),
		},
	}
}

func (e *env) customersListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "show all customers",
		Action: func(c *cli.Context) error {
			ctrl := controller.NewCustomerList(e.client, e.sess, &navigator{out: e.out}, nil)
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}
			if ctrl.Empty() {
				fmt.Fprintln(e.out, "No customers yet.")
				return nil
			}
			renderCustomers(e.out, ctrl.Customers())
			return nil
		},
	}
}

func (e *env) customersCreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create a customer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "customer name"},
			&cli.StringFlag{Name: "email", Usage: "customer email"},
			&cli.StringFlag{Name: "phone", Usage: "customer phone"},
		},
		Action: func(c *cli.Context) error {
			ctrl := controller.NewCustomerCreate(e.client, e.sess, &navigator{out: e.out})
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			ctrl.Form = controller.CustomerForm{
				Name:  c.String("name"),
				Email: c.String("email"),
				Phone: c.String("phone"),
			}
			ctrl.Submit()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			fmt.Fprintln(e.out, "Customer created.")
			return nil
		},
	}
}

func (e *env) customersUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "update a customer; omitted flags keep their current value",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "customer id"},
			&cli.StringFlag{Name: "name", Usage: "new name"},
			&cli.StringFlag{Name: "email", Usage: "new email"},
			&cli.StringFlag{Name: "phone", Usage: "new phone"},
		},
		Action: func(c *cli.Context) error {
			ctrl := controller.NewCustomerEdit(e.client, e.sess, &navigator{out: e.out}, c.Int64("id"))
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			if c.IsSet("name") {
				ctrl.Form.Name = c.String("name")
			}
			if c.IsSet("email") {
				ctrl.Form.Email = c.String("email")
			}
			if c.IsSet("phone") {
				ctrl.Form.Phone = c.String("phone")
			}
			ctrl.Submit()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			fmt.Fprintln(e.out, "Customer updated.")
			return nil
		},
	}
}

func (e *env) customersDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete a customer and its invoices",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "customer id"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			confirm := &confirmer{in: e.in, out: e.out, assumeYes: c.Bool("yes")}
			ctrl := controller.NewCustomerList(e.client, e.sess, &navigator{out: e.out}, confirm)
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			ctrl.Delete(c.Int64("id"))
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}
			if confirm.declined {
				fmt.Fprintln(e.out, "Aborted.")
				return nil
			}
			fmt.Fprintln(e.out, "Customer deleted.")
			return nil
		},
	}
}
