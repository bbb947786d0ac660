package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/invoicing/invoicectl/internal/controller"
	"github.com/invoicing/invoicectl/internal/models"
)

func (e *env) invoicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "invoices",
		Usage: "list, show, create, update, and delete invoices",
		Subcommands: []*cli.Command{
			e.invoicesListCommand(),
			e.invoicesShowCommand(),
			e.invoicesCreateCommand(),
			e.invoicesUpdateCommand(),
			e.invoicesDeleteCommand(),
		},
	}
}

func (e *env) invoicesListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "show all invoices",
		Action: func(c *cli.Context) error {
			ctrl := controller.NewInvoiceList(e.client, e.sess, &navigator{out: e.out})
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}
			if ctrl.Empty() {
				fmt.Fprintln(e.out, "You don't have any invoices yet.")
				return nil
			}
			renderInvoiceSummaries(e.out, ctrl.Invoices())
			return nil
		},
	}
}

func (e *env) invoicesShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "show one invoice with its items",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "invoice id"},
		},
		Action: func(c *cli.Context) error {
			ctrl := controller.NewInvoiceDetail(e.client, e.sess, &navigator{out: e.out}, nil, c.Int64("id"))
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}
			renderInvoice(e.out, ctrl.Invoice())
			return nil
		},
	}
}

// itemFlagUsage documents the repeated --item format.
const itemFlagUsage = "item row as name:qty:price (repeatable)"

// parseItems parses --item values of the form "Widget:2:9.99".
func parseItems(values []string) ([]models.InvoiceItemDraft, error) {
	items := make([]models.InvoiceItemDraft, 0, len(values))
	for _, v := range values {
		// The price and qty never contain colons; the name may.
		idx := strings.LastIndex(v, ":")
		if idx < 0 {
			return nil, fmt.Errorf("invalid item %q, expected name:qty:price", v)
		}
		price, err := decimal.NewFromString(v[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid item price in %q: %w", v, err)
		}
		rest := v[:idx]
		idx = strings.LastIndex(rest, ":")
		if idx < 0 {
			return nil, fmt.Errorf("invalid item %q, expected name:qty:price", v)
		}
		qty, err := strconv.Atoi(rest[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid item quantity in %q: %w", v, err)
		}
		items = append(items, models.InvoiceItemDraft{
			ItemName: rest[:idx],
			Qty:      qty,
			Price:    price,
		})
	}
	return items, nil
}

func (e *env) invoicesCreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create an invoice",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "customer", Required: true, Usage: "customer id"},
			&cli.StringFlag{Name: "due", Required: true, Usage: "due date (YYYY-MM-DD)"},
			&cli.StringSliceFlag{Name: "item", Required: true, Usage: itemFlagUsage},
		},
		Action: func(c *cli.Context) error {
			items, err := parseItems(c.StringSlice("item"))
			if err != nil {
				return err
			}

			ctrl := controller.NewInvoiceCreate(e.client, e.sess, &navigator{out: e.out})
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			ctrl.Form = controller.InvoiceForm{
				CustomerID: c.Int64("customer"),
				DueDate:    c.String("due"),
				Items:      items,
			}
			ctrl.Submit()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			fmt.Fprintln(e.out, "Invoice created.")
			return nil
		},
	}
}

func (e *env) invoicesUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "update an invoice; omitted flags keep their current value, --item replaces all rows",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "invoice id"},
			&cli.Int64Flag{Name: "customer", Usage: "new customer id"},
			&cli.StringFlag{Name: "due", Usage: "new due date (YYYY-MM-DD)"},
			&cli.StringSliceFlag{Name: "item", Usage: itemFlagUsage},
		},
		Action: func(c *cli.Context) error {
			ctrl := controller.NewInvoiceEdit(e.client, e.sess, &navigator{out: e.out}, c.Int64("id"))
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			if c.IsSet("customer") {
				ctrl.Form.CustomerID = c.Int64("customer")
			}
			if c.IsSet("due") {
				ctrl.Form.DueDate = c.String("due")
			}
			if c.IsSet("item") {
				items, err := parseItems(c.StringSlice("item"))
				if err != nil {
					return err
				}
				ctrl.Form.Items = items
			}
			ctrl.Submit()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			fmt.Fprintln(e.out, "Invoice updated.")
			return nil
		},
	}
}

func (e *env) invoicesDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete an invoice",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "invoice id"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			confirm := &confirmer{in: e.in, out: e.out, assumeYes: c.Bool("yes")}
			ctrl := controller.NewInvoiceDetail(e.client, e.sess, &navigator{out: e.out}, confirm, c.Int64("id"))
			defer ctrl.Close()

			ctrl.Load()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}

			ctrl.Delete()
			if err := screenErr(ctrl.State(), ctrl.Err()); err != nil {
				return err
			}
			if confirm.declined {
				fmt.Fprintln(e.out, "Aborted.")
				return nil
			}
			fmt.Fprintln(e.out, "Invoice deleted.")
			return nil
		},
	}
}
