package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/invoicing/invoicectl/internal/models"
)

// renderCustomers prints the customer table.
func renderCustomers(out io.Writer, customers []models.Customer) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	w.Flush()
}

// renderInvoiceSummaries prints the invoice list. Totals are printed
// exactly as the server computed them.
func renderInvoiceSummaries(out io.Writer, invoices []models.InvoiceSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tDUE DATE\tTOTAL")
	for _, inv := range invoices {
		customer := ""
		if inv.Customer != nil {
			customer = inv.Customer.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%s\n",
			inv.ID, inv.InvoiceNumber, customer, inv.DueDate, inv.Total.StringFixed(2))
	}
	w.Flush()
}

// renderInvoice prints one invoice with its item rows.
func renderInvoice(out io.Writer, inv *models.Invoice) {
	fmt.Fprintf(out, "Invoice %s (id %d)\n", inv.InvoiceNumber, inv.ID)
	if inv.Customer != nil {
		fmt.Fprintf(out, "Customer: %s\n", inv.Customer.Name)
	}
	fmt.Fprintf(out, "Due date: %s\n", inv.DueDate)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQTY\tPRICE\tSUBTOTAL")
	for _, item := range inv.Items {
		fmt.Fprintf(w, "%s\t%d\t$%s\t$%s\n",
			item.ItemName, item.Qty, item.Price.StringFixed(2), item.Subtotal.StringFixed(2))
	}
	w.Flush()

	fmt.Fprintf(out, "Total: $%s\n", inv.Total.StringFixed(2))
}
