package api

import (
	"context"
	"fmt"

	"github.com/invoicing/invoicectl/internal/models"
)

// ListInvoices fetches invoice summaries.
func (c *Client) ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	var resp listEnvelope[models.InvoiceSummary]
	if err := c.get(ctx, "/invoices", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetInvoice fetches a full invoice including its items and customer.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.get(ctx, fmt.Sprintf("/invoices/%d", id), &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice creates an invoice with its nested items. Invoice
// number and total come back server-assigned.
func (c *Client) CreateInvoice(ctx context.Context, draft models.InvoiceDraft) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.post(ctx, "/invoices", draft, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice replaces an invoice, including its item rows.
func (c *Client) UpdateInvoice(ctx context.Context, id int64, draft models.InvoiceDraft) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.put(ctx, fmt.Sprintf("/invoices/%d", id), draft, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice deletes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/invoices/%d", id))
}
