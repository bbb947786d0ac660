package api

import (
	"context"
	"fmt"

	"github.com/invoicing/invoicectl/internal/models"
)

// ListCustomers fetches all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var resp listEnvelope[models.Customer]
	if err := c.get(ctx, "/customers", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetCustomer fetches a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a new customer.
func (c *Client) CreateCustomer(ctx context.Context, draft models.CustomerDraft) (*models.Customer, error) {
	var customer models.Customer
	if err := c.post(ctx, "/customers", draft, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer updates an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, draft models.CustomerDraft) (*models.Customer, error) {
	var customer models.Customer
	if err := c.put(ctx, fmt.Sprintf("/customers/%d", id), draft, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer deletes a customer. The server cascades the delete to
// the customer's invoices.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
