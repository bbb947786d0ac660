// Package models defines the resource shapes exchanged with the
// invoicing API. Identity, totals, subtotals, and invoice numbers are
// owned by the server; the client only parses and renders them.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a customer record.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerDraft is the payload for creating or updating a customer.
type CustomerDraft struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Invoice is a full invoice, including its items and (when the server
// expands it) the owning customer. Used by the detail and edit screens.
type Invoice struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	CustomerID    int64           `json:"customer_id"`
	InvoiceNumber string          `json:"invoice_number"`
	DueDate       string          `json:"due_date"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []InvoiceItem   `json:"items"`
	Customer      *Customer       `json:"customer,omitempty"`
}

// InvoiceSummary is the condensed shape returned by the invoice list.
type InvoiceSummary struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Total         decimal.Decimal `json:"total"`
	DueDate       string          `json:"due_date"`
	Customer      *Customer       `json:"customer,omitempty"`
}

// InvoiceItem is a single line on an invoice. Subtotal is computed
// server-side.
type InvoiceItem struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoice_id"`
	ItemName  string          `json:"item_name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// InvoiceItemDraft is one item row as submitted by the invoice form.
type InvoiceItemDraft struct {
	ItemName string          `json:"item_name"`
	Qty      int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
}

// InvoiceDraft is the payload for creating or updating an invoice. The
// server assigns the invoice number and computes the total.
type InvoiceDraft struct {
	CustomerID int64              `json:"customer_id"`
	DueDate    string             `json:"due_date"`
	Items      []InvoiceItemDraft `json:"items"`
}
