package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicing/invoicectl/internal/models"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"Widget:2:9.99", "Fancy Gadget:1:100"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Widget", items[0].ItemName)
	assert.Equal(t, 2, items[0].Qty)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("9.99")))

	assert.Equal(t, "Fancy Gadget", items[1].ItemName)
	assert.Equal(t, 1, items[1].Qty)
}

func TestParseItemsNameMayContainColons(t *testing.T) {
	items, err := parseItems([]string{"Support: tier 2:3:50.00"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Support: tier 2", items[0].ItemName)
	assert.Equal(t, 3, items[0].Qty)
}

func TestParseItemsRejectsMalformedRows(t *testing.T) {
	for _, bad := range []string{"Widget", "Widget:2", "Widget:two:9.99", "Widget:2:cheap"} {
		_, err := parseItems([]string{bad})
		assert.Error(t, err, "input %q", bad)
	}
}

func TestConfirmerAnswers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		c := &confirmer{in: bufio.NewReader(strings.NewReader(tt.input)), out: &out}
		got := c.Confirm("Delete?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, !tt.want, c.declined)
		assert.Contains(t, out.String(), "Delete? [y/N]:")
	}
}

func TestConfirmerAssumeYesSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	c := &confirmer{out: &out, assumeYes: true}
	assert.True(t, c.Confirm("Delete?"))
	assert.False(t, c.declined)
	assert.Empty(t, out.String())
}

func TestRenderInvoiceSummaries(t *testing.T) {
	var out bytes.Buffer
	renderInvoiceSummaries(&out, []models.InvoiceSummary{
		{
			ID:            1,
			InvoiceNumber: "INV-0001",
			Total:         decimal.RequireFromString("19.98"),
			DueDate:       "2026-09-30",
			Customer:      &models.Customer{Name: "Globex"},
		},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "INV-0001")
	assert.Contains(t, rendered, "Globex")
	assert.Contains(t, rendered, "$19.98")
}

func TestRenderInvoiceWithItems(t *testing.T) {
	var out bytes.Buffer
	renderInvoice(&out, &models.Invoice{
		ID:            3,
		InvoiceNumber: "INV-0003",
		DueDate:       "2026-09-30",
		Total:         decimal.RequireFromString("19.98"),
		Customer:      &models.Customer{Name: "Globex"},
		Items: []models.InvoiceItem{
			{
				ItemName: "Widget",
				Qty:      2,
				Price:    decimal.RequireFromString("9.99"),
				Subtotal: decimal.RequireFromString("19.98"),
			},
		},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "Invoice INV-0003")
	assert.Contains(t, rendered, "Customer: Globex")
	assert.Contains(t, rendered, "Widget")
	assert.Contains(t, rendered, "Total: $19.98")
}
