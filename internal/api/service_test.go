package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicing/invoicectl/internal/models"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@example.com", creds.Email)
		assert.Equal(t, "hunter2", creds.Password)

		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	resp, err := client.Login(context.Background(), Credentials{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestLoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	_, err := client.Login(context.Background(), Credentials{Email: "x", Password: "y"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/logout", r.URL.Path)
		w.Write([]byte(`{"message":"Logged out"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	require.NoError(t, client.Logout(context.Background()))
}

func TestListCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Acme Corp","email":"billing@acme.test","phone":"555-0100"},
			{"id":2,"name":"Globex","email":"ap@globex.test","phone":"555-0101"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, int64(1), customers[0].ID)
	assert.Equal(t, "Acme Corp", customers[0].Name)
	assert.Equal(t, "Globex", customers[1].Name)
}

func TestListCustomersEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCreateCustomerPassesBodyThrough(t *testing.T) {
	draft := models.CustomerDraft{
		Name:  gofakeit.Company(),
		Email: gofakeit.Email(),
		Phone: gofakeit.Phone(),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)

		var got models.CustomerDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, draft, got)

		w.Write(fmt.Appendf(nil, `{"id":7,"name":%q,"email":%q,"phone":%q}`,
			draft.Name, draft.Email, draft.Phone))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	customer, err := client.CreateCustomer(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.Equal(t, draft.Name, customer.Name)
}

func TestUpdateAndDeleteCustomerPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/customers/42", r.URL.Path)
			w.Write([]byte(`{"id":42,"name":"Renamed"}`))
		case http.MethodDelete:
			assert.Equal(t, "/customers/42", r.URL.Path)
			w.Write([]byte(`{"message":"Deleted"}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	customer, err := client.UpdateCustomer(context.Background(), 42, models.CustomerDraft{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", customer.Name)

	require.NoError(t, client.DeleteCustomer(context.Background(), 42))
}

func TestGetInvoiceDecodesServerTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/3", r.URL.Path)
		w.Write([]byte(`{
			"id":3,"user_id":1,"customer_id":2,
			"invoice_number":"INV-0003","due_date":"2026-09-30","total":19.98,
			"items":[{"id":9,"invoice_id":3,"item_name":"Widget","qty":2,"price":9.99,"subtotal":19.98}],
			"customer":{"id":2,"name":"Globex"}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	invoice, err := client.GetInvoice(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "INV-0003", invoice.InvoiceNumber)
	assert.True(t, invoice.Total.Equal(decimal.RequireFromString("19.98")))
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Widget", invoice.Items[0].ItemName)
	assert.True(t, invoice.Items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
	require.NotNil(t, invoice.Customer)
	assert.Equal(t, "Globex", invoice.Customer.Name)
}

func TestCreateInvoiceSendsNestedItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoices", r.URL.Path)

		var got models.InvoiceDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, int64(2), got.CustomerID)
		assert.Equal(t, "2026-09-30", got.DueDate)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Widget", got.Items[0].ItemName)
		assert.Equal(t, 2, got.Items[0].Qty)

		w.Write([]byte(`{"id":10,"customer_id":2,"invoice_number":"INV-0010","total":19.98}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	invoice, err := client.CreateInvoice(context.Background(), models.InvoiceDraft{
		CustomerID: 2,
		DueDate:    "2026-09-30",
		Items: []models.InvoiceItemDraft{
			{ItemName: "Widget", Qty: 2, Price: decimal.RequireFromString("9.99")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0010", invoice.InvoiceNumber)
}

func TestListInvoicesSummaries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":1,"invoice_number":"INV-0001","total":100.50,"due_date":"2026-09-01",
			 "customer":{"id":1,"name":"Acme Corp"}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	invoices, err := client.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-0001", invoices[0].InvoiceNumber)
	assert.True(t, invoices[0].Total.Equal(decimal.RequireFromString("100.50")))
	require.NotNil(t, invoices[0].Customer)
	assert.Equal(t, "Acme Corp", invoices[0].Customer.Name)
}

func TestUpdateAndDeleteInvoicePaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/invoices/5", r.URL.Path)
			w.Write([]byte(`{"id":5,"invoice_number":"INV-0005"}`))
		case http.MethodDelete:
			assert.Equal(t, "/invoices/5", r.URL.Path)
			w.Write([]byte(`{"message":"Deleted"}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	_, err := client.UpdateInvoice(context.Background(), 5, models.InvoiceDraft{CustomerID: 1})
	require.NoError(t, err)

	require.NoError(t, client.DeleteInvoice(context.Background(), 5))
}
