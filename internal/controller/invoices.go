package controller

import (
	"strings"
	"sync"

	"github.com/invoicing/invoicectl/internal/api"
	"github.com/invoicing/invoicectl/internal/models"
	"github.com/invoicing/invoicectl/internal/session"
)

// InvoiceListController drives the invoice list screen.
type InvoiceListController struct {
	screen
	client *api.Client

	invoices []models.InvoiceSummary
}

// NewInvoiceList creates the invoice list controller.
func NewInvoiceList(client *api.Client, sess *session.Manager, nav session.Navigator) *InvoiceListController {
	return &InvoiceListController{
		screen: newScreen(sess, nav),
		client: client,
	}
}

// Load fetches the invoice summaries.
func (c *InvoiceListController) Load() {
	if !c.guard() {
		return
	}
	c.begin()

	invoices, err := c.client.ListInvoices(c.ctx)
	if err != nil {
		c.failLoad(err)
		return
	}
	c.invoices = invoices
	c.state = StateReady
}

// Invoices returns the loaded summaries.
func (c *InvoiceListController) Invoices() []models.InvoiceSummary {
	return c.invoices
}

// Empty reports whether the screen should render its empty-state
// message.
func (c *InvoiceListController) Empty() bool {
	return c.state == StateReady && len(c.invoices) == 0
}

// InvoiceDetailController drives the invoice detail screen.
type InvoiceDetailController struct {
	screen
	client  *api.Client
	confirm Confirmer
	id      int64

	invoice *models.Invoice
}

// NewInvoiceDetail creates the detail controller for one invoice.
func NewInvoiceDetail(client *api.Client, sess *session.Manager, nav session.Navigator, confirm Confirmer, id int64) *InvoiceDetailController {
	return &InvoiceDetailController{
		screen:  newScreen(sess, nav),
		client:  client,
		confirm: confirm,
		id:      id,
	}
}

// Load fetches the full invoice. A failure is terminal for the view.
func (c *InvoiceDetailController) Load() {
	if !c.guard() {
		return
	}
	c.begin()

	invoice, err := c.client.GetInvoice(c.ctx, c.id)
	if err != nil {
		c.failLoad(err)
		return
	}
	c.invoice = invoice
	c.state = StateReady
}

// Invoice returns the loaded invoice.
func (c *InvoiceDetailController) Invoice() *models.Invoice {
	return c.invoice
}

// Delete removes the invoice after explicit confirmation and navigates
// back to the list.
func (c *InvoiceDetailController) Delete() {
	if !c.guard() {
		return
	}
	if c.confirm != nil && !c.confirm.Confirm("Are you sure you want to delete this invoice?") {
		return
	}

	c.begin()
	if err := c.client.DeleteInvoice(c.ctx, c.id); err != nil {
		c.failSubmit(err)
		return
	}

	c.state = StateReady
	if c.nav != nil {
		c.nav.Navigate(session.RouteInvoiceList)
	}
}

// InvoiceForm holds the editable invoice fields. Items always has at
// least one row while the form is interactive.
type InvoiceForm struct {
	CustomerID int64
	DueDate    string
	Items      []models.InvoiceItemDraft
}

// InvoiceFormController drives the invoice create and edit screens. A
// zero id means create mode.
type InvoiceFormController struct {
	screen
	client *api.Client
	id     int64

	Form      InvoiceForm
	customers []models.Customer
}

// NewInvoiceCreate creates the controller for a blank invoice form
// with a single empty item row.
func NewInvoiceCreate(client *api.Client, sess *session.Manager, nav session.Navigator) *InvoiceFormController {
	return &InvoiceFormController{
		screen: newScreen(sess, nav),
		client: client,
		Form: InvoiceForm{
			Items: []models.InvoiceItemDraft{{Qty: 1}},
		},
	}
}

// NewInvoiceEdit creates the controller for editing an existing
// invoice.
func NewInvoiceEdit(client *api.Client, sess *session.Manager, nav session.Navigator, id int64) *InvoiceFormController {
	return &InvoiceFormController{
		screen: newScreen(sess, nav),
		client: client,
		id:     id,
	}
}

// Load prepares the form. Create mode needs the customer list for
// selection; edit mode fetches the invoice and the customer list
// concurrently and becomes ready only once both have resolved. Either
// fetch failing is terminal: a partially populated form is never
// shown.
func (c *InvoiceFormController) Load() {
	if !c.guard() {
		return
	}
	c.begin()

	if c.id == 0 {
		customers, err := c.client.ListCustomers(c.ctx)
		if err != nil {
			c.failLoad(err)
			return
		}
		c.customers = customers
		c.state = StateReady
		return
	}

	var (
		wg        sync.WaitGroup
		invoice   *models.Invoice
		invErr    error
		customers []models.Customer
		custErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		invoice, invErr = c.client.GetInvoice(c.ctx, c.id)
	}()
	go func() {
		defer wg.Done()
		customers, custErr = c.client.ListCustomers(c.ctx)
	}()
	wg.Wait()

	if invErr != nil {
		c.failLoad(invErr)
		return
	}
	if custErr != nil {
		c.failLoad(custErr)
		return
	}

	items := make([]models.InvoiceItemDraft, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, models.InvoiceItemDraft{
			ItemName: item.ItemName,
			Qty:      item.Qty,
			Price:    item.Price,
		})
	}
	if len(items) == 0 {
		items = []models.InvoiceItemDraft{{Qty: 1}}
	}

	c.customers = customers
	c.Form = InvoiceForm{
		CustomerID: invoice.CustomerID,
		DueDate:    invoice.DueDate,
		Items:      items,
	}
	c.state = StateReady
}

// Customers returns the list loaded for the customer selector.
func (c *InvoiceFormController) Customers() []models.Customer {
	return c.customers
}

// AddItem appends a blank item row.
func (c *InvoiceFormController) AddItem() {
	c.Form.Items = append(c.Form.Items, models.InvoiceItemDraft{Qty: 1})
}

// RemoveItem drops the row at i, keeping at least one row.
func (c *InvoiceFormController) RemoveItem(i int) {
	if len(c.Form.Items) <= 1 || i < 0 || i >= len(c.Form.Items) {
		return
	}
	c.Form.Items = append(c.Form.Items[:i], c.Form.Items[i+1:]...)
}

// Submit validates the local preconditions, then creates or updates
// the invoice and navigates to the list on success. Totals and the
// invoice number are left entirely to the server. On failure the form
// keeps its input and shows the server's message.
func (c *InvoiceFormController) Submit() {
	if !c.guard() {
		return
	}
	if c.Form.CustomerID == 0 {
		c.localError("Please select a customer.")
		return
	}
	if len(c.Form.Items) == 0 {
		c.localError("At least one item is required.")
		return
	}
	for _, item := range c.Form.Items {
		if strings.TrimSpace(item.ItemName) == "" || item.Qty < 1 {
			c.localError("Every item needs a name and a quantity of at least 1.")
			return
		}
	}

	c.begin()
	draft := models.InvoiceDraft{
		CustomerID: c.Form.CustomerID,
		DueDate:    c.Form.DueDate,
		Items:      c.Form.Items,
	}

	var err error
	if c.id == 0 {
		_, err = c.client.CreateInvoice(c.ctx, draft)
	} else {
		_, err = c.client.UpdateInvoice(c.ctx, c.id, draft)
	}
	if err != nil {
		c.failSubmit(err)
		return
	}

	c.state = StateReady
	if c.nav != nil {
		c.nav.Navigate(session.RouteInvoiceList)
	}
}
