package controller

import (
	"strings"

	"github.com/invoicing/invoicectl/internal/api"
	"github.com/invoicing/invoicectl/internal/models"
	"github.com/invoicing/invoicectl/internal/session"
)

// CustomerListController drives the customer list screen.
type CustomerListController struct {
	screen
	client  *api.Client
	confirm Confirmer

	customers []models.Customer
}

// NewCustomerList creates the customer list controller.
func NewCustomerList(client *api.Client, sess *session.Manager, nav session.Navigator, confirm Confirmer) *CustomerListController {
	return &CustomerListController{
		screen:  newScreen(sess, nav),
		client:  client,
		confirm: confirm,
	}
}

// Load fetches the customer list.
func (c *CustomerListController) Load() {
	if !c.guard() {
		return
	}
	c.begin()

	customers, err := c.client.ListCustomers(c.ctx)
	if err != nil {
		c.failLoad(err)
		return
	}
	c.customers = customers
	c.state = StateReady
}

// Customers returns the loaded list.
func (c *CustomerListController) Customers() []models.Customer {
	return c.customers
}

// Empty reports whether the screen should render its empty-state
// message.
func (c *CustomerListController) Empty() bool {
	return c.state == StateReady && len(c.customers) == 0
}

// Delete removes a customer after explicit confirmation, then
// refreshes the list. The server cascades the delete to the customer's
// invoices.
func (c *CustomerListController) Delete(id int64) {
	if !c.guard() {
		return
	}
	if c.confirm != nil && !c.confirm.Confirm("Are you sure you want to delete this customer? Its invoices will be deleted too.") {
		return
	}

	c.begin()
	if err := c.client.DeleteCustomer(c.ctx, id); err != nil {
		c.failSubmit(err)
		return
	}
	c.Load()
}

// CustomerForm holds the editable customer fields.
type CustomerForm struct {
	Name  string
	Email string
	Phone string
}

// CustomerFormController drives the customer create and edit screens.
// A zero id means create mode.
type CustomerFormController struct {
	screen
	client *api.Client
	id     int64

	Form CustomerForm
}

// NewCustomerCreate creates the controller for a blank customer form.
func NewCustomerCreate(client *api.Client, sess *session.Manager, nav session.Navigator) *CustomerFormController {
	return &CustomerFormController{
		screen: newScreen(sess, nav),
		client: client,
	}
}

// NewCustomerEdit creates the controller for editing an existing
// customer.
func NewCustomerEdit(client *api.Client, sess *session.Manager, nav session.Navigator, id int64) *CustomerFormController {
	return &CustomerFormController{
		screen: newScreen(sess, nav),
		client: client,
		id:     id,
	}
}

// Load prepares the form. Edit mode fetches the customer first; a
// failure is terminal for the view.
func (c *CustomerFormController) Load() {
	if !c.guard() {
		return
	}
	if c.id == 0 {
		c.state = StateReady
		return
	}

	c.begin()
	customer, err := c.client.GetCustomer(c.ctx, c.id)
	if err != nil {
		c.failLoad(err)
		return
	}
	c.Form = CustomerForm{
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
	c.state = StateReady
}

// Submit creates or updates the customer and navigates back to the
// list on success. On failure the form keeps its input and shows the
// server's message.
func (c *CustomerFormController) Submit() {
	if !c.guard() {
		return
	}
	if strings.TrimSpace(c.Form.Name) == "" {
		c.localError("Name is required.")
		return
	}

	c.begin()
	draft := models.CustomerDraft{
		Name:  c.Form.Name,
		Email: c.Form.Email,
		Phone: c.Form.Phone,
	}

	var err error
	if c.id == 0 {
		_, err = c.client.CreateCustomer(c.ctx, draft)
	} else {
		_, err = c.client.UpdateCustomer(c.ctx, c.id, draft)
	}
	if err != nil {
		c.failSubmit(err)
		return
	}

	c.state = StateReady
	if c.nav != nil {
		c.nav.Navigate(session.RouteCustomerList)
	}
}
