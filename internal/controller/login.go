package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/invoicing/invoicectl/internal/api"
	"github.com/invoicing/invoicectl/internal/session"
)

// LoginController handles the credential exchange screen. It is the
// one screen that works without an authenticated session.
type LoginController struct {
	screen
	client *api.Client
}

// NewLogin creates the login screen controller.
func NewLogin(client *api.Client, sess *session.Manager, nav session.Navigator) *LoginController {
	return &LoginController{
		screen: newScreen(sess, nav),
		client: client,
	}
}

// Open makes the form interactive. No data is fetched.
func (c *LoginController) Open() {
	c.state = StateReady
}

// Submit exchanges the credentials for a token and opens the session.
// On failure the message is shown inline and the form stays editable.
func (c *LoginController) Submit(email, password string) {
	if strings.TrimSpace(email) == "" || password == "" {
		c.localError("Email and password are required.")
		return
	}

	c.begin()
	resp, err := c.client.Login(c.ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// A 401 here is a wrong password, not a stale session; it is
		// surfaced like any other failure.
		c.localError(err.Error())
		return
	}

	if err := c.sess.Login(resp.AccessToken); err != nil {
		c.localError(err.Error())
		return
	}
	c.state = StateReady
}
