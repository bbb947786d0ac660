package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicing/invoicectl/internal/session"
)

func TestLoginSubmitSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"access_token":"granted-token","token_type":"Bearer"}`))
	}))
	defer server.Close()

	r := newRig(t, server.URL, false)
	c := NewLogin(r.client, r.sess, r.nav)
	defer c.Close()

	c.Open()
	c.Submit("admin@example.com", "hunter2")

	assert.Equal(t, StateReady, c.State())
	assert.Empty(t, c.Err())
	assert.Equal(t, session.StatusAuthenticated, r.sess.Status())
	assert.Equal(t, session.RouteInvoiceList, r.nav.last(), "login lands on the invoice list")

	token, err := r.store.Get()
	require.NoError(t, err)
	assert.Equal(t, "granted-token", token)
}

func TestLoginSubmitFailureKeepsFormEditable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	r := newRig(t, server.URL, false)
	c := NewLogin(r.client, r.sess, r.nav)
	defer c.Close()

	c.Open()
	c.Submit("admin@example.com", "wrong")

	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, "Invalid credentials", c.Err())
	assert.Equal(t, session.StatusUnauthenticated, r.sess.Status())
}

func TestLoginSubmitRequiresCredentials(t *testing.T) {
	counting := &countingHandler{handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})}
	server := httptest.NewServer(counting)
	defer server.Close()

	r := newRig(t, server.URL, false)
	c := NewLogin(r.client, r.sess, r.nav)
	defer c.Close()

	c.Open()
	c.Submit("", "")

	assert.Equal(t, StateReady, c.State())
	assert.NotEmpty(t, c.Err())
	assert.Zero(t, counting.count.Load(), "empty credentials are rejected before the network")
}
