// Package main provides the invoicectl CLI: the terminal front end for
// a remote invoicing service. Commands map user intents onto the screen
// controllers and render their state.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/invoicing/invoicectl/internal/api"
	"github.com/invoicing/invoicectl/internal/config"
	"github.com/invoicing/invoicectl/internal/logger"
	"github.com/invoicing/invoicectl/internal/session"
	"github.com/invoicing/invoicectl/internal/tokenstore"
)

// Version information (populated at build time)
var version = "dev"

func main() {
	// A .env file in the working directory may carry INVOICING_* vars.
	_ = godotenv.Load()

	e := &env{out: os.Stdout, in: bufio.NewReader(os.Stdin)}

	app := &cli.App{
		Name:    "invoicectl",
		Usage:   "manage customers and invoices on a remote invoicing service",
		Version: version,
		Before:  e.setup,
		After:   e.teardown,
		Commands: []*cli.Command{
			e.loginCommand(),
			e.logoutCommand(),
			e.customersCommand(),
			e.invoicesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env holds the wired dependencies shared by all commands.
type env struct {
	out io.Writer
	in  *bufio.Reader

	log    *zap.Logger
	store  *tokenstore.Store
	client *api.Client
	sess   *session.Manager
}

// setup wires config, logging, token storage, the API client, and the
// session manager before any command runs.
func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	e.log = logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})

	e.store, err = tokenstore.New(cfg.Token.Path)
	if err != nil {
		return err
	}

	e.client, err = api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  e.store,
		Logger:  e.log,
	})
	if err != nil {
		return err
	}

	e.sess = session.NewManager(e.store, &navigator{out: e.out}, e.log)
	e.sess.Init()
	return nil
}

func (e *env) teardown(c *cli.Context) error {
	if e.log != nil {
		_ = e.log.Sync()
	}
	return nil
}

// navigator renders navigation signals as terminal hints. The CLI has
// no screen stack to push onto; a redirect to login becomes advice to
// run the login command.
type navigator struct {
	out io.Writer
}

func (n *navigator) Navigate(r session.Route) {
	if r == session.RouteLogin {
		fmt.Fprintln(n.out, "You are signed out. Run 'invoicectl login' to sign in.")
	}
}

// confirmer asks y/N on the terminal; --yes answers for the user. It
// remembers the last answer so commands can tell an aborted delete
// apart from a completed one.
type confirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool

	declined bool
}

func (c *confirmer) Confirm(prompt string) bool {
	if c.assumeYes {
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.declined = true
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	c.declined = true
	return false
}

// promptLine reads one line of input with a label.
func (e *env) promptLine(label string) (string, error) {
	fmt.Fprintf(e.out, "%s: ", label)
	line, err := e.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
