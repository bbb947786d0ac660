package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/invoicing/invoicectl/internal/controller"
)

func (e *env) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "account email (prompted when omitted)"},
		},
		Action: func(c *cli.Context) error {
			email := c.String("email")
			var err error
			if email == "" {
				if email, err = e.promptLine("Email"); err != nil {
					return err
				}
			}
			password, err := e.promptLine("Password")
			if err != nil {
				return err
			}

			ctrl := controller.NewLogin(e.client, e.sess, &navigator{out: e.out})
			defer ctrl.Close()

			ctrl.Open()
			ctrl.Submit(email, password)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			fmt.Fprintln(e.out, "Logged in.")
			return nil
		},
	}
}

func (e *env) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session and clear the stored token",
		Action: func(c *cli.Context) error {
			// Invalidate server-side first; the local token is cleared
			// regardless of whether the server call succeeds.
			if err := e.client.Logout(context.Background()); err != nil {
				e.log.Debug("server-side logout failed")
			}
			if err := e.sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Logged out.")
			return nil
		},
	}
}
