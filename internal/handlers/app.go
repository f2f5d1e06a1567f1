// Package handlers is the presentation shell: discrete CLI commands plus an
// interactive menu over the store. It formats output; the store never does.
package handlers

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"evmotors/internal/store"
)

type handler struct {
	store *store.Store
	log   *logrus.Logger
}

// NewApp builds the CLI surface. Every command prints one success line with
// the entity's key fields or one error line; a failed command never
// terminates the interactive menu.
func NewApp(st *store.Store, log *logrus.Logger) *cli.App {
	h := &handler{store: st, log: log}
	return &cli.App{
		Name:  "evmotors",
		Usage: "EV dealership inventory and sales tracker",
		Commands: []*cli.Command{
			h.dealershipCommand(),
			h.customerCommand(),
			h.vehicleCommand(),
			h.paymentCommand(),
			h.menuCommand(),
		},
	}
}

// fail prints the error line and swallows the error so the shell (and the
// menu loop) keeps running. Domain errors carry their own wording.
func (h *handler) fail(c *cli.Context, err error) error {
	h.log.WithError(err).Debug("command failed")
	fmt.Fprintf(c.App.Writer, "Error: %v\n", err)
	return nil
}
