package handlers

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (h *handler) dealershipCommand() *cli.Command {
	return &cli.Command{
		Name:  "dealership",
		Usage: "Manage dealerships",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a dealership",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Name of the dealership", Required: true},
					&cli.StringFlag{Name: "location", Usage: "Location of the dealership", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.createDealership(c, c.String("name"), c.String("location"))
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a dealership and its vehicles",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the dealership to delete", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.deleteDealership(c, c.Uint("id"))
				},
			},
			{
				Name:  "list",
				Usage: "List all dealerships",
				Action: func(c *cli.Context) error {
					return h.listDealerships(c)
				},
			},
			{
				Name:  "find",
				Usage: "Find a dealership by ID",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the dealership to find", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.findDealership(c, c.Uint("id"))
				},
			},
			{
				Name:  "vehicles",
				Usage: "List vehicles for a dealership",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the dealership", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.listDealershipVehicles(c, c.Uint("id"))
				},
			},
		},
	}
}

func (h *handler) createDealership(c *cli.Context, name, location string) error {
	dealership, err := h.store.CreateDealership(name, location)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Created dealership: %s at %s (ID %d)\n", dealership.Name, dealership.Location, dealership.ID)
	return nil
}

func (h *handler) deleteDealership(c *cli.Context, id uint) error {
	ok, err := h.store.DeleteDealership(id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		fmt.Fprintf(c.App.Writer, "Error: Dealership with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Deleted dealership with ID %d\n", id)
	return nil
}

func (h *handler) listDealerships(c *cli.Context) error {
	dealerships, err := h.store.Dealerships()
	if err != nil {
		return h.fail(c, err)
	}
	for _, d := range dealerships {
		fmt.Fprintf(c.App.Writer, "ID: %d, Name: %s, Location: %s\n", d.ID, d.Name, d.Location)
	}
	return nil
}

func (h *handler) findDealership(c *cli.Context, id uint) error {
	dealership, err := h.store.DealershipByID(id)
	if err != nil {
		return h.fail(c, err)
	}
	if dealership == nil {
		fmt.Fprintf(c.App.Writer, "Error: Dealership with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "ID: %d, Name: %s, Location: %s\n", dealership.ID, dealership.Name, dealership.Location)
	return nil
}

func (h *handler) listDealershipVehicles(c *cli.Context, id uint) error {
	vehicles, err := h.store.DealershipVehicles(id)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Vehicles for dealership %d:\n", id)
	for _, v := range vehicles {
		fmt.Fprintf(c.App.Writer, "  ID: %d, Model: %s, Price: $%.2f\n", v.ID, v.Model, v.Price)
	}
	return nil
}
