package handlers

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (h *handler) customerCommand() *cli.Command {
	return &cli.Command{
		Name:  "customer",
		Usage: "Manage customers",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a customer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Name of the customer", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email of the customer", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.createCustomer(c, c.String("name"), c.String("email"))
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a customer (their vehicles stay, detached)",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the customer to delete", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.deleteCustomer(c, c.Uint("id"))
				},
			},
			{
				Name:  "list",
				Usage: "List all customers",
				Action: func(c *cli.Context) error {
					return h.listCustomers(c)
				},
			},
			{
				Name:  "find",
				Usage: "Find a customer by ID",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the customer to find", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.findCustomer(c, c.Uint("id"))
				},
			},
			{
				Name:  "vehicles",
				Usage: "List vehicles purchased by a customer",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the customer", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.listCustomerVehicles(c, c.Uint("id"))
				},
			},
		},
	}
}

func (h *handler) createCustomer(c *cli.Context, name, email string) error {
	customer, err := h.store.CreateCustomer(name, email)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Created customer: %s <%s> (ID %d)\n", customer.Name, customer.Email, customer.ID)
	return nil
}

func (h *handler) deleteCustomer(c *cli.Context, id uint) error {
	ok, err := h.store.DeleteCustomer(id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		fmt.Fprintf(c.App.Writer, "Error: Customer with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Deleted customer with ID %d\n", id)
	return nil
}

func (h *handler) listCustomers(c *cli.Context) error {
	customers, err := h.store.Customers()
	if err != nil {
		return h.fail(c, err)
	}
	for _, cust := range customers {
		fmt.Fprintf(c.App.Writer, "ID: %d, Name: %s, Email: %s\n", cust.ID, cust.Name, cust.Email)
	}
	return nil
}

func (h *handler) findCustomer(c *cli.Context, id uint) error {
	customer, err := h.store.CustomerByID(id)
	if err != nil {
		return h.fail(c, err)
	}
	if customer == nil {
		fmt.Fprintf(c.App.Writer, "Error: Customer with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "ID: %d, Name: %s, Email: %s\n", customer.ID, customer.Name, customer.Email)
	return nil
}

func (h *handler) listCustomerVehicles(c *cli.Context, id uint) error {
	vehicles, err := h.store.CustomerVehicles(id)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Vehicles for customer %d:\n", id)
	for _, v := range vehicles {
		fmt.Fprintf(c.App.Writer, "  ID: %d, Model: %s, Price: $%.2f\n", v.ID, v.Model, v.Price)
	}
	return nil
}
