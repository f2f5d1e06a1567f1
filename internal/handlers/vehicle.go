package handlers

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (h *handler) vehicleCommand() *cli.Command {
	return &cli.Command{
		Name:  "vehicle",
		Usage: "Manage vehicles",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a vehicle on a dealership's lot",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "model", Usage: "Model of the vehicle", Required: true},
					&cli.Float64Flag{Name: "price", Usage: "Price of the vehicle", Required: true},
					&cli.UintFlag{Name: "dealership-id", Usage: "ID of the dealership", Required: true},
					&cli.UintFlag{Name: "customer-id", Usage: "ID of the buying customer (optional)"},
				},
				Action: func(c *cli.Context) error {
					var customerID *uint
					if c.IsSet("customer-id") {
						id := c.Uint("customer-id")
						customerID = &id
					}
					return h.createVehicle(c, c.String("model"), c.Float64("price"), c.Uint("dealership-id"), customerID)
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a vehicle and its payments",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the vehicle to delete", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.deleteVehicle(c, c.Uint("id"))
				},
			},
			{
				Name:  "list",
				Usage: "List all vehicles",
				Action: func(c *cli.Context) error {
					return h.listVehicles(c)
				},
			},
			{
				Name:  "find",
				Usage: "Find a vehicle by ID",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the vehicle to find", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.findVehicle(c, c.Uint("id"))
				},
			},
			{
				Name:  "payments",
				Usage: "List payments for a vehicle",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the vehicle", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.listVehiclePayments(c, c.Uint("id"))
				},
			},
			{
				Name:  "balance",
				Usage: "Show total paid and remaining balance for a vehicle",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the vehicle", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.vehicleBalance(c, c.Uint("id"))
				},
			},
		},
	}
}

func (h *handler) createVehicle(c *cli.Context, model string, price float64, dealershipID uint, customerID *uint) error {
	vehicle, err := h.store.CreateVehicle(model, price, dealershipID, customerID)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Created vehicle: %s, Price: $%.2f (ID %d)\n", vehicle.Model, vehicle.Price, vehicle.ID)
	return nil
}

func (h *handler) deleteVehicle(c *cli.Context, id uint) error {
	ok, err := h.store.DeleteVehicle(id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		fmt.Fprintf(c.App.Writer, "Error: Vehicle with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Deleted vehicle with ID %d\n", id)
	return nil
}

func (h *handler) listVehicles(c *cli.Context) error {
	vehicles, err := h.store.Vehicles()
	if err != nil {
		return h.fail(c, err)
	}
	for _, v := range vehicles {
		fmt.Fprintf(c.App.Writer, "ID: %d, Model: %s, Price: $%.2f, Dealership ID: %d\n", v.ID, v.Model, v.Price, v.DealershipID)
	}
	return nil
}

func (h *handler) findVehicle(c *cli.Context, id uint) error {
	vehicle, err := h.store.VehicleByID(id)
	if err != nil {
		return h.fail(c, err)
	}
	if vehicle == nil {
		fmt.Fprintf(c.App.Writer, "Error: Vehicle with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "ID: %d, Model: %s, Price: $%.2f, Dealership ID: %d\n", vehicle.ID, vehicle.Model, vehicle.Price, vehicle.DealershipID)
	return nil
}

func (h *handler) listVehiclePayments(c *cli.Context, id uint) error {
	payments, err := h.store.VehiclePayments(id)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Payments for vehicle %d:\n", id)
	for _, p := range payments {
		fmt.Fprintf(c.App.Writer, "  ID: %d, Amount: $%.2f, Date: %s, Status: %s\n", p.ID, p.Amount, p.PaymentDate.Format("2006-01-02"), p.Status)
	}
	return nil
}

func (h *handler) vehicleBalance(c *cli.Context, id uint) error {
	total, err := h.store.TotalPayments(id)
	if err != nil {
		return h.fail(c, err)
	}
	remaining, err := h.store.RemainingBalance(id)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Total paid: $%.2f, Remaining balance: $%.2f\n", total, remaining)
	return nil
}
