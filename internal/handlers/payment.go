package handlers

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

func (h *handler) paymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "payment",
		Usage: "Manage payments",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Record a payment against a vehicle",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "vehicle-id", Usage: "ID of the vehicle", Required: true},
					&cli.UintFlag{Name: "customer-id", Usage: "ID of the paying customer", Required: true},
					&cli.Float64Flag{Name: "amount", Usage: "Payment amount", Required: true},
					&cli.TimestampFlag{Name: "date", Usage: "Payment date (defaults to now)", Layout: "2006-01-02"},
				},
				Action: func(c *cli.Context) error {
					return h.addPayment(c, c.Uint("vehicle-id"), c.Uint("customer-id"), c.Float64("amount"), c.Timestamp("date"))
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a payment",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the payment to delete", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.deletePayment(c, c.Uint("id"))
				},
			},
			{
				Name:  "list",
				Usage: "List all payments",
				Action: func(c *cli.Context) error {
					return h.listPayments(c)
				},
			},
			{
				Name:  "find",
				Usage: "Find a payment by ID",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Usage: "ID of the payment to find", Required: true},
				},
				Action: func(c *cli.Context) error {
					return h.findPayment(c, c.Uint("id"))
				},
			},
		},
	}
}

func (h *handler) addPayment(c *cli.Context, vehicleID, customerID uint, amount float64, date *time.Time) error {
	payment, err := h.store.AddPayment(vehicleID, customerID, amount, date)
	if err != nil {
		return h.fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "Added payment of $%.2f for vehicle %d (ID %d)\n", payment.Amount, payment.VehicleID, payment.ID)
	return nil
}

func (h *handler) deletePayment(c *cli.Context, id uint) error {
	ok, err := h.store.DeletePayment(id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		fmt.Fprintf(c.App.Writer, "Error: Payment with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Deleted payment with ID %d\n", id)
	return nil
}

func (h *handler) listPayments(c *cli.Context) error {
	payments, err := h.store.Payments()
	if err != nil {
		return h.fail(c, err)
	}
	for _, p := range payments {
		fmt.Fprintf(c.App.Writer, "ID: %d, Vehicle ID: %d, Customer ID: %d, Amount: $%.2f, Status: %s\n", p.ID, p.VehicleID, p.CustomerID, p.Amount, p.Status)
	}
	return nil
}

func (h *handler) findPayment(c *cli.Context, id uint) error {
	payment, err := h.store.PaymentByID(id)
	if err != nil {
		return h.fail(c, err)
	}
	if payment == nil {
		fmt.Fprintf(c.App.Writer, "Error: Payment with ID %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "ID: %d, Vehicle ID: %d, Customer ID: %d, Amount: $%.2f, Date: %s, Status: %s\n",
		payment.ID, payment.VehicleID, payment.CustomerID, payment.Amount, payment.PaymentDate.Format("2006-01-02"), payment.Status)
	return nil
}
