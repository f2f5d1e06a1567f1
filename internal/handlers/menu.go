package handlers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

var menuLines = []string{
	"1. Create Dealership",
	"2. Delete Dealership",
	"3. List Dealerships",
	"4. Find Dealership by ID",
	"5. List Vehicles for Dealership",
	"6. Create Vehicle",
	"7. Delete Vehicle",
	"8. List Vehicles",
	"9. Find Vehicle by ID",
	"10. Create Customer",
	"11. List Customers",
	"12. List Vehicles for Customer",
	"13. Add Payment",
	"14. List Payments for Vehicle",
	"15. Vehicle Balance",
	"16. Exit",
}

func (h *handler) menuCommand() *cli.Command {
	return &cli.Command{
		Name:   "menu",
		Usage:  "Interactive menu",
		Action: h.runMenu,
	}
}

// runMenu loops until the exit choice or EOF. Command failures print an
// error line and the loop continues.
func (h *handler) runMenu(c *cli.Context) error {
	scanner := bufio.NewScanner(c.App.Reader)
	out := c.App.Writer
	for {
		fmt.Fprintln(out, "\nEV Motors Menu:")
		for _, line := range menuLines {
			fmt.Fprintln(out, line)
		}
		raw, more := readLine(scanner, out, "Enter your choice (1-16)")
		if !more {
			return nil // EOF on input
		}
		choice, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(out, "Invalid choice")
			continue
		}

		switch choice {
		case 1:
			name := promptString(scanner, out, "Dealership name")
			location := promptString(scanner, out, "Location")
			_ = h.createDealership(c, name, location)
		case 2:
			if id, ok := promptID(scanner, out, "Dealership ID"); ok {
				_ = h.deleteDealership(c, id)
			}
		case 3:
			_ = h.listDealerships(c)
		case 4:
			if id, ok := promptID(scanner, out, "Dealership ID"); ok {
				_ = h.findDealership(c, id)
			}
		case 5:
			if id, ok := promptID(scanner, out, "Dealership ID"); ok {
				_ = h.listDealershipVehicles(c, id)
			}
		case 6:
			model := promptString(scanner, out, "Vehicle model")
			price, priceOK := promptFloat(scanner, out, "Price")
			dealershipID, idOK := promptID(scanner, out, "Dealership ID")
			if priceOK && idOK {
				_ = h.createVehicle(c, model, price, dealershipID, nil)
			}
		case 7:
			if id, ok := promptID(scanner, out, "Vehicle ID"); ok {
				_ = h.deleteVehicle(c, id)
			}
		case 8:
			_ = h.listVehicles(c)
		case 9:
			if id, ok := promptID(scanner, out, "Vehicle ID"); ok {
				_ = h.findVehicle(c, id)
			}
		case 10:
			name := promptString(scanner, out, "Customer name")
			email := promptString(scanner, out, "Email")
			_ = h.createCustomer(c, name, email)
		case 11:
			_ = h.listCustomers(c)
		case 12:
			if id, ok := promptID(scanner, out, "Customer ID"); ok {
				_ = h.listCustomerVehicles(c, id)
			}
		case 13:
			vehicleID, vOK := promptID(scanner, out, "Vehicle ID")
			customerID, cOK := promptID(scanner, out, "Customer ID")
			amount, aOK := promptFloat(scanner, out, "Amount")
			if vOK && cOK && aOK {
				_ = h.addPayment(c, vehicleID, customerID, amount, nil)
			}
		case 14:
			if id, ok := promptID(scanner, out, "Vehicle ID"); ok {
				_ = h.listVehiclePayments(c, id)
			}
		case 15:
			if id, ok := promptID(scanner, out, "Vehicle ID"); ok {
				_ = h.vehicleBalance(c, id)
			}
		case 16:
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice")
		}
	}
}

// readLine prompts and reads one trimmed line; the second return is false
// only on EOF.
func readLine(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprintf(out, "%s: ", label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func promptString(scanner *bufio.Scanner, out io.Writer, label string) string {
	raw, _ := readLine(scanner, out, label)
	return raw
}

func promptID(scanner *bufio.Scanner, out io.Writer, label string) (uint, bool) {
	raw, _ := readLine(scanner, out, label)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Fprintln(out, "Error: Invalid number")
		return 0, false
	}
	return uint(n), true
}

func promptFloat(scanner *bufio.Scanner, out io.Writer, label string) (float64, bool) {
	raw, _ := readLine(scanner, out, label)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(out, "Error: Invalid number")
		return 0, false
	}
	return f, true
}
