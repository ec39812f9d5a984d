package console

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/payroll/pkg/validate"
)

// promptCode collects a unique employee code. Checks run in order: empty,
// format, uniqueness; each failure re-prompts.
func (c *Console) promptCode(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(c.out, "Enter Employee ID: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		switch {
		case line == "":
			fmt.Fprintln(c.out, "ID cannot be empty. Please try again.")
		case !validate.Identifier(line):
			fmt.Fprintln(c.out, "Invalid ID format! ID must contain only alphanumeric characters: ID must contain only letters and numbers with no spaces or special characters.")
		default:
			taken, err := c.svc.Exists(ctx, line)
			if err != nil {
				return "", err
			}
			if taken {
				fmt.Fprintln(c.out, "Duplicate ID! Please enter a unique ID.")
				continue
			}
			return line, nil
		}
	}
}

// promptName accepts any non-empty line, spaces included, verbatim.
func (c *Console) promptName() (string, error) {
	for {
		fmt.Fprint(c.out, "Enter Employee Name: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(c.out, "Name cannot be empty. Please try again.")
			continue
		}
		return line, nil
	}
}

func (c *Console) promptPositiveDecimal(prompt string) (decimal.Decimal, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, ok := validate.Decimal(line)
		if !ok {
			fmt.Fprintln(c.out, "Invalid format. Please enter a valid number.")
			continue
		}
		if !d.IsPositive() {
			fmt.Fprintln(c.out, "Value must be greater than zero. Please try again.")
			continue
		}
		return d, nil
	}
}

func (c *Console) promptNonNegativeInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, ok := validate.Integer(line)
		if !ok {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if n < 0 {
			fmt.Fprintln(c.out, "Value cannot be negative. Please try again.")
			continue
		}
		return n, nil
	}
}
