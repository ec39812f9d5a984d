package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/payroll/modules/payroll/domain/aggregates/employee"
	"github.com/iota-uz/payroll/modules/payroll/services"
	"github.com/iota-uz/payroll/pkg/validate"
)

const (
	menuMin = 1
	menuMax = 5
)

// The menu block is printed before every read, starting with a blank
// line. The title line carries four trailing spaces and the choice prompt
// ends without a newline; both are part of the interface contract.
const menuText = "\n" +
	"=============================\n" +
	"    PAYROLL SYSTEM MENU    \n" +
	"=============================\n" +
	"[1] Full-time Employee\n" +
	"[2] Part-time Employee\n" +
	"[3] Contractual Employee\n" +
	"[4] Display Payroll Report\n" +
	"[5] Exit\n" +
	"=============================\n" +
	"Enter your choice: "

// Console drives one interactive payroll session over any reader/writer
// pair. Prompts and reports go to out; diagnostics go to the logger only,
// so out carries nothing but the interactive surface.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	svc *services.PayrollService
	log *logrus.Logger
}

func New(in io.Reader, out io.Writer, svc *services.PayrollService, log *logrus.Logger) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		svc: svc,
		log: log,
	}
}

// Run loops over the menu until the exit choice is selected or input ends.
// Invalid input never terminates the session; every prompt re-prompts.
func (c *Console) Run(ctx context.Context) error {
	c.log.Debug("payroll session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, menuText)
		line, err := c.readLine()
		if err != nil {
			return err
		}

		choice, ok := validate.MenuChoice(line, menuMin, menuMax)
		if !ok {
			fmt.Fprintln(c.out, "Invalid choice. Please enter a number between 1 and 5.")
			continue
		}

		switch choice {
		case 1:
			err = c.addFullTime(ctx)
		case 2:
			err = c.addPartTime(ctx)
		case 3:
			err = c.addContractual(ctx)
		case 4:
			err = c.displayReport(ctx)
		case 5:
			fmt.Fprintln(c.out, "Exiting program. Goodbye!")
			c.log.Debug("payroll session ended")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readLine consumes exactly one line. Only the trailing newline (or CRLF)
// is stripped; interior and leading whitespace reach the validators as
// typed. A final unterminated line still counts as input.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) addFullTime(ctx context.Context) error {
	code, err := c.promptCode(ctx)
	if err != nil {
		return err
	}
	name, err := c.promptName()
	if err != nil {
		return err
	}
	salary, err := c.promptPositiveDecimal("Enter Monthly Salary: $")
	if err != nil {
		return err
	}

	dto := &employee.CreateFullTimeDTO{Code: code, Name: name, MonthlySalary: salary}
	if fields, ok := dto.Ok(ctx); !ok {
		return fmt.Errorf("full-time employee rejected: %v", fields)
	}
	if _, err := c.svc.CreateFullTime(ctx, dto); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Full-time employee added successfully!")
	return nil
}

func (c *Console) addPartTime(ctx context.Context) error {
	code, err := c.promptCode(ctx)
	if err != nil {
		return err
	}
	name, err := c.promptName()
	if err != nil {
		return err
	}
	wage, err := c.promptPositiveDecimal("Enter Hourly Wage: $")
	if err != nil {
		return err
	}
	hours, err := c.promptPositiveDecimal("Enter Number of Hours Worked: ")
	if err != nil {
		return err
	}

	dto := &employee.CreatePartTimeDTO{Code: code, Name: name, HourlyWage: wage, HoursWorked: hours}
	if fields, ok := dto.Ok(ctx); !ok {
		return fmt.Errorf("part-time employee rejected: %v", fields)
	}
	if _, err := c.svc.CreatePartTime(ctx, dto); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Part-time employee added successfully!")
	return nil
}

func (c *Console) addContractual(ctx context.Context) error {
	code, err := c.promptCode(ctx)
	if err != nil {
		return err
	}
	name, err := c.promptName()
	if err != nil {
		return err
	}
	payment, err := c.promptPositiveDecimal("Enter Payment Per Project: $")
	if err != nil {
		return err
	}
	projects, err := c.promptNonNegativeInt("Enter Number of Projects Completed: ")
	if err != nil {
		return err
	}

	dto := &employee.CreateContractualDTO{Code: code, Name: name, PaymentPerProject: payment, ProjectsCompleted: projects}
	if fields, ok := dto.Ok(ctx); !ok {
		return fmt.Errorf("contractual employee rejected: %v", fields)
	}
	if _, err := c.svc.CreateContractual(ctx, dto); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Contractual employee added successfully!")
	return nil
}
