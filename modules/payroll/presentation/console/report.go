package console

import (
	"context"
	"fmt"

	"github.com/iota-uz/payroll/modules/payroll/domain/aggregates/employee"
)

func (c *Console) displayReport(ctx context.Context) error {
	records, err := c.svc.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No employees to display.")
		return nil
	}

	fmt.Fprintln(c.out, "------ Employee Payroll Report ------")
	for _, rec := range records {
		c.renderRecord(rec)
		fmt.Fprintln(c.out)
	}
	return nil
}

// renderRecord prints one report block. Like the pay rule, rendering
// dispatches over the closed variant set in a single switch.
func (c *Console) renderRecord(rec employee.Record) {
	fmt.Fprintf(c.out, "Employee: %s (ID: %s)\n", rec.Name(), rec.Code())
	switch e := rec.(type) {
	case employee.FullTime:
		fmt.Fprintf(c.out, "Fixed Monthly Salary: $%s\n", e.MonthlySalary())
	case employee.PartTime:
		fmt.Fprintf(c.out, "Hourly Wage: $%s\n", e.HourlyWage())
		fmt.Fprintf(c.out, "Hours Worked: %s\n", e.HoursWorked())
		fmt.Fprintf(c.out, "Total Salary: $%s\n", employee.Salary(e))
	case employee.Contractual:
		fmt.Fprintf(c.out, "Contract Payment Per Project: $%s\n", e.PaymentPerProject())
		fmt.Fprintf(c.out, "Projects Completed: %d\n", e.ProjectsCompleted())
		fmt.Fprintf(c.out, "Total Salary: $%s\n", employee.Salary(e))
	}
}
