package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/payroll/modules/payroll/infrastructure/persistence"
	"github.com/iota-uz/payroll/modules/payroll/services"
	"github.com/iota-uz/payroll/pkg/eventbus"
)

func newTestConsole(input string) (*Console, *bytes.Buffer, *services.PayrollService) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := persistence.NewEmployeeRepository()
	svc := services.NewPayrollService(repo, eventbus.NewEventPublisher(log))

	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, svc, log), out, svc
}

// The menu block is part of the interface contract, down to the trailing
// spaces on the title line and the missing newline after the choice prompt.
func TestMenuText(t *testing.T) {
	want := "\n" +
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
	require.Equal(t, want, menuText)
}

func TestRun_FullTimeFlowTranscript(t *testing.T) {
	c, out, _ := newTestConsole("1\nEMP001\nAlice\n3000.50\n4\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	want := menuText +
		"Enter Employee ID: " +
		"Enter Employee Name: " +
		"Enter Monthly Salary: $" +
		"Full-time employee added successfully!\n" +
		menuText +
		"------ Employee Payroll Report ------\n" +
		"Employee: Alice (ID: EMP001)\n" +
		"Fixed Monthly Salary: $3000.5\n" +
		"\n" +
		menuText +
		"Exiting program. Goodbye!\n"
	require.Equal(t, want, out.String())
}

func TestRun_PartTimeFlowTranscript(t *testing.T) {
	c, out, _ := newTestConsole("2\nPT1\nBob Marley\n52.50\n4\n4\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	want := menuText +
		"Enter Employee ID: " +
		"Enter Employee Name: " +
		"Enter Hourly Wage: $" +
		"Enter Number of Hours Worked: " +
		"Part-time employee added successfully!\n" +
		menuText +
		"------ Employee Payroll Report ------\n" +
		"Employee: Bob Marley (ID: PT1)\n" +
		"Hourly Wage: $52.5\n" +
		"Hours Worked: 4\n" +
		"Total Salary: $210\n" +
		"\n" +
		menuText +
		"Exiting program. Goodbye!\n"
	require.Equal(t, want, out.String())
}

func TestRun_ContractualFlowTranscript(t *testing.T) {
	c, out, _ := newTestConsole("3\nCT1\nCara\n1500.25\n3\n4\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	want := menuText +
		"Enter Employee ID: " +
		"Enter Employee Name: " +
		"Enter Payment Per Project: $" +
		"Enter Number of Projects Completed: " +
		"Contractual employee added successfully!\n" +
		menuText +
		"------ Employee Payroll Report ------\n" +
		"Employee: Cara (ID: CT1)\n" +
		"Contract Payment Per Project: $1500.25\n" +
		"Projects Completed: 3\n" +
		"Total Salary: $4500.75\n" +
		"\n" +
		menuText +
		"Exiting program. Goodbye!\n"
	require.Equal(t, want, out.String())
}

func TestRun_InvalidMenuChoicesReprompt(t *testing.T) {
	c, out, _ := newTestConsole("abc\n9\n 5\n0\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	invalid := "Invalid choice. Please enter a number between 1 and 5.\n"
	want := menuText + invalid +
		menuText + invalid +
		menuText + invalid +
		menuText + invalid +
		menuText + "Exiting program. Goodbye!\n"
	require.Equal(t, want, out.String())
}

func TestRun_LeadingZeroChoiceExits(t *testing.T) {
	c, out, _ := newTestConsole("05\n")

	err := c.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, menuText+"Exiting program. Goodbye!\n", out.String())
}

func TestRun_EmptyReport(t *testing.T) {
	c, out, _ := newTestConsole("4\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	want := menuText +
		"No employees to display.\n" +
		menuText +
		"Exiting program. Goodbye!\n"
	require.Equal(t, want, out.String())
}

func TestRun_ReportKeepsInsertionOrder(t *testing.T) {
	c, out, _ := newTestConsole(
		"3\nCT1\nCara\n100\n1\n" +
			"1\nFT1\nAlice\n3000\n" +
			"4\n5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)

	report := out.String()
	first := strings.Index(report, "Employee: Cara (ID: CT1)")
	second := strings.Index(report, "Employee: Alice (ID: FT1)")
	require.Greater(t, first, -1)
	require.Greater(t, second, first, "records must render in the order they were added")
}

func TestRun_DuplicateIDRepromptsAcrossKinds(t *testing.T) {
	c, out, svc := newTestConsole(
		"1\nEMP001\nAlice\n100\n" +
			"2\nEMP001\nEMP002\nBob\n10\n5\n" +
			"5\n")

	err := c.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "Duplicate ID! Please enter a unique ID.\n"))
	require.Contains(t, out.String(), "Part-time employee added successfully!\n")

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestRun_EOFBeforeChoice(t *testing.T) {
	c, out, _ := newTestConsole("")

	err := c.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, menuText, out.String())
}

func TestRun_EOFMidAddDiscardsPartialRecord(t *testing.T) {
	c, _, svc := newTestConsole("1\nEMP9\n")

	err := c.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	c, out, _ := newTestConsole("4\n5")

	err := c.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, out.String(), "Exiting program. Goodbye!\n")
}

func TestRun_CancelledContextStopsSession(t *testing.T) {
	c, _, _ := newTestConsole("4\n5\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
