package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iota-uz/payroll/modules/payroll/domain/aggregates/employee"
	"github.com/iota-uz/payroll/modules/payroll/infrastructure/persistence"
	"github.com/iota-uz/payroll/modules/payroll/presentation/console"
	"github.com/iota-uz/payroll/modules/payroll/services"
	"github.com/iota-uz/payroll/pkg/configuration"
	"github.com/iota-uz/payroll/pkg/eventbus"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payroll",
		Short:         "Interactive payroll registry console",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})
	return cmd
}

func runSession(cmd *cobra.Command) error {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()
	logger.WithFields(logrus.Fields{
		"version":     version,
		"environment": conf.GoAppEnvironment,
	}).Debug("payroll starting")

	publisher := eventbus.NewEventPublisher(logger)
	registerAuditSubscriber(publisher, logger)

	repo := persistence.NewEmployeeRepository()
	svc := services.NewPayrollService(repo, publisher)

	ui := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), svc, logger)
	if err := ui.Run(cmd.Context()); err != nil {
		// A closed stdin ends the session; that is not a failure.
		if errors.Is(err, io.EOF) {
			logger.Debug("input closed, ending session")
			return nil
		}
		return withCode(exitError, err)
	}
	return nil
}

// registerAuditSubscriber logs every registry insert at debug level, so a
// LOG_LEVEL=debug run leaves an audit trail on stderr without touching
// the interactive surface.
func registerAuditSubscriber(bus eventbus.EventBus, logger *logrus.Logger) {
	bus.Subscribe(func(ev *employee.CreatedEvent) {
		logger.WithFields(logrus.Fields{
			"record_id": ev.RecordID,
			"code":      ev.Code,
			"kind":      ev.Kind,
		}).Debug("employee added to registry")
	})
}

func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}
}
