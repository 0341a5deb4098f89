// Command onboard runs the account opening wizard in the terminal.
//
// Usage:
//
//	onboard [file.env ...]
//
// Settings come from the environment, a .env file in the working directory
// and the env files named on the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/onboarding/internal/terminal"
	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/flows"
	"github.com/dmitrymomot/onboarding/pkg/formatter"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/submission"
	"github.com/dmitrymomot/onboarding/pkg/validator"
	"github.com/dmitrymomot/onboarding/pkg/wizard"
)

const serviceName = "onboard"

func main() {
	err := run(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, terminal.ErrExited):
		fmt.Fprintln(os.Stderr, "Onboarding cancelled.")
	case errors.Is(err, terminal.ErrAborted), errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "onboard: %v\n", err)
		os.Exit(1)
	}
}

func run(envFiles []string) error {
	cfg, err := loadConfig(envFiles...)
	if err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	loc, err := locale.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = sessionContext(ctx, cfg)

	svc := submission.NewService(
		submission.NewSimulated(loc.Bank, submission.WithDelay(cfg.SubmitDelay)),
		submission.WithAttempts(cfg.SubmitAttempts),
		submission.WithRetryDelay(cfg.RetryDelay),
		submission.WithLogger(log),
	)

	start := func(accountType field.AccountType) (*wizard.Wizard, error) {
		flow, err := flows.Load(loc.Code, accountType)
		if err != nil {
			return nil, err
		}
		return wizard.New(flow,
			wizard.WithFormatter(formatter.New(loc)),
			wizard.WithValidator(validator.NewStepValidator(loc)),
			wizard.WithSubmitter(svc),
			wizard.WithLogger(log),
		)
	}

	host := terminal.NewHost(terminal.NewSurveyDriver(os.Stdout), start,
		terminal.WithLanguage(loc.Tag()),
		terminal.WithLogger(log),
	)

	log.InfoContext(ctx, "onboarding session started", logger.Locale(loc.Code))
	receipt, err := host.Run(ctx)
	if err != nil {
		log.InfoContext(ctx, "onboarding session ended", logger.Error(err))
		return err
	}
	log.InfoContext(ctx, "onboarding session completed",
		logger.Reference(receipt.Reference),
		slog.String("branch", receipt.BranchNumber))
	return nil
}
