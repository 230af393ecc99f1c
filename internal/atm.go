package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/mdashfaqhussain/atm-asignment/internal/app/atm"
	"github.com/mdashfaqhussain/atm-asignment/internal/infra/logging"
	"github.com/mdashfaqhussain/atm-asignment/internal/infra/transport/cli"
	"github.com/mdashfaqhussain/atm-asignment/internal/infra/transport/tcp"
)

// Run starts application with the passed configuration.
// In cli mode the prompt reads from in and writes to out, logs always go to logs.
func Run(ctx context.Context, cfg atm.Config, in io.Reader, out, logs io.Writer) error {
	logging.Setup(cfg, logs)

	engine, err := atm.NewEngine(cfg.Inventory, clock.New())
	if err != nil {
		return err
	}

	slog.Info("ATM initialized", "mode", cfg.Mode, "balance", engine.Balance())

	service := atm.NewValidationService(engine)

	switch cfg.Mode {
	case atm.ModeTCP:
		return tcp.NewTransport(cfg, service, clock.New()).Start(ctx)
	case atm.ModeCLI:
		return runPrompt(ctx, cli.NewPrompt(in, out, service))
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// runPrompt returns as soon as ctx is cancelled, even if the prompt is blocked reading input.
func runPrompt(ctx context.Context, prompt *cli.Prompt) error {
	errChan := make(chan error, 1)
	// On cancellation this goroutine stays blocked on input until the process exits.
	go func() {
		errChan <- prompt.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}
