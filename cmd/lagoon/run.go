package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/bft-labs/lagoon/internal/adapters/fs"
	"github.com/bft-labs/lagoon/internal/app"
	"github.com/bft-labs/lagoon/internal/cliconfig"
	"github.com/bft-labs/lagoon/internal/parser"
	"github.com/bft-labs/lagoon/pkg/lagoon"
	logpkg "github.com/bft-labs/lagoon/pkg/log"
)

// Exit codes returned by the lagoon CLI.
const (
	// ExitSuccess indicates the answer was printed.
	ExitSuccess = 0

	// ExitFailure indicates an unreadable, malformed or invalid input.
	ExitFailure = 1

	// ExitConfigError indicates a bad flag, env value or config file.
	ExitConfigError = 2
)

type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps an error returned by the root command to a process status.
// Empty, malformed and invalid-direction inputs all share ExitFailure.
func exitCode(err error) int {
	var ce *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ce):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

func writeAnswer(w io.Writer, res lagoon.Result) {
	fmt.Fprintln(w, "Answer", res.Total)
}

func run(ctx context.Context, cfg cliconfig.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	zl := cfg.LoggerTo(stderr)
	logger := logpkg.NewZerologAdapterWithLogger(zl)
	logger.Debug("configuration", logpkg.Any("config", cfg))

	decoder, err := parser.DecoderByName(cfg.Decoder)
	if err != nil {
		return &configError{err: err}
	}

	runner := app.NewRunner(fs.NewInputFile(cfg.InputPath), logger,
		lagoon.WithDecoder(decoder),
		lagoon.WithClosureCheck(cfg.CheckClosed),
	)

	report := func(res lagoon.Result, err error) {
		if err != nil {
			return
		}
		if cfg.Dump {
			for _, ins := range res.Plan.Instructions() {
				zl.Info().Msg(ins.String())
			}
		}
		writeAnswer(stdout, res)
	}

	if !cfg.Watch {
		res, err := runner.Solve(ctx)
		if err != nil {
			return err
		}
		report(res, nil)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := app.NewWatcher(runner, cfg.Debounce, report)
	if err := w.Run(ctx); err != nil {
		return err
	}
	zl.Info().Msg("received signal, stopping...")
	return nil
}
