// internal/appshell/shell.go

// Package appshell owns process-level concerns: signal handling and the
// exit-code contract. Keeping them here lets app.RunContext stay testable.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs the given entry point with a signal-aware context, then exits.
// Interrupt or SIGTERM cancels the context; a canceled run that would
// otherwise report success exits 130.
func Main(run func(ctx context.Context, argv []string, stdout, stderr io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
