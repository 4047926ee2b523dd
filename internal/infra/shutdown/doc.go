// Package shutdown cancels command contexts on termination signals.
//
// Usage:
//
//	h := shutdown.NewHandler()
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//	err := app.RunContext(ctx, os.Args)
//	os.Exit(h.ExitCode(1))
package shutdown
