package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alt3/tokens-go/internal/cli/command"
	"github.com/alt3/tokens-go/internal/infra/shutdown"
)

func main() {
	app := command.App()

	h := shutdown.NewHandler()
	ctx, stop := h.Context(context.Background())
	err := app.RunContext(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(h.ExitCode(1))
	}
}
