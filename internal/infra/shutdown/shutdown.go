package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler turns the first termination signal into context cancellation.
type Handler struct {
	signals  []os.Signal
	mu       sync.Mutex
	received os.Signal
}

// NewHandler creates a handler for signals, SIGINT and SIGTERM by default.
func NewHandler(signals ...os.Signal) *Handler {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Handler{signals: signals}
}

// Context returns a child of parent that is canceled when a signal arrives.
// The returned stop function releases the signal subscription.
func (h *Handler) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, h.signals...)

	go func() {
		select {
		case sig := <-sigCh:
			h.mu.Lock()
			h.received = sig
			h.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

// Received returns the signal that canceled the context, or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode returns the shell convention 128+n for a received signal, and
// code otherwise.
func (h *Handler) ExitCode(code int) int {
	if sig, ok := h.Received().(syscall.Signal); ok {
		return 128 + int(sig)
	}
	return code
}
