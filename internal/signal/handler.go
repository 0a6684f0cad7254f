// Package signal turns SIGINT and SIGTERM into context cancellation for the
// headless bidclock commands. The interactive timer handles ctrl+c itself.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is the cancellation cause recorded when a signal arrives.
var ErrInterrupted = errors.New("interrupted")

// Handler cancels its context when SIGINT or SIGTERM is received.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel      context.CancelCauseFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal

	mu       sync.Mutex
	received os.Signal
}

// NewHandler creates a handler bound to parent and starts listening.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := runClock(h.Context())
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancelCause(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		sigChan:     make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context canceled on interrupt or Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes when a signal is received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Signal returns the first signal received, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// Stop stops listening and cancels the context. Safe to call repeatedly.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel(context.Canceled)
	})
}

// handleSignal records sig and cancels the context. Only the first call has effect.
func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.received = sig
		h.mu.Unlock()

		cause := ErrInterrupted
		if sig != nil {
			cause = fmt.Errorf("%w by %s", ErrInterrupted, sig)
		}
		h.cancel(cause)
		close(h.interrupted)
	})
}

// listen handles signals until Stop is called or the parent is canceled.
// Repeated signals are drained so delivery never blocks.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
