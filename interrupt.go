// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Writer - io.Writer to write user facing messages to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// MessageOnInterrupt - Printed to Writer when InterruptContext receives a signal.
var MessageOnInterrupt = "Signal received, exiting..."

// ErrInterrupted - Cause of a context cancelled by InterruptContext because of a signal.
// Retrieve it with context.Cause(ctx).
var ErrInterrupted = errors.New("interrupted")

// InterruptSignals - Signals InterruptContext listens to.
var InterruptSignals = []os.Signal{os.Interrupt, syscall.SIGHUP, syscall.SIGTERM}

// InterruptContext - Creates a top level context that is cancelled when one of the InterruptSignals is received.
// When the listener finishes its work, it sends a message to the done channel.
//
// On a signal, context.Cause(ctx) wraps ErrInterrupted, otherwise it is context.Canceled.
//
// Use:
//
//	func main() { ...
//	ctx, cancel, done := getopts.InterruptContext()
//	defer func() { cancel(); <-done }()
func InterruptContext() (ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, InterruptSignals...)
	return cancelOnSignal(signals, func() { signal.Stop(signals) })
}

// cancelOnSignal - Cancels the context on the first value from signals.
// stop is called once the listener is done.
func cancelOnSignal(signals <-chan os.Signal, stop func()) (context.Context, context.CancelFunc, chan struct{}) {
	done := make(chan struct{}, 1)
	ctx, cancelCause := context.WithCancelCause(context.Background())
	go func() {
		defer func() {
			stop()
			cancelCause(nil)
			done <- struct{}{}
		}()
		select {
		case sig := <-signals:
			Logger.Warn("interrupted", "signal", sig)
			fmt.Fprintf(Writer, "\n%s\n", MessageOnInterrupt)
			cancelCause(fmt.Errorf("%w: %s", ErrInterrupted, sig))
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancelCause(nil) }, done
}
