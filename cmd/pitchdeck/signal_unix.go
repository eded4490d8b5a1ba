//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// buildSignals abort a running build. The deck and charts are written through
// temp files, so an interrupted build leaves the previous outputs in place.
var buildSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// notifyContext cancels the build context on the first buildSignals
// delivery. The returned stop function restores default signal handling.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, buildSignals...)
}
