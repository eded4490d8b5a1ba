//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// buildSignals abort a running build. Windows only delivers os.Interrupt.
var buildSignals = []os.Signal{os.Interrupt}

// notifyContext cancels the build context on Ctrl+C.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, buildSignals...)
}
