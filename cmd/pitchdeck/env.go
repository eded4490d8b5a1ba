package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-pitchdeck/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and configuration.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // Used when --config is not given
	Color  bool           // Colored status tags on Stdout
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
		Color:  isTerminal(os.Stdout),
	}
}
