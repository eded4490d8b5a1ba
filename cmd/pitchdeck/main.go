package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a command runMain does not know.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// wantsVerbose reports whether -v or --verbose appears before any "--".
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// commands lists the command names runMain dispatches.
var commands = []string{"build", "doctor", "inspect", "init", "completion", "version", "help"}

// isCommand reports whether s names a command.
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// runMain dispatches to a command and returns the process exit code.
// No arguments at all, or a bare flag list, mean "build", so "pitchdeck"
// and "pitchdeck -o deck.pptx" both produce a deck.
func runMain(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := "build", []string(nil)
	if len(args) > 1 {
		cmd, rest = args[1], args[2:]
	}
	if !isCommand(cmd) && len(cmd) > 0 && cmd[0] == '-' {
		cmd, rest = "build", args[1:]
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "inspect":
		err = runInspect(rest, env)
	case "init":
		err = runInit(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "pitchdeck %s\n", Version)
	case "help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
