package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pitchdeck [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, pitchdeck builds the deck with default settings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Generate the charts and the presentation")
	fmt.Fprintln(w, "  doctor      Check assets, output paths and environment")
	fmt.Fprintln(w, "  inspect     Summarize a saved presentation")
	fmt.Fprintln(w, "  init        Write a starter config file")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pitchdeck help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pitchdeck build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the ROI and risk charts, then write the thirteen-slide deck.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Presentation path (default: Pitch_Deck_Fashion_Insta_Startup.pptx)")
	fmt.Fprintln(w, "  -a, --assets <dir>        Directory with hero.png, mockup.png, architecture.png (default: assets)")
	fmt.Fprintln(w, "      --charts <dir>        Directory for chart images (default: asset directory)")
	fmt.Fprintln(w, "      --preview <dir>       Also render one PNG per slide into dir")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Presentation title")
	fmt.Fprintln(w, "      --author <s>          Presentation author")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -t, --timeout <d>         Build timeout, e.g. 30s, 2m (env: PITCHDECK_TIMEOUT)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings, chart paths and model figures")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	w := env.Stdout
	switch args[0] {
	case "build":
		printBuildUsage(w)
	case "doctor":
		fmt.Fprintln(w, "Usage: pitchdeck doctor [--json] [-c config] [-a dir] [-o path]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check that the input images exist and decode, that the output and")
		fmt.Fprintln(w, "chart directories are writable, and report the environment.")
	case "inspect":
		fmt.Fprintln(w, "Usage: pitchdeck inspect [--json] [--texts] [file.pptx]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Read a presentation back and print its slides.")
	case "init":
		fmt.Fprintln(w, "Usage: pitchdeck init [-f] [path]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Write a config file with every default spelled out (default: pitchdeck.yaml).")
	case "completion":
		printCompletionUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: pitchdeck version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: pitchdeck help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
