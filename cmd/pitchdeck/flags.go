package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures and bad arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	assets  string
	charts  string
	preview string
	title   string
	author  string
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addBuildFlags registers the build flags on fs.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "presentation path (.pptx)")
	fs.StringVarP(&f.assets, "assets", "a", "", "directory holding hero, mockup and architecture images")
	fs.StringVar(&f.charts, "charts", "", "directory for chart images (default: asset directory)")
	fs.StringVar(&f.preview, "preview", "", "render slide previews into this directory")
	fs.StringVar(&f.title, "title", "", "presentation title")
	fs.StringVar(&f.author, "author", "", "presentation author")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "build timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
}

// buildFlagSet creates the build FlagSet. Completion reads the same set.
func buildFlagSet(f *buildFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	addBuildFlags(fs, f)
	fs.Usage = func() { printBuildUsage(usage) }
	return fs
}

// parseBuildFlags parses build command flags. Positional arguments are
// rejected.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, error) {
	f := &buildFlags{}
	fs := buildFlagSet(f, usage)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}
