package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pitchdeck/internal/config"
	"github.com/alnah/go-pitchdeck/internal/pptx"
)

// maxTitleWidth truncates the per-slide headline in text output.
const maxTitleWidth = 60

// runInspect prints a summary of a saved presentation.
func runInspect(args []string, env *Environment) error {
	var jsonOutput, texts bool
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.BoolVar(&jsonOutput, "json", false, "print the summary as JSON")
	fs.BoolVar(&texts, "texts", false, "list every paragraph of every slide")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: inspect takes one file", ErrUsage)
	}

	path := config.DefaultOutput
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	sum, err := pptx.Inspect(path)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	printSummary(env.Stdout, path, sum, texts)
	return nil
}

// printSummary outputs a human-readable presentation summary.
func printSummary(w io.Writer, path string, s *pptx.Summary, texts bool) {
	fmt.Fprintln(w, path)
	fmt.Fprintf(w, "  Title:    %s\n", s.Title)
	fmt.Fprintf(w, "  Author:   %s\n", s.Author)
	fmt.Fprintf(w, "  Slides:   %d\n", len(s.Slides))
	fmt.Fprintf(w, "  Pictures: %d\n", s.Pictures())
	fmt.Fprintln(w)

	for i, sl := range s.Slides {
		headline := ""
		if len(sl.Texts) > 0 {
			headline = truncate(sl.Texts[0], maxTitleWidth)
		}
		fmt.Fprintf(w, "%3d  shapes=%-3d pictures=%d  %s\n", i+1, sl.Shapes, sl.Pictures, headline)
		if texts {
			for _, t := range sl.Texts {
				fmt.Fprintf(w, "       %s\n", t)
			}
		}
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
