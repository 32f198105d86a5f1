// Package cmd — run pipeline.
// A run validates flags, fetches one random page, renders it and writes it:
// fetch → render → write.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/wikiroulette/config"
	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/gaurav-prasanna/wikiroulette/core/fetch"
	"github.com/gaurav-prasanna/wikiroulette/core/output"
	"github.com/gaurav-prasanna/wikiroulette/core/render"
	"github.com/spf13/cobra"
)

// formats lists the accepted --format values in help order.
var formats = []string{"text", "markdown", "json", "pdf"}

func formatList() string {
	return strings.Join(formats, ", ")
}

func run(cmd *cobra.Command, cfg *config.Config, opts *options, newFetcher fetcherFactory) error {
	// Flags are checked before any network call.
	if err := validateFlags(opts); err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	color := output.ColorEnabled(stdout, opts.noColor)

	renderer, err := selectRenderer(opts, color)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher := newFetcher(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(logger),
	)

	// 1. Fetch
	page, err := fetcher.Fetch(cmd.Context(), opts.language)
	if err != nil {
		return err
	}

	// 2. Render
	data, err := renderer.Render(page)
	if err != nil {
		return fmt.Errorf("render %s: %w", renderer.Name(), err)
	}

	// 3. Write
	return output.New(stdout).Write(data)
}

// validateFlags checks format and width.
func validateFlags(opts *options) error {
	if opts.width < 0 {
		return fmt.Errorf("--width must be zero or positive (got %d)", opts.width)
	}

	for _, f := range formats {
		if opts.format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q: must be one of %s", opts.format, formatList())
}

// selectRenderer creates the Renderer for the chosen format.
func selectRenderer(opts *options, color bool) (core.Renderer, error) {
	switch opts.format {
	case "text":
		return render.NewTextRenderer(opts.width, color), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
