// Package cmd implements the CLI for wikiroulette using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gaurav-prasanna/wikiroulette/config"
	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/gaurav-prasanna/wikiroulette/core/fetch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is set at build time with -ldflags "-X .../cmd.version=...".
var version = "0.1.0"

// fetcherFactory builds the page fetcher once flags are resolved.
type fetcherFactory func(opts ...fetch.Option) core.PageFetcher

func defaultFetcher(opts ...fetch.Option) core.PageFetcher {
	return fetch.New(opts...)
}

// options holds the resolved flag values for one run.
type options struct {
	language string
	format   string
	width    int
	noColor  bool
	verbose  bool
}

func newRootCmd(cfg *config.Config, newFetcher fetcherFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wikiroulette",
		Short: "Print a random Wikipedia article to the console",
		Long: `wikiroulette fetches the summary of a random Wikipedia article and prints
its title and opening paragraph.

Examples:
  wikiroulette
  wikiroulette --language de
  wikiroulette -l fr --format markdown
  wikiroulette --format pdf > article.pdf

` + config.Describe(),
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, opts, newFetcher)
		},
	}

	bindFlags(cmd.Flags(), opts, cfg)
	return cmd
}

// bindFlags registers the flags; config values become their defaults.
func bindFlags(fs *pflag.FlagSet, opts *options, cfg *config.Config) {
	fs.StringVarP(&opts.language, "language", "l", cfg.Language, "Language edition of Wikipedia (ISO 639 code)")
	fs.StringVarP(&opts.format, "format", "f", cfg.Format, "Output format: "+formatList()+" (pdf supports Latin-script text only)")
	fs.IntVarP(&opts.width, "width", "w", cfg.Width, "Wrap column for text output (0 disables wrapping)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable title highlighting (also honours NO_COLOR)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Print request details to stderr")
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(cfg, defaultFetcher).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
