// Command percolate replays a list of opened sites into an N×N percolation
// grid and reports whether the system percolates.
//
// Input: the grid size N, then "row col" pairs, whitespace separated.
//
//	percolate input20.txt
//	percolate --min-open < input20.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

// config carries the command-line flags.
type config struct {
	logLevel string
	minOpen  bool
	conn8    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("percolate failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "percolate [file]",
		Short: "Open sites on an N×N grid and report whether it percolates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return run(in, cmd.OutOrStdout(), cfg, logger)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Flags().StringVarP(&cfg.logLevel, "log-level", "l", "warn", "log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&cfg.minOpen, "min-open", false, "also report how many more sites must open to percolate")
	cmd.Flags().BoolVar(&cfg.conn8, "conn8", false, "join diagonal neighbors as well")

	return cmd
}

// newLogger builds a text slog.Logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("percolate: log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// run reads the input, opens every listed site in order and writes a summary.
func run(in io.Reader, out io.Writer, cfg config, logger *slog.Logger) error {
	n, sites, err := readInput(in)
	if err != nil {
		return err
	}
	var opts []percolation.Option
	if cfg.conn8 {
		opts = append(opts, percolation.WithConnectivity(percolation.Conn8))
	}
	g, err := percolation.New(n, opts...)
	if err != nil {
		return err
	}
	logger.Info("grid created", "size", n, "sites", len(sites), "conn8", cfg.conn8)

	percolatedAt := -1
	for i, s := range sites {
		if err = g.Open(s.Row, s.Col); err != nil {
			return fmt.Errorf("percolate: site %d: %w", i+1, err)
		}
		logger.Debug("opened", "row", s.Row, "col", s.Col, "open", g.OpenSites())
		if percolatedAt < 0 && g.Percolates() {
			percolatedAt = i + 1
			logger.Info("percolates", "after", percolatedAt)
		}
	}

	fmt.Fprintf(out, "size:       %s\n", humanize.Comma(int64(n)))
	fmt.Fprintf(out, "open sites: %s of %s\n", humanize.Comma(int64(g.OpenSites())), humanize.Comma(int64(n)*int64(n)))
	fmt.Fprintf(out, "percolates: %v\n", g.Percolates())
	if cfg.minOpen {
		fmt.Fprintf(out, "min open:   %s\n", humanize.Comma(int64(len(g.MinOpenToPercolate()))))
	}

	return nil
}
