package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"mapperkit/internal/analyze"
	"mapperkit/internal/logging"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	dir      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "mapper-gen",
		Short:         "mapper-gen generates mapperkit adapters for mapper interfaces",
		Long:          `mapper-gen loads Go packages, finds their exported interfaces and writes the adapter structs that let a mapperkit session serve them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Directory package patterns are resolved from")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newGenCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func (o *globalOptions) logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}

	return logging.New(level), nil
}

// load runs the analyzer over patterns.
func (o *globalOptions) load(patterns []string) (*analyze.Analyzer, *analyze.MapperGraph, error) {
	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = o.dir

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, nil, err
	}

	return analyzer, graph, nil
}
