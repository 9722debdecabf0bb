package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapperkit/internal/gen"
)

type genOptions struct {
	out     string
	file    string
	pkgName string
	runtime string
	dryRun  bool
}

func newGenCmd(opts *globalOptions) *cobra.Command {
	genOpts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen <package>...",
		Short: "Write adapter files for the mapper interfaces of packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}

			analyzer, graph, err := opts.load(args)
			if err != nil {
				return err
			}

			diags := analyzer.Diagnostics()
			for _, w := range diags.Warnings {
				log.Warn(w.Message, "code", w.Code, "mapper", w.Mapper, "method", w.Method)
			}

			if err := diags.Error(); err != nil {
				return fmt.Errorf("cannot generate adapters: %w", err)
			}

			generator := gen.NewGenerator(gen.GeneratorConfig{
				RuntimeImport: genOpts.runtime,
				OutputDir:     genOpts.out,
				PackageName:   genOpts.pkgName,
				Filename:      genOpts.file,
			})

			files, err := generator.Generate(graph)
			if err != nil {
				return err
			}

			if genOpts.dryRun {
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", f.Filename, f.Content)
				}

				return nil
			}

			written, err := gen.WriteFiles(files, ".")
			if err != nil {
				return err
			}

			for _, path := range written {
				log.Info("wrote adapters", "path", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&genOpts.out, "out", "", "Output directory (default: each package's own directory)")
	cmd.Flags().StringVar(&genOpts.pkgName, "package", "", "Package clause for files written to --out (default: base name of --out)")
	cmd.Flags().StringVar(&genOpts.file, "file", "", "Output file name (default: <package>_mapper.gen.go)")
	cmd.Flags().StringVar(&genOpts.runtime, "runtime", gen.DefaultRuntimeImport, "Import path of the binding runtime")
	cmd.Flags().BoolVar(&genOpts.dryRun, "dry-run", false, "Print generated code instead of writing it")

	return cmd
}
