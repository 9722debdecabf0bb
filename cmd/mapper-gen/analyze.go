package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mapperkit/internal/analyze"
)

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <package>...",
		Short: "List the mapper interfaces of packages and report problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, graph, err := opts.load(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printGraph(out, graph)

			diags := analyzer.Diagnostics()
			if _, err := diags.WriteTo(out); err != nil {
				return err
			}

			return diags.Error()
		},
	}
}

// printGraph writes one block per package: interfaces, then their methods.
func printGraph(w io.Writer, graph *analyze.MapperGraph) {
	paths := make([]string, 0, len(graph.Packages))
	for p := range graph.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	for _, p := range paths {
		fmt.Fprintf(w, "package %s\n", p)

		for _, iface := range graph.PackageInterfaces(p) {
			fmt.Fprintf(w, "  %s (%s)\n", iface.ID.Name, iface.Pos)

			for i := range iface.Methods {
				m := &iface.Methods[i]
				fmt.Fprintf(w, "    %s [%s]\n", signature(m), m.Shape)
			}
		}
	}
}

// signature renders a method the way it is declared, e.g.
// "QueryUserName(uID string) (string, error)".
func signature(m *analyze.MethodInfo) string {
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		typ := p.Type
		if p.Variadic {
			typ = "..." + strings.TrimPrefix(typ, "[]")
		}

		params = append(params, p.Name+" "+typ)
	}

	sig := m.Name + "(" + strings.Join(params, ", ") + ")"

	switch len(m.Results) {
	case 0:
		return sig
	case 1:
		return sig + " " + m.Results[0]
	default:
		return sig + " (" + strings.Join(m.Results, ", ") + ")"
	}
}
