package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"sort"

	"mapperkit/internal/analyze"
	"mapperkit/internal/common"
)

// DefaultRuntimeImport is the package generated adapters register with.
const DefaultRuntimeImport = "mapperkit/binding"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimeImport is the import path of the binding runtime.
	RuntimeImport string
	// OutputDir overrides the directory the file is written to.
	// Empty means the mapper package's own directory. Any other directory
	// gets adapters that import the mapper package.
	OutputDir string
	// PackageName is the package clause of files written to another
	// directory. Empty means the base name of OutputDir.
	PackageName string
	// Filename overrides the generated file name.
	// Empty means "<package>_mapper.gen.go".
	Filename string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport: DefaultRuntimeImport,
	}
}

// Generator renders adapter files from a mapper graph.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "dao_mapper.gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the adapter file for every package in graph, ordered by
// package path. Packages without interfaces are skipped.
func (g *Generator) Generate(graph *analyze.MapperGraph) ([]GeneratedFile, error) {
	paths := make([]string, 0, len(graph.Packages))
	for p := range graph.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	var files []GeneratedFile

	owners := make(map[string]string)

	for _, p := range paths {
		if len(graph.Packages[p].Interfaces) == 0 {
			continue
		}

		file, err := g.GeneratePackage(graph, p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p, err)
		}

		target := filepath.Join(file.Dir, file.Filename)
		if owner, ok := owners[target]; ok {
			return nil, fmt.Errorf("packages %s and %s would both write %s", owner, p, target)
		}

		owners[target] = p
		files = append(files, *file)
	}

	return files, nil
}

// GeneratePackage renders the adapter file for one package.
func (g *Generator) GeneratePackage(graph *analyze.MapperGraph, pkgPath string) (*GeneratedFile, error) {
	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	interfaces := graph.PackageInterfaces(pkgPath)
	if len(interfaces) == 0 {
		return nil, fmt.Errorf("package %s has no mapper interfaces", pkgPath)
	}

	out, err := g.target(pkg)
	if err != nil {
		return nil, err
	}

	if out.external {
		for _, iface := range interfaces {
			if !iface.Portable {
				return nil, fmt.Errorf("%s cannot be implemented outside its package; generate into %s", iface.ID, pkg.Dir)
			}
		}
	}

	data := g.buildTemplateData(pkg, interfaces, out)

	var buf bytes.Buffer
	if err := adapterTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(out.dir, data.Filename, buf.Bytes())

		return &GeneratedFile{
			Dir:      out.dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      out.dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// outputTarget is where a package's adapters go and what they are compiled as.
type outputTarget struct {
	dir         string
	packageName string
	// external is set when dir is not the mapper package's own directory.
	external bool
}

// target resolves the output directory and package clause for pkg.
func (g *Generator) target(pkg *analyze.PackageInfo) (outputTarget, error) {
	if g.config.OutputDir == "" {
		return outputTarget{dir: pkg.Dir, packageName: pkg.Name}, nil
	}

	dir, err := filepath.Abs(g.config.OutputDir)
	if err != nil {
		return outputTarget{}, fmt.Errorf("resolving output directory: %w", err)
	}

	if pkg.Dir != "" && dir == filepath.Clean(pkg.Dir) {
		return outputTarget{dir: dir, packageName: pkg.Name}, nil
	}

	name := g.config.PackageName
	if name == "" {
		name = filepath.Base(dir)
	}

	if !token.IsIdentifier(name) {
		return outputTarget{}, fmt.Errorf("invalid output package name %q", name)
	}

	if pkg.Name == g.runtimeAlias() {
		return outputTarget{}, fmt.Errorf("package %s shares its name with the runtime import %s", pkg.Path, g.config.RuntimeImport)
	}

	return outputTarget{dir: dir, packageName: name, external: true}, nil
}

// filename returns the output file name for a package.
func (g *Generator) filename(pkg *analyze.PackageInfo) string {
	if g.config.Filename != "" {
		return g.config.Filename
	}

	return pkg.Name + "_mapper.gen.go"
}

// runtimeAlias is the identifier generated code uses for the runtime package.
func (g *Generator) runtimeAlias() string {
	return common.PkgAlias(g.config.RuntimeImport)
}
