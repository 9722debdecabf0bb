package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"mapperkit/internal/common"
	"mapperkit/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their mapper interfaces.
type Analyzer struct {
	graph *MapperGraph
	diags diagnostic.Diagnostics
	// Dir is the working directory patterns are resolved against.
	// Empty means the process working directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewMapperGraph()}
}

// LoadPackages loads the specified packages and extracts their interfaces.
// Patterns are standard Go package patterns (e.g., "./dao", "mapperkit/examples/dao").
func (a *Analyzer) LoadPackages(patterns ...string) (*MapperGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current mapper graph.
func (a *Analyzer) Graph() *MapperGraph {
	return a.graph
}

// Diagnostics returns everything reported while loading.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information")
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		iface, ok := named.Underlying().(*types.Interface)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		pos := pkg.Fset.Position(typeName.Pos()).String()

		info, ok := a.analyzeInterface(pkg.Types, id, named, iface)
		if !ok {
			continue
		}

		info.Pos = pos
		a.graph.Interfaces[id] = info
		pkgInfo.Interfaces = append(pkgInfo.Interfaces, id)
	}

	if len(pkgInfo.Interfaces) == 0 {
		a.diags.AddWarning("no_mappers", "package declares no mapper interfaces", pkg.PkgPath, "")
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// analyzeInterface builds the InterfaceInfo for one interface. It returns
// false when the interface cannot be served by a generated adapter.
func (a *Analyzer) analyzeInterface(
	pkg *types.Package,
	id TypeID,
	named *types.Named,
	iface *types.Interface,
) (*InterfaceInfo, bool) {
	mapper := id.String()

	if named.TypeParams().Len() > 0 {
		a.diags.AddWarning("generic_interface", "generic interfaces are skipped", mapper, "")
		return nil, false
	}

	if !iface.IsMethodSet() {
		a.diags.AddInfo("constraint_interface", "type constraint interfaces are skipped", mapper, "")
		return nil, false
	}

	if iface.NumMethods() == 0 {
		a.diags.AddInfo("empty_interface", "interface has no methods to map", mapper, "")
		return nil, false
	}

	imports := make(map[string]ImportInfo)
	local := func(p *types.Package) string {
		if p == pkg {
			return ""
		}

		imports[p.Path()] = ImportInfo{Name: p.Name(), Path: p.Path()}

		return p.Name()
	}
	qualified := func(p *types.Package) string {
		if p != pkg {
			imports[p.Path()] = ImportInfo{Name: p.Name(), Path: p.Path()}
		}

		return p.Name()
	}

	info := &InterfaceInfo{ID: id, Portable: true}
	valid := true

	for i := range iface.NumMethods() {
		fn := iface.Method(i)
		if !fn.Exported() && fn.Pkg() != pkg {
			a.diags.AddError("foreign_unexported_method",
				"unexported method from another package cannot be implemented", mapper, fn.Name())
			valid = false

			continue
		}

		sig := fn.Type().(*types.Signature)
		if !fn.Exported() || refersToUnexported(sig, pkg) {
			info.Portable = false
		}

		method := analyzeMethod(fn.Name(), sig, local, qualified)

		switch method.Shape {
		case ShapeUnsupported:
			a.diags.AddError("unsupported_results",
				"results must be (), (T), (error) or (T, error)", mapper, fn.Name())
			valid = false
		case ShapeNone, ShapeValue:
			a.diags.AddWarning("no_error_result",
				"method has no error result; its adapter panics if dispatch fails", mapper, fn.Name())
		}

		info.Methods = append(info.Methods, method)
	}

	if !valid {
		return nil, false
	}

	sort.Slice(info.Methods, func(i, j int) bool { return info.Methods[i].Name < info.Methods[j].Name })

	for _, imp := range imports {
		info.Imports = append(info.Imports, imp)
	}

	sort.Slice(info.Imports, func(i, j int) bool { return info.Imports[i].Path < info.Imports[j].Path })

	return info, true
}

// analyzeMethod extracts parameters and results from a method signature.
// local renders types inside the mapper's package, qualified outside it.
func analyzeMethod(name string, sig *types.Signature, local, qualified types.Qualifier) MethodInfo {
	method := MethodInfo{Name: name}

	params := sig.Params()
	names := paramNames(params)

	for i := range params.Len() {
		p := params.At(i)

		method.Params = append(method.Params, ParamInfo{
			Name:      names[i],
			Type:      types.TypeString(p.Type(), local),
			Qualified: types.TypeString(p.Type(), qualified),
			Variadic:  sig.Variadic() && i == params.Len()-1,
		})
	}

	results := sig.Results()
	for i := range results.Len() {
		method.Results = append(method.Results, types.TypeString(results.At(i).Type(), local))
		method.QualifiedResults = append(method.QualifiedResults, types.TypeString(results.At(i).Type(), qualified))
	}

	method.Shape = classifyResults(results)

	return method
}

// paramNames keeps declared parameter names and gives unnamed or blank ones
// a p<N> name no other parameter uses.
func paramNames(params *types.Tuple) []string {
	names := make([]string, params.Len())
	taken := make(map[string]bool)

	for i := range params.Len() {
		if name := params.At(i).Name(); name != "" && name != "_" {
			names[i] = name
			taken[name] = true
		}
	}

	for i := range names {
		if names[i] == "" {
			names[i] = common.FreshName(taken, "p", i)
		}
	}

	return names
}

// refersToUnexported reports whether sig mentions a type another package
// cannot name: an unexported type of pkg, or a literal with unexported
// fields or methods of pkg.
func refersToUnexported(sig *types.Signature, pkg *types.Package) bool {
	for _, tuple := range []*types.Tuple{sig.Params(), sig.Results()} {
		for i := range tuple.Len() {
			if unexportedIn(tuple.At(i).Type(), pkg) {
				return true
			}
		}
	}

	return false
}

func unexportedIn(t types.Type, pkg *types.Package) bool {
	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() == pkg && !obj.Exported() {
			return true
		}

		args := t.TypeArgs()
		for i := range args.Len() {
			if unexportedIn(args.At(i), pkg) {
				return true
			}
		}

		return false
	case *types.Alias:
		obj := t.Obj()
		if obj.Pkg() == pkg && !obj.Exported() {
			return true
		}

		return unexportedIn(types.Unalias(t), pkg)
	case *types.Pointer:
		return unexportedIn(t.Elem(), pkg)
	case *types.Slice:
		return unexportedIn(t.Elem(), pkg)
	case *types.Array:
		return unexportedIn(t.Elem(), pkg)
	case *types.Chan:
		return unexportedIn(t.Elem(), pkg)
	case *types.Map:
		return unexportedIn(t.Key(), pkg) || unexportedIn(t.Elem(), pkg)
	case *types.Signature:
		return refersToUnexported(t, pkg)
	case *types.Struct:
		for i := range t.NumFields() {
			f := t.Field(i)
			if (!f.Exported() && f.Pkg() == pkg) || unexportedIn(f.Type(), pkg) {
				return true
			}
		}

		return false
	case *types.Interface:
		for i := range t.NumMethods() {
			m := t.Method(i)
			if (!m.Exported() && m.Pkg() == pkg) || refersToUnexported(m.Type().(*types.Signature), pkg) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func classifyResults(results *types.Tuple) ResultShape {
	switch results.Len() {
	case 0:
		return ShapeNone
	case 1:
		if isError(results.At(0).Type()) {
			return ShapeError
		}

		return ShapeValue
	case 2:
		if isError(results.At(1).Type()) && !isError(results.At(0).Type()) {
			return ShapeValueError
		}

		return ShapeUnsupported
	default:
		return ShapeUnsupported
	}
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}
