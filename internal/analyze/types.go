package analyze

//go:generate go tool stringer -type=ResultShape -linecomment

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "mapperkit/examples/dao"
	Name    string // e.g., "IUserDao"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ResultShape classifies a method's results.
type ResultShape int

const (
	ShapeNone        ResultShape = iota // none
	ShapeValue                          // value
	ShapeError                          // error
	ShapeValueError                     // value+error
	ShapeUnsupported                    // unsupported
)

// ParamInfo describes a method parameter.
type ParamInfo struct {
	Name      string // Declared name, or a generated p<N> when unnamed
	Type      string // Type as written inside the mapper's package ("...T" becomes "[]T" with Variadic set)
	Qualified string // Type as written in another package
	Variadic  bool
}

// MethodInfo describes one method of a mapper interface.
type MethodInfo struct {
	Name             string
	Params           []ParamInfo
	Results          []string // Result types as written inside the mapper's package
	QualifiedResults []string // Result types as written in another package
	Shape            ResultShape
}

// ValueType returns the non-error result type, or "" if there is none.
func (m MethodInfo) ValueType() string {
	switch m.Shape {
	case ShapeValue, ShapeValueError:
		return m.Results[0]
	default:
		return ""
	}
}

// QualifiedValueType is ValueType as written in another package. It falls
// back to ValueType when no qualified results were recorded.
func (m MethodInfo) QualifiedValueType() string {
	switch {
	case m.Shape != ShapeValue && m.Shape != ShapeValueError:
		return ""
	case len(m.QualifiedResults) > 0:
		return m.QualifiedResults[0]
	default:
		return m.Results[0]
	}
}

// ImportInfo is an import needed by the signatures of an interface.
type ImportInfo struct {
	Name string // Package name used in type strings
	Path string
}

// InterfaceInfo describes a mapper interface.
type InterfaceInfo struct {
	ID      TypeID
	Methods []MethodInfo // Sorted by name, embedded methods included
	Imports []ImportInfo // Sorted by path
	Pos     string       // file:line of the declaration

	// Portable is set when other packages can implement the interface: no
	// unexported methods and no unexported types of its package in signatures.
	Portable bool
}

// MapperGraph holds all mapper interfaces from loaded packages.
type MapperGraph struct {
	// Interfaces maps TypeID to InterfaceInfo for every extracted interface.
	Interfaces map[TypeID]*InterfaceInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewMapperGraph creates a new empty MapperGraph.
func NewMapperGraph() *MapperGraph {
	return &MapperGraph{
		Interfaces: make(map[TypeID]*InterfaceInfo),
		Packages:   make(map[string]*PackageInfo),
	}
}

// GetInterface returns the InterfaceInfo for id, or nil if not found.
func (g *MapperGraph) GetInterface(id TypeID) *InterfaceInfo {
	return g.Interfaces[id]
}

// PackageInterfaces returns the interfaces of pkgPath in declaration-name order.
func (g *MapperGraph) PackageInterfaces(pkgPath string) []*InterfaceInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	out := make([]*InterfaceInfo, 0, len(pkg.Interfaces))
	for _, id := range pkg.Interfaces {
		if info := g.Interfaces[id]; info != nil {
			out = append(out, info)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path       string   // Import path
	Name       string   // Package name
	Dir        string   // Directory holding the package sources
	Interfaces []TypeID // Mapper interfaces, sorted by name
}
