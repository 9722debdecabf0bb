package gen

import (
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"mapperkit/internal/analyze"
	"mapperkit/internal/common"
)

// templateData holds all data needed for the adapter template.
type templateData struct {
	PackageName string
	Filename    string
	Runtime     string
	Imports     []importSpec
	Mappers     []mapperData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// mapperData is one adapter struct.
type mapperData struct {
	Interface string
	Adapter   string
	Methods   []methodData
}

// methodData is one forwarding method, pre-rendered for the template.
type methodData struct {
	Name      string
	Params    string // "id string, region string"
	Args      string // ", id, region"
	Results   string // "(string, error)", "error", "string" or ""
	ValueType string

	IsNone       bool
	IsValue      bool
	IsError      bool
	IsValueError bool
}

// buildTemplateData constructs the template data for a package.
func (g *Generator) buildTemplateData(
	pkg *analyze.PackageInfo,
	interfaces []*analyze.InterfaceInfo,
	out outputTarget,
) *templateData {
	data := &templateData{
		PackageName: out.packageName,
		Filename:    g.filename(pkg),
		Runtime:     g.runtimeAlias(),
	}

	imports := make(map[string]importSpec)
	addImport(imports, data.Runtime, g.config.RuntimeImport)

	if out.external {
		addImport(imports, pkg.Name, pkg.Path)
	}

	for _, iface := range interfaces {
		for _, imp := range iface.Imports {
			addImport(imports, imp.Name, imp.Path)
		}

		mapper := mapperData{
			Interface: iface.ID.Name,
			Adapter:   adapterName(iface.ID.Name),
		}

		if out.external {
			mapper.Interface = pkg.Name + "." + iface.ID.Name
			mapper.Adapter = adapterName(pkg.Name + iface.ID.Name)
		}

		for i := range iface.Methods {
			mapper.Methods = append(mapper.Methods, buildMethod(&iface.Methods[i], data.Runtime, out.external))
		}

		data.Mappers = append(data.Mappers, mapper)
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// addImport records an import, aliasing it only when the package name
// differs from the last path element.
func addImport(imports map[string]importSpec, name, path string) {
	if path == "" {
		return
	}

	spec := importSpec{Path: path}
	if name != common.PkgAlias(path) {
		spec.Alias = name
	}

	imports[path] = spec
}

// buildMethod renders one forwarding method. With qualified set, types are
// written as seen from another package.
func buildMethod(m *analyze.MethodInfo, runtime string, qualified bool) methodData {
	valueType := m.ValueType()
	if qualified {
		valueType = m.QualifiedValueType()
	}

	names := adapterParamNames(m.Params, runtime, valueType)

	var params, args []string

	for i, p := range m.Params {
		typ := p.Type
		if qualified && p.Qualified != "" {
			typ = p.Qualified
		}

		if p.Variadic {
			typ = "..." + strings.TrimPrefix(typ, "[]")
		}

		params = append(params, names[i]+" "+typ)
		args = append(args, ", "+names[i])
	}

	md := methodData{
		Name:      m.Name,
		Params:    strings.Join(params, ", "),
		Args:      strings.Join(args, ""),
		ValueType: valueType,
	}

	switch m.Shape {
	case analyze.ShapeNone:
		md.IsNone = true
	case analyze.ShapeValue:
		md.IsValue = true
		md.Results = valueType
	case analyze.ShapeError:
		md.IsError = true
		md.Results = "error"
	case analyze.ShapeValueError:
		md.IsValueError = true
		md.Results = "(" + valueType + ", error)"
	}

	return md
}

// adapterParamNames renames parameters that would shadow an identifier the
// method body uses: the receiver, the body's locals, the runtime package and
// every name in the value type.
func adapterParamNames(params []analyze.ParamInfo, runtime, valueType string) []string {
	taken := map[string]bool{"m": true, "v": true, "err": true, runtime: true}
	for _, id := range identifiers(valueType) {
		taken[id] = true
	}

	names := make([]string, len(params))

	for i, p := range params {
		if p.Name != "" && p.Name != "_" && !taken[p.Name] {
			names[i] = p.Name
			taken[p.Name] = true
		}
	}

	for i := range names {
		if names[i] == "" {
			names[i] = common.FreshName(taken, "p", i)
		}
	}

	return names
}

// identifiers lists the identifiers in a type expression, e.g.
// "map[string]*time.Time" -> string, time, Time.
func identifiers(expr string) []string {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if r, _ := utf8.DecodeRuneInString(f); !unicode.IsDigit(r) {
			out = append(out, f)
		}
	}

	return out
}

// adapterName derives the unexported adapter type name, e.g. IUserDao -> iUserDaoMapper.
func adapterName(iface string) string {
	r, size := utf8.DecodeRuneInString(iface)

	return string(unicode.ToLower(r)) + iface[size:] + "Mapper"
}

var adapterTemplate = template.Must(template.New("adapter").Parse(`// Code generated by mapper-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Mappers}}
// {{.Adapter}} forwards {{.Interface}} calls to a {{$.Runtime}}.MapperProxy.
type {{.Adapter}} struct {
	proxy *{{$.Runtime}}.MapperProxy
}
{{$adapter := .Adapter}}{{range .Methods}}
func (m *{{$adapter}}) {{.Name}}({{.Params}}) {{.Results}} {
{{- if .IsValueError}}
	return {{$.Runtime}}.Result[{{.ValueType}}](m.proxy.Invoke("{{.Name}}"{{.Args}}))
{{- else if .IsError}}
	_, err := m.proxy.Invoke("{{.Name}}"{{.Args}})
	return err
{{- else if .IsValue}}
	v, err := {{$.Runtime}}.Result[{{.ValueType}}](m.proxy.Invoke("{{.Name}}"{{.Args}}))
	if err != nil {
		panic(err)
	}
	return v
{{- else}}
	if _, err := m.proxy.Invoke("{{.Name}}"{{.Args}}); err != nil {
		panic(err)
	}
{{- end}}
}
{{end}}{{end}}
func init() {
{{- range .Mappers}}
	{{$.Runtime}}.Register[{{.Interface}}](func(p *{{$.Runtime}}.MapperProxy) {{.Interface}} {
		return &{{.Adapter}}{proxy: p}
	})
{{- end}}
}
`))
