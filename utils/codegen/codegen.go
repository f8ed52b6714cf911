// Package codegen renders the typed namespace facades of package datarefs from the
// dataref schema. Each namespace path node becomes one struct; each schema entry
// becomes one method on the struct of its namespace which forwards to the
// matching XPlaneData getter with the literal key.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/xairline/xa-datarefs/models"
)

const (
	RootType    = "DataRefs"
	RootFile    = "datarefs.go"
	servicesPkg = "github.com/xairline/xa-datarefs/services"
)

type getter struct {
	method string
	goType string
}

var getters = map[models.DatarefType]getter{
	models.TypeFloat:      {"GetFloat", "float32"},
	models.TypeDouble:     {"GetDouble", "float64"},
	models.TypeInt:        {"GetInt", "int"},
	models.TypeBool:       {"GetBool", "bool"},
	models.TypeFloatArray: {"GetFloatArray", "[]float32"},
	models.TypeIntArray:   {"GetIntArray", "[]int"},
	models.TypeBoolArray:  {"GetBoolArray", "[]bool"},
	models.TypeByteArray:  {"GetByteArray", "[]byte"},
	models.TypeString:     {"GetString", "string"},
}

type Accessor struct {
	Name        string
	Dataref     string
	Getter      string
	ValueType   string
	Description string
}

type Node struct {
	Path      string
	TypeName  string
	Field     string
	Children  []*Node
	Accessors []Accessor
}

// Constructor is the unexported constructor name, or New for the root.
func (n *Node) Constructor() string {
	if n.Path == "" {
		return "New"
	}
	return "new" + n.TypeName
}

// FileName is the file the node is rendered to.
func (n *Node) FileName() string {
	if n.Path == "" {
		return RootFile
	}
	return strings.ReplaceAll(strings.ToLower(n.Path), "/", "_") + ".go"
}

// GoName converts a schema identifier to an exported Go name by splitting on
// underscores and upper-casing the first rune of every part.
func GoName(id string) string {
	var b strings.Builder
	for _, part := range strings.Split(id, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// TypeName converts a namespace path like sim/aircraft/engine to SimAircraftEngine.
func TypeName(namespace string) string {
	var b strings.Builder
	for _, seg := range strings.Split(namespace, "/") {
		b.WriteString(GoName(seg))
	}
	return b.String()
}

func validName(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

// Build validates the schema and arranges it into the namespace tree. Accessors
// keep schema order; children are sorted by path.
func Build(schema []models.Dataref) (*Node, error) {
	seen := make(map[string]bool, len(schema))
	for _, d := range schema {
		if seen[d.DatarefStr] {
			return nil, fmt.Errorf("duplicate dataref %s", d.DatarefStr)
		}
		seen[d.DatarefStr] = true
		if d.Namespace() == "" {
			return nil, fmt.Errorf("dataref %s has no namespace", d.DatarefStr)
		}
		if _, ok := getters[d.Type]; !ok {
			return nil, fmt.Errorf("dataref %s: unknown type %q", d.DatarefStr, d.Type)
		}
	}

	root := &Node{TypeName: RootType}
	nodes := map[string]*Node{"": root}
	var node func(path string) (*Node, error)
	node = func(path string) (*Node, error) {
		if n, ok := nodes[path]; ok {
			return n, nil
		}
		parentPath, seg := "", path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			parentPath, seg = path[:i], path[i+1:]
		}
		parent, err := node(parentPath)
		if err != nil {
			return nil, err
		}
		n := &Node{Path: path, TypeName: TypeName(path), Field: GoName(seg)}
		if !validName(n.Field) {
			return nil, fmt.Errorf("namespace %s: %q is not a valid Go name", path, n.Field)
		}
		parent.Children = append(parent.Children, n)
		nodes[path] = n
		return n, nil
	}

	grouped := lo.GroupBy(schema, func(d models.Dataref) string { return d.Namespace() })
	for _, ns := range lo.Uniq(lo.Map(schema, func(d models.Dataref, _ int) string { return d.Namespace() })) {
		n, err := node(ns)
		if err != nil {
			return nil, err
		}
		for _, d := range grouped[ns] {
			name := GoName(d.Name)
			if !validName(name) {
				return nil, fmt.Errorf("dataref %s: %q is not a valid Go name", d.DatarefStr, name)
			}
			g := getters[d.Type]
			n.Accessors = append(n.Accessors, Accessor{
				Name:        name,
				Dataref:     d.DatarefStr,
				Getter:      g.method,
				ValueType:   g.goType,
				Description: strings.Join(strings.Fields(d.Description), " "),
			})
		}
	}

	var check func(n *Node) error
	check = func(n *Node) error {
		sort.Slice(n.Children, func(i, j int) bool { return n.Children[i].Path < n.Children[j].Path })
		names := map[string]string{}
		for _, c := range n.Children {
			if prev, ok := names[c.Field]; ok {
				return fmt.Errorf("%s: %s collides with %s", c.Path, c.Field, prev)
			}
			names[c.Field] = c.Path
		}
		for _, a := range n.Accessors {
			if prev, ok := names[a.Name]; ok {
				return fmt.Errorf("%s: %s collides with %s", a.Dataref, a.Name, prev)
			}
			names[a.Name] = a.Dataref
		}
		for _, c := range n.Children {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(root); err != nil {
		return nil, err
	}
	return root, nil
}

// Walk visits n and all of its descendants depth first.
func (n *Node) Walk(fn func(n *Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by datarefgen. DO NOT EDIT.

package {{.Package}}

import "{{.Services}}"
{{with .Node}}
{{if .Path}}// {{.TypeName}} groups the {{.Path}} datarefs.{{else}}// {{.TypeName}} is the root of the generated dataref namespaces.{{end}}
type {{.TypeName}} struct {
{{- if .Accessors}}
	data services.XPlaneData
{{- end}}
{{- range .Children}}
	{{.Field}} *{{.TypeName}}
{{- end}}
}

{{if .Path}}func {{.Constructor}}{{else}}// New builds every namespace facade over data.
func New{{end}}(data services.XPlaneData) *{{.TypeName}} {
	return &{{.TypeName}}{
{{- if .Accessors}}
		data: data,
{{- end}}
{{- range .Children}}
		{{.Field}}: {{.Constructor}}(data),
{{- end}}
	}
}
{{$node := .}}
{{- range .Accessors}}
// {{.Name}} returns {{.Dataref}}.
{{- if .Description}}
// {{.Description}}
{{- end}}
func (n *{{$node.TypeName}}) {{.Name}}() services.DataRef[{{.ValueType}}] {
	return n.data.{{.Getter}}({{printf "%q" .Dataref}})
}
{{end}}
{{- end}}`))

// Render renders the facades for schema, one gofmt'd file per namespace node plus
// the root file, keyed by file name.
func Render(pkg string, schema []models.Dataref) (map[string][]byte, error) {
	root, err := Build(schema)
	if err != nil {
		return nil, err
	}
	files := map[string][]byte{}
	var renderErr error
	root.Walk(func(n *Node) {
		if renderErr != nil {
			return
		}
		var buf bytes.Buffer
		if err := fileTemplate.Execute(&buf, map[string]interface{}{
			"Package":  pkg,
			"Services": servicesPkg,
			"Node":     n,
		}); err != nil {
			renderErr = fmt.Errorf("render %s: %w", n.FileName(), err)
			return
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			renderErr = fmt.Errorf("format %s: %w", n.FileName(), err)
			return
		}
		files[n.FileName()] = src
	})
	if renderErr != nil {
		return nil, renderErr
	}
	return files, nil
}

type schemaFile struct {
	Datarefs []models.Dataref `yaml:"datarefs"`
}

// ParseSchema decodes a schema yaml document and checks every entry.
func ParseSchema(data []byte) ([]models.Dataref, error) {
	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	seen := make(map[string]bool, len(f.Datarefs))
	for i, d := range f.Datarefs {
		switch {
		case d.Name == "":
			return nil, fmt.Errorf("schema entry %d: missing name", i)
		case d.DatarefStr == "":
			return nil, fmt.Errorf("schema entry %d (%s): missing dataref", i, d.Name)
		case !d.Type.Valid():
			return nil, fmt.Errorf("schema entry %d (%s): unknown type %q", i, d.Name, d.Type)
		case seen[d.DatarefStr]:
			return nil, fmt.Errorf("schema entry %d: duplicate dataref %s", i, d.DatarefStr)
		}
		seen[d.DatarefStr] = true
	}
	return f.Datarefs, nil
}
