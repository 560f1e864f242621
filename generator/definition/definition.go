// Package definition holds the type definitions a generator reads and writes.
//
// A Definition is a single named Go type together with its methods and any free
// functions that belong next to it. Existing definitions are extracted from loaded
// packages, planned definitions are built by planners, and both render the same way.
package definition

import (
	"bytes"
	"go/token"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/guess"
	"github.com/easygen/go-easy-generation/generator/facts"
)

// GeneratedHeader is written at the top of every rendered file.
const GeneratedHeader = "// Code generated by go-easy-generation. DO NOT EDIT."

const defaultPackageName = "generated"

// plannedImportRoot prefixes the import path of definitions that were not read from a package.
const plannedImportRoot = "easygen.local"

// Definition is a named type, its companion functions and its methods, rendered in that order.
//
// Definitions produced by extraction share their nodes with the loaded package.
// Render always works on clones, so the same definition can be rendered many times.
type Definition struct {
	Name      string
	Namespace string
	PkgName   string
	PkgPath   string   // import path the definition was read from; empty for planned definitions
	Location  string   // source position of an extracted definition, for messages
	Doc       []string // comment lines placed above the type declaration
	Spec      *dst.TypeSpec
	Methods   []*dst.FuncDecl
	Funcs     []*dst.FuncDecl
}

// Kind classifies the underlying type of the definition.
func (d *Definition) Kind() facts.Fact {
	if d == nil || d.Spec == nil {
		return facts.None
	}
	if d.Spec.Assign {
		return facts.Named
	}

	switch d.Spec.Type.(type) {
	case *dst.StructType:
		return facts.Struct
	case *dst.InterfaceType:
		return facts.Interface
	default:
		return facts.Named
	}
}

// QualifiedName returns the definition name prefixed by its namespace.
func (d *Definition) QualifiedName() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "." + d.Name
}

// PackageName returns the Go package name the definition renders into, derived
// from the last segment of its namespace.
func (d *Definition) PackageName() string {
	last := d.Namespace
	if i := strings.LastIndex(last, "."); i >= 0 {
		last = last[i+1:]
	}

	name := strings.Builder{}
	for _, r := range strings.ToLower(last) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			name.WriteRune(r)
		}
	}

	ret := name.String()
	if ret == "" {
		return defaultPackageName
	}
	if unicode.IsDigit(rune(ret[0])) {
		return "_" + ret
	}
	return ret
}

// ImportPath returns the import path the definition renders for. Planned definitions have
// no PkgPath; they get a path built from their namespace, so identifiers qualified with a
// real package are never mistaken for local ones.
func (d *Definition) ImportPath() string {
	if d.PkgPath != "" {
		return d.PkgPath
	}
	if d.Namespace == "" {
		return plannedImportRoot + "/" + defaultPackageName
	}
	return plannedImportRoot + "/" + strings.ReplaceAll(d.Namespace, ".", "/")
}

// File builds the dst file for this definition. All nodes are cloned from the definition.
func (d *Definition) File() (*dst.File, error) {
	if d.Spec == nil {
		return nil, errors.Newf("definition %q has no type declaration", d.QualifiedName())
	}

	typeDecl := &dst.GenDecl{
		Tok:   token.TYPE,
		Specs: []dst.Spec{dst.Clone(d.Spec).(*dst.TypeSpec)},
	}
	typeDecl.Decs.Start.Append(d.Doc...)

	decls := []dst.Decl{typeDecl}
	for _, fn := range d.Funcs {
		decls = append(decls, dst.Clone(fn).(*dst.FuncDecl))
	}
	for _, fn := range d.Methods {
		decls = append(decls, dst.Clone(fn).(*dst.FuncDecl))
	}

	for _, decl := range decls[1:] {
		decl.Decorations().Before = dst.EmptyLine
	}

	file := &dst.File{
		Name:  dst.NewIdent(d.PackageName()),
		Decls: decls,
	}
	file.Decs.Start.Append(GeneratedHeader, "\n")
	return file, nil
}

// Render returns the formatted Go source of the definition. Imports are added for
// every qualified identifier in the definition.
func (d *Definition) Render() ([]byte, error) {
	file, err := d.File()
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer([]byte{})
	r := decorator.NewRestorerWithImports(d.ImportPath(), guess.New())
	if err := r.Fprint(buf, file); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", d.QualifiedName())
	}
	return buf.Bytes(), nil
}

func (d *Definition) String() string {
	out, err := d.Render()
	if err != nil {
		return "// render error: " + err.Error()
	}
	return string(out)
}
