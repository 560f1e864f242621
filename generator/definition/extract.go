package definition

import (
	"go/ast"
	"go/token"
	"path"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/easygen/go-easy-generation/internal/comment"
	"github.com/easygen/go-easy-generation/internal/util"
)

// NamespaceOf returns the dotted namespace of a package: the last element of its
// module path followed by the directories between the module root and the package.
func NamespaceOf(pkgPath, modulePath string) string {
	if modulePath == "" || !strings.HasPrefix(pkgPath, modulePath) {
		modulePath = pkgPath
	}

	root := path.Base(modulePath)
	rel := strings.Trim(strings.TrimPrefix(pkgPath, modulePath), "/")
	if rel == "" {
		return root
	}
	return root + "." + strings.ReplaceAll(rel, "/", ".")
}

// IsGenerated reports whether the file carries a generated code header, by the rule of
// the go command. dec is the decorator that produced the file.
func IsGenerated(dec *decorator.Decorator, file *dst.File) bool {
	if dec == nil || file == nil {
		return false
	}
	astFile, ok := dec.Ast.Nodes[file].(*ast.File)
	return ok && ast.IsGenerated(astFile)
}

// FromPackages extracts every named type declared in pkgs, with the methods declared on it.
// Generated files and protobuf outputs are skipped.
func FromPackages(pkgs []*decorator.Package) []*Definition {
	ret := []*Definition{}
	for _, pkg := range pkgs {
		ret = append(ret, fromPackage(pkg)...)
	}
	return ret
}

func fromPackage(pkg *decorator.Package) []*Definition {
	if pkg == nil {
		return nil
	}

	modulePath := ""
	if pkg.Module != nil {
		modulePath = pkg.Module.Path
	}
	ns := NamespaceOf(pkg.PkgPath, modulePath)

	defs := []*Definition{}
	byName := map[string]*Definition{}
	methods := []*dst.FuncDecl{}

	for _, file := range pkg.Syntax {
		pos := util.Position(file, pkg)
		if pos != nil && strings.HasSuffix(pos.Filename, ".pb.go") {
			continue
		}
		if IsGenerated(pkg.Decorator, file) {
			continue
		}

		for _, decl := range file.Decls {
			switch v := decl.(type) {
			case *dst.GenDecl:
				if v.Tok != token.TYPE {
					continue
				}
				for _, spec := range v.Specs {
					ts, ok := spec.(*dst.TypeSpec)
					if !ok {
						continue
					}
					def := &Definition{
						Name:      ts.Name.Name,
						Namespace: ns,
						PkgPath:   pkg.PkgPath,
						PkgName:   pkg.Name,
						Location:  comment.SourceLocation(pkg, ts),
						Spec:      ts,
					}
					// a grouped declaration keeps its doc on the spec
					if len(v.Specs) == 1 {
						def.Doc = docComments(v.Decs.Start)
					}
					defs = append(defs, def)
					byName[def.Name] = def
				}
			case *dst.FuncDecl:
				if v.Recv != nil && len(v.Recv.List) > 0 {
					methods = append(methods, v)
				}
			}
		}
	}

	for _, fn := range methods {
		def, ok := byName[ReceiverTypeName(fn)]
		if ok {
			def.Methods = append(def.Methods, fn)
		}
	}

	return defs
}

// ReceiverTypeName returns the base type name of a method receiver, or "" for plain functions.
func ReceiverTypeName(fn *dst.FuncDecl) string {
	if fn == nil || fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	return baseTypeName(fn.Recv.List[0].Type)
}

func baseTypeName(expr dst.Expr) string {
	switch v := expr.(type) {
	case *dst.Ident:
		return v.Name
	case *dst.StarExpr:
		return baseTypeName(v.X)
	case *dst.ParenExpr:
		return baseTypeName(v.X)
	case *dst.IndexExpr:
		return baseTypeName(v.X)
	case *dst.IndexListExpr:
		return baseTypeName(v.X)
	}
	return ""
}

func docComments(decs dst.Decorations) []string {
	ret := []string{}
	for _, line := range decs {
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			ret = append(ret, line)
		}
	}
	return ret
}
