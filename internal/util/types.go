package util

import (
	"go/token"
	"go/types"

	"github.com/dave/dst"
)

// IsPredeclared reports whether name is a predeclared Go identifier such as int or error.
func IsPredeclared(name string) bool {
	return types.Universe.Lookup(name) != nil
}

// QualifyLocalTypes returns a clone of expr where identifiers local to the package at
// pkgPath are qualified with that path, so the expression can be rendered from another
// package. Identifiers of unexported local types cannot be referenced from outside the
// package; their names are returned and the clone should not be used.
func QualifyLocalTypes(expr dst.Expr, pkgPath string) (dst.Expr, []string) {
	if expr == nil {
		return nil, nil
	}

	clone := dst.Clone(expr).(dst.Expr)
	unexported := []string{}
	dst.Inspect(clone, func(n dst.Node) bool {
		switch v := n.(type) {
		case *dst.SelectorExpr:
			// only the left side can name a local type
			return false
		case *dst.Field:
			// field and parameter names are not types
			if v.Type != nil {
				t, bad := QualifyLocalTypes(v.Type, pkgPath)
				v.Type = t
				unexported = append(unexported, bad...)
			}
			return false
		case *dst.Ident:
			if v.Path != "" || IsPredeclared(v.Name) || v.Name == "_" {
				return true
			}
			if !token.IsExported(v.Name) {
				unexported = append(unexported, v.Name)
				return true
			}
			v.Path = pkgPath
		}
		return true
	})
	return clone, unexported
}
