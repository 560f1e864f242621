package util

import (
	"reflect"

	"github.com/dave/dst"
)

// ExprEqual reports whether two expressions are structurally identical, including the
// package paths of qualified identifiers. Decorations are ignored.
func ExprEqual(a dst.Expr, b dst.Expr) bool {
	return compareExpr(a, b)
}

func compareExpr(a dst.Expr, b dst.Expr) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *dst.BasicLit:
		b := b.(*dst.BasicLit)
		return a.Kind == b.Kind && a.Value == b.Value
	case *dst.Ident:
		b := b.(*dst.Ident)
		return a.Name == b.Name && a.Path == b.Path
	case *dst.SelectorExpr:
		b := b.(*dst.SelectorExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Sel, b.Sel)
	case *dst.StarExpr:
		b := b.(*dst.StarExpr)
		return compareExpr(a.X, b.X)
	case *dst.ParenExpr:
		b := b.(*dst.ParenExpr)
		return compareExpr(a.X, b.X)
	case *dst.ArrayType:
		b := b.(*dst.ArrayType)
		return compareExpr(a.Len, b.Len) && compareExpr(a.Elt, b.Elt)
	case *dst.MapType:
		b := b.(*dst.MapType)
		return compareExpr(a.Key, b.Key) && compareExpr(a.Value, b.Value)
	case *dst.ChanType:
		b := b.(*dst.ChanType)
		return a.Dir == b.Dir && compareExpr(a.Value, b.Value)
	case *dst.Ellipsis:
		b := b.(*dst.Ellipsis)
		return compareExpr(a.Elt, b.Elt)
	case *dst.IndexExpr:
		b := b.(*dst.IndexExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Index, b.Index)
	case *dst.FuncType:
		b := b.(*dst.FuncType)
		return compareFields(a.TypeParams, b.TypeParams) && compareFields(a.Params, b.Params) && compareFields(a.Results, b.Results)
	case *dst.StructType:
		b := b.(*dst.StructType)
		return compareFields(a.Fields, b.Fields)
	case *dst.InterfaceType:
		b := b.(*dst.InterfaceType)
		return compareFields(a.Methods, b.Methods)
	default:
		return false
	}
}

// compareFields treats a missing field list like an empty one.
func compareFields(a, b *dst.FieldList) bool {
	if a == nil {
		a = &dst.FieldList{}
	}
	if b == nil {
		b = &dst.FieldList{}
	}
	if len(a.List) != len(b.List) {
		return false
	}
	for i := range a.List {
		if len(a.List[i].Names) != len(b.List[i].Names) {
			return false
		}
		for j := range a.List[i].Names {
			if a.List[i].Names[j].Name != b.List[i].Names[j].Name {
				return false
			}
		}
		if !compareTags(a.List[i].Tag, b.List[i].Tag) {
			return false
		}
		if !compareExpr(a.List[i].Type, b.List[i].Type) {
			return false
		}
	}
	return true
}

func compareTags(a, b *dst.BasicLit) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}
