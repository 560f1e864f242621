package util

import (
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

func field(name string, typ dst.Expr) *dst.Field {
	return &dst.Field{Names: []*dst.Ident{dst.NewIdent(name)}, Type: typ}
}

func structType(fields ...*dst.Field) *dst.StructType {
	return &dst.StructType{Fields: &dst.FieldList{List: fields}}
}

func interfaceType(methods ...*dst.Field) *dst.InterfaceType {
	return &dst.InterfaceType{Methods: &dst.FieldList{List: methods}}
}

func TestExprEqual(t *testing.T) {
	tests := []struct {
		name string
		a    dst.Expr
		b    dst.Expr
		want bool
	}{
		{
			name: "both nil",
			want: true,
		},
		{
			name: "one nil",
			a:    dst.NewIdent("x"),
			want: false,
		},
		{
			name: "identical basic literals",
			a:    &dst.BasicLit{Kind: token.INT, Value: "42"},
			b:    &dst.BasicLit{Kind: token.INT, Value: "42"},
			want: true,
		},
		{
			name: "different basic literals",
			a:    &dst.BasicLit{Kind: token.INT, Value: "42"},
			b:    &dst.BasicLit{Kind: token.INT, Value: "43"},
			want: false,
		},
		{
			name: "identical identifiers",
			a:    dst.NewIdent("x"),
			b:    dst.NewIdent("x"),
			want: true,
		},
		{
			name: "same name from different packages",
			a:    &dst.Ident{Name: "Order", Path: "example.com/a"},
			b:    &dst.Ident{Name: "Order", Path: "example.com/b"},
			want: false,
		},
		{
			name: "different node types",
			a:    dst.NewIdent("x"),
			b:    &dst.StarExpr{X: dst.NewIdent("x")},
			want: false,
		},
		{
			name: "identical pointer types",
			a:    &dst.StarExpr{X: dst.NewIdent("Order")},
			b:    &dst.StarExpr{X: dst.NewIdent("Order")},
			want: true,
		},
		{
			name: "slices and arrays differ",
			a:    &dst.ArrayType{Elt: dst.NewIdent("int")},
			b:    &dst.ArrayType{Len: &dst.BasicLit{Kind: token.INT, Value: "3"}, Elt: dst.NewIdent("int")},
			want: false,
		},
		{
			name: "identical maps",
			a:    &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("int")},
			b:    &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("int")},
			want: true,
		},
		{
			name: "channel directions differ",
			a:    &dst.ChanType{Dir: dst.SEND, Value: dst.NewIdent("int")},
			b:    &dst.ChanType{Dir: dst.RECV, Value: dst.NewIdent("int")},
			want: false,
		},
		{
			name: "function types with different results",
			a: &dst.FuncType{
				Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("error")}}},
			},
			b:    &dst.FuncType{},
			want: false,
		},
		{
			name: "function types with missing and empty params",
			a:    &dst.FuncType{},
			b:    &dst.FuncType{Params: &dst.FieldList{}},
			want: true,
		},
		{
			name: "identical structs",
			a:    structType(field("v", dst.NewIdent("int")), field("Name", &dst.Ident{Name: "Name", Path: "example.com/shop"})),
			b:    structType(field("v", dst.NewIdent("int")), field("Name", &dst.Ident{Name: "Name", Path: "example.com/shop"})),
			want: true,
		},
		{
			name: "structs with different field names",
			a:    structType(field("v", dst.NewIdent("int"))),
			b:    structType(field("w", dst.NewIdent("int"))),
			want: false,
		},
		{
			name: "structs with different field types",
			a:    structType(field("v", dst.NewIdent("int"))),
			b:    structType(field("v", dst.NewIdent("string"))),
			want: false,
		},
		{
			name: "structs with different tags",
			a:    structType(&dst.Field{Names: []*dst.Ident{dst.NewIdent("ID")}, Type: dst.NewIdent("int"), Tag: &dst.BasicLit{Kind: token.STRING, Value: "`json:\"id\"`"}}),
			b:    structType(field("ID", dst.NewIdent("int"))),
			want: false,
		},
		{
			name: "empty structs",
			a:    &dst.StructType{},
			b:    &dst.StructType{Fields: &dst.FieldList{}},
			want: true,
		},
		{
			name: "identical interfaces",
			a:    interfaceType(field("Total", &dst.FuncType{Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("int")}}}})),
			b:    interfaceType(field("Total", &dst.FuncType{Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("int")}}}})),
			want: true,
		},
		{
			name: "interfaces with different methods",
			a:    interfaceType(field("Total", &dst.FuncType{})),
			b:    interfaceType(field("Sum", &dst.FuncType{})),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprEqual(tt.a, tt.b))
		})
	}
}
