package definition

import (
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/easygen/go-easy-generation/generator/facts"
	"github.com/easygen/go-easy-generation/internal/testapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceOf(t *testing.T) {
	tests := []struct {
		name       string
		pkgPath    string
		modulePath string
		want       string
	}{
		{
			name:       "module root",
			pkgPath:    "example.com/shop",
			modulePath: "example.com/shop",
			want:       "shop",
		},
		{
			name:       "nested package",
			pkgPath:    "example.com/shop/models/orders",
			modulePath: "example.com/shop",
			want:       "shop.models.orders",
		},
		{
			name:    "no module information",
			pkgPath: "example.com/shop/models",
			want:    "models",
		},
		{
			name:       "package outside of the module",
			pkgPath:    "example.com/other/models",
			modulePath: "example.com/shop",
			want:       "models",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NamespaceOf(tt.pkgPath, tt.modulePath))
		})
	}
}

func TestReceiverTypeName(t *testing.T) {
	recv := func(expr dst.Expr) *dst.FuncDecl {
		return &dst.FuncDecl{Recv: &dst.FieldList{List: []*dst.Field{{Type: expr}}}}
	}

	assert.Equal(t, "Order", ReceiverTypeName(recv(dst.NewIdent("Order"))))
	assert.Equal(t, "Order", ReceiverTypeName(recv(&dst.StarExpr{X: dst.NewIdent("Order")})))
	assert.Equal(t, "List", ReceiverTypeName(recv(&dst.StarExpr{X: &dst.IndexExpr{X: dst.NewIdent("List"), Index: dst.NewIdent("T")}})))
	assert.Equal(t, "", ReceiverTypeName(&dst.FuncDecl{}))
	assert.Equal(t, "", ReceiverTypeName(nil))
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "own header",
			src:  GeneratedHeader + "\n\npackage x\n",
			want: true,
		},
		{
			name: "other generator",
			src:  "// Code generated by protoc-gen-go. DO NOT EDIT.\n// source: orders.proto\n\npackage x\n",
			want: true,
		},
		{
			name: "header after the package clause",
			src:  "package x\n\n// Code generated by hand. DO NOT EDIT.\n",
		},
		{
			name: "handwritten",
			src:  "// Package x does things.\npackage x\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := decorator.NewDecorator(token.NewFileSet())
			file, err := dec.Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsGenerated(dec, file))
		})
	}

	assert.False(t, IsGenerated(nil, &dst.File{Name: dst.NewIdent("x")}))
	assert.False(t, IsGenerated(decorator.NewDecorator(token.NewFileSet()), nil))
}

const ordersSource = `package models

import "time"

// Order is a placed order.
type Order struct {
	ID     int
	Placed time.Time
	notes  string
}

func (o *Order) Total() int { return o.ID }

func (o Order) Notes() string { return o.notes }

type (
	Status  int
	Store   interface{ Get(id int) (*Order, error) }
)

func helper() {}
`

const generatedSource = `// Code generated by go-easy-generation. DO NOT EDIT.

package models

type OrderAPI interface {
	Total() int
}
`

func TestFromPackages(t *testing.T) {
	_, pkgs := testapp.Load(t, "example.com/shop", map[string]string{
		"models/order.go":     ordersSource,
		"models/order_gen.go": generatedSource,
		"main.go":             "package main\n\ntype App struct{}\n\nfunc main() {}\n",
	})

	defs := FromPackages(pkgs)
	byName := map[string]*Definition{}
	for _, d := range defs {
		byName[d.QualifiedName()] = d
	}

	require.Len(t, defs, 4, "found %v", byName)

	order := byName["shop.models.Order"]
	require.NotNil(t, order)
	assert.Equal(t, "example.com/shop/models", order.PkgPath)
	assert.Equal(t, facts.Struct, order.Kind())
	assert.Equal(t, []string{"// Order is a placed order."}, order.Doc)
	assert.Contains(t, order.Location, "order.go:6:6")
	if assert.Len(t, order.Methods, 2) {
		assert.Equal(t, "Total", order.Methods[0].Name.Name)
		assert.Equal(t, "Notes", order.Methods[1].Name.Name)
	}

	assert.Equal(t, facts.Named, byName["shop.models.Status"].Kind())
	assert.Equal(t, facts.Interface, byName["shop.models.Store"].Kind())
	assert.Empty(t, byName["shop.models.Store"].Doc)
	assert.NotNil(t, byName["shop.App"])
	assert.Nil(t, byName["shop.models.OrderAPI"], "generated files must be skipped")
}
