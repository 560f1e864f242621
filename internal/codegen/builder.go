package codegen

import (
	"go/token"

	"github.com/dave/dst"
)

const (
	builderReceiver = "b"
	builderValue    = "v"
	setterParam     = "v"
)

// BuilderName returns the name of the builder generated for typeName.
func BuilderName(typeName string) string {
	return typeName + "Builder"
}

// BuilderStruct returns the type spec of a builder holding a value of target:
//
//	type OrderBuilder struct {
//		v models.Order
//	}
func BuilderStruct(builderName string, target dst.Expr) *dst.TypeSpec {
	return &dst.TypeSpec{
		Name: dst.NewIdent(builderName),
		Type: &dst.StructType{
			Fields: &dst.FieldList{
				List: []*dst.Field{
					{
						Names: []*dst.Ident{dst.NewIdent(builderValue)},
						Type:  dst.Clone(target).(dst.Expr),
					},
				},
			},
		},
	}
}

// BuilderConstructor returns a function creating an empty builder:
//
//	func NewOrderBuilder() *OrderBuilder {
//		return &OrderBuilder{}
//	}
func BuilderConstructor(builderName string) *dst.FuncDecl {
	return &dst.FuncDecl{
		Name: dst.NewIdent("New" + builderName),
		Type: &dst.FuncType{
			Func:    true,
			Params:  &dst.FieldList{},
			Results: &dst.FieldList{List: []*dst.Field{{Type: builderPointer(builderName)}}},
		},
		Body: &dst.BlockStmt{
			List: []dst.Stmt{
				&dst.ReturnStmt{
					Results: []dst.Expr{
						&dst.UnaryExpr{
							Op: token.AND,
							X:  &dst.CompositeLit{Type: dst.NewIdent(builderName)},
						},
					},
				},
			},
		},
	}
}

// BuilderSetter returns a chainable method setting one field of the built value:
//
//	func (b *OrderBuilder) WithID(v int) *OrderBuilder {
//		b.v.ID = v
//		return b
//	}
func BuilderSetter(builderName, fieldName string, fieldType dst.Expr) *dst.FuncDecl {
	assign := &dst.AssignStmt{
		Lhs: []dst.Expr{
			&dst.SelectorExpr{
				X: &dst.SelectorExpr{
					X:   dst.NewIdent(builderReceiver),
					Sel: dst.NewIdent(builderValue),
				},
				Sel: dst.NewIdent(fieldName),
			},
		},
		Tok: token.ASSIGN,
		Rhs: []dst.Expr{dst.NewIdent(setterParam)},
	}
	ret := &dst.ReturnStmt{Results: []dst.Expr{dst.NewIdent(builderReceiver)}}

	return &dst.FuncDecl{
		Recv: builderRecv(builderName),
		Name: dst.NewIdent("With" + fieldName),
		Type: &dst.FuncType{
			Func: true,
			Params: &dst.FieldList{List: []*dst.Field{
				{
					Names: []*dst.Ident{dst.NewIdent(setterParam)},
					Type:  dst.Clone(fieldType).(dst.Expr),
				},
			}},
			Results: &dst.FieldList{List: []*dst.Field{{Type: builderPointer(builderName)}}},
		},
		Body: &dst.BlockStmt{List: []dst.Stmt{assign, ret}},
	}
}

// BuilderBuild returns the method handing out the built value:
//
//	func (b *OrderBuilder) Build() models.Order {
//		return b.v
//	}
func BuilderBuild(builderName string, target dst.Expr) *dst.FuncDecl {
	return &dst.FuncDecl{
		Recv: builderRecv(builderName),
		Name: dst.NewIdent("Build"),
		Type: &dst.FuncType{
			Func:    true,
			Params:  &dst.FieldList{},
			Results: &dst.FieldList{List: []*dst.Field{{Type: dst.Clone(target).(dst.Expr)}}},
		},
		Body: &dst.BlockStmt{
			List: []dst.Stmt{
				&dst.ReturnStmt{
					Results: []dst.Expr{
						&dst.SelectorExpr{
							X:   dst.NewIdent(builderReceiver),
							Sel: dst.NewIdent(builderValue),
						},
					},
				},
			},
		},
	}
}

func builderRecv(builderName string) *dst.FieldList {
	return &dst.FieldList{
		List: []*dst.Field{
			{
				Names: []*dst.Ident{dst.NewIdent(builderReceiver)},
				Type:  builderPointer(builderName),
			},
		},
	}
}

func builderPointer(builderName string) *dst.StarExpr {
	return &dst.StarExpr{X: dst.NewIdent(builderName)}
}
