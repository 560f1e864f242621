package codegen

import "github.com/dave/dst"

// InterfaceName returns the name of the interface extracted from typeName.
func InterfaceName(typeName string) string {
	return typeName + "API"
}

// InterfaceMethod returns an interface method field with the signature of fn. The
// signature is cloned; receiver and body are dropped.
func InterfaceMethod(name string, signature *dst.FuncType) *dst.Field {
	sig := dst.Clone(signature).(*dst.FuncType)
	sig.Func = false
	sig.TypeParams = nil
	return &dst.Field{
		Names: []*dst.Ident{dst.NewIdent(name)},
		Type:  sig,
	}
}

// InterfaceSpec returns an interface type spec listing methods in order.
func InterfaceSpec(name string, methods []*dst.Field) *dst.TypeSpec {
	list := make([]*dst.Field, 0, len(methods))
	for _, m := range methods {
		list = append(list, dst.Clone(m).(*dst.Field))
	}
	return &dst.TypeSpec{
		Name: dst.NewIdent(name),
		Type: &dst.InterfaceType{
			Methods: &dst.FieldList{List: list},
		},
	}
}
