package codegen

import (
	"reflect"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

func totalSignature() *dst.FuncType {
	return &dst.FuncType{
		Func:    true,
		Params:  &dst.FieldList{List: []*dst.Field{{Names: []*dst.Ident{dst.NewIdent("currency")}, Type: dst.NewIdent("string")}}},
		Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("int")}, {Type: dst.NewIdent("error")}}},
	}
}

func TestInterfaceName(t *testing.T) {
	assert.Equal(t, "OrderAPI", InterfaceName("Order"))
}

func TestInterfaceMethod(t *testing.T) {
	sig := totalSignature()
	got := InterfaceMethod("Total", sig)

	want := &dst.Field{
		Names: []*dst.Ident{dst.NewIdent("Total")},
		Type: &dst.FuncType{
			Params:  &dst.FieldList{List: []*dst.Field{{Names: []*dst.Ident{dst.NewIdent("currency")}, Type: dst.NewIdent("string")}}},
			Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("int")}, {Type: dst.NewIdent("error")}}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InterfaceMethod() = %v, want %v", got, want)
	}
	assert.True(t, sig.Func, "the input signature must not be modified")
}

func TestInterfaceSpec(t *testing.T) {
	method := InterfaceMethod("Total", totalSignature())
	got := InterfaceSpec("OrderAPI", []*dst.Field{method})

	assert.Equal(t, "OrderAPI", got.Name.Name)
	iface, ok := got.Type.(*dst.InterfaceType)
	if assert.True(t, ok) && assert.Len(t, iface.Methods.List, 1) {
		assert.Equal(t, method, iface.Methods.List[0])
		assert.NotSame(t, method, iface.Methods.List[0])
	}

	empty := InterfaceSpec("EmptyAPI", nil)
	assert.Empty(t, empty.Type.(*dst.InterfaceType).Methods.List)
}
