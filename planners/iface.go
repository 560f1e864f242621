package planners

import (
	"fmt"
	"go/token"

	"github.com/dave/dst"
	"github.com/easygen/go-easy-generation/generator/definition"
	"github.com/easygen/go-easy-generation/generator/facts"
	"github.com/easygen/go-easy-generation/internal/codegen"
	"github.com/easygen/go-easy-generation/internal/comment"
	"github.com/easygen/go-easy-generation/internal/util"
)

const interfaceNamespace = "api"

// Interface plans an interface listing the exported methods of every exported
// concrete type, in an api sub namespace of the type's namespace.
//
// Methods on value and pointer receivers are both listed, so the interface is
// implemented by a pointer to the type.
type Interface struct{}

func (Interface) Plan(existing []*definition.Definition) (definition.Plan, error) {
	plan := definition.Plan{}
	for _, def := range existing {
		if def.Kind() == facts.Interface || def.Kind() == facts.None || !referable(def) {
			continue
		}

		if out := planInterface(def); out != nil {
			plan.Add(primaryNamespace(def.Namespace), out)
		}
	}
	return plan, nil
}

func planInterface(def *definition.Definition) *definition.Definition {
	methods := []*dst.Field{}
	for _, fn := range def.Methods {
		if !token.IsExported(fn.Name.Name) {
			continue
		}

		sig, unexported := util.QualifyLocalTypes(fn.Type, def.PkgPath)
		if len(unexported) > 0 {
			comment.Warn(nil, def.Location, fmt.Sprintf("method %s.%s is left out of %s", def.Name, fn.Name.Name, codegen.InterfaceName(def.Name)),
				fmt.Sprintf("its signature uses unexported type %s", unexported[0]))
			continue
		}
		methods = append(methods, codegen.InterfaceMethod(fn.Name.Name, sig.(*dst.FuncType)))
	}

	if len(methods) == 0 {
		return nil
	}

	name := codegen.InterfaceName(def.Name)
	return &definition.Definition{
		Name:      name,
		Namespace: def.Namespace + "." + interfaceNamespace,
		Doc:       []string{fmt.Sprintf("// %s lists the exported methods of %s.", name, def.QualifiedName())},
		Spec:      codegen.InterfaceSpec(name, methods),
	}
}
