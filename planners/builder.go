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

const builderNamespace = "builder"

// Builder plans a chainable builder for every exported struct, in a builder
// sub namespace of the struct's namespace.
type Builder struct{}

func (Builder) Plan(existing []*definition.Definition) (definition.Plan, error) {
	plan := definition.Plan{}
	for _, def := range existing {
		if def.Kind() != facts.Struct || !token.IsExported(def.Name) {
			continue
		}
		if !referable(def) {
			comment.Info(nil, def.Location, fmt.Sprintf("no builder generated for %s", def.QualifiedName()),
				"generic types and types of package main cannot be built from another package")
			continue
		}

		if out := planBuilder(def); out != nil {
			plan.Add(primaryNamespace(def.Namespace), out)
		}
	}
	return plan, nil
}

func planBuilder(def *definition.Definition) *definition.Definition {
	name := codegen.BuilderName(def.Name)
	target := &dst.Ident{Name: def.Name, Path: def.PkgPath}
	ctor := codegen.BuilderConstructor(name)

	setters := []*dst.FuncDecl{}
	warnings := []string{}
	for _, field := range def.Spec.Type.(*dst.StructType).Fields.List {
		if len(field.Names) == 0 {
			warnings = append(warnings, "embedded fields have no setter")
			continue
		}

		fieldType, unexported := util.QualifyLocalTypes(field.Type, def.PkgPath)
		for _, ident := range field.Names {
			switch {
			case !token.IsExported(ident.Name):
				warnings = append(warnings, fmt.Sprintf("field %s is unexported and has no setter", ident.Name))
			case len(unexported) > 0:
				warnings = append(warnings, fmt.Sprintf("field %s uses unexported type %s and has no setter", ident.Name, unexported[0]))
			default:
				setters = append(setters, codegen.BuilderSetter(name, ident.Name, fieldType))
			}
		}
	}

	if len(setters) == 0 {
		comment.Info(nil, def.Location, fmt.Sprintf("no builder generated for %s", def.QualifiedName()), "it has no exported fields")
		return nil
	}
	for i := len(warnings) - 1; i >= 0; i-- {
		comment.Warn(ctor, def.Location, warnings[i])
	}

	return &definition.Definition{
		Name:      name,
		Namespace: def.Namespace + "." + builderNamespace,
		Doc:       []string{fmt.Sprintf("// %s builds %s values.", name, def.Name)},
		Spec:      codegen.BuilderStruct(name, target),
		Funcs:     []*dst.FuncDecl{ctor},
		Methods:   append(setters, codegen.BuilderBuild(name, target)),
	}
}
