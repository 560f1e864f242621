// Package planners contains the planners shipped with go-easy-generation.
package planners

import (
	"go/token"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dave/dst"
	"github.com/easygen/go-easy-generation/generator"
	"github.com/easygen/go-easy-generation/generator/definition"
)

var registry = map[string]func() generator.Planner{
	"builder":   func() generator.Planner { return Builder{} },
	"interface": func() generator.Planner { return Interface{} },
}

// Names lists the registered planners.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a planner running the named planners in order.
func Lookup(names ...string) (generator.Planner, error) {
	if len(names) == 0 {
		return nil, errors.WithHintf(errors.New("no planner named"), "known planners: %s", strings.Join(Names(), ", "))
	}

	ret := make([]generator.Planner, 0, len(names))
	for _, name := range names {
		create, ok := registry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.WithHintf(errors.Newf("unknown planner %q", name), "known planners: %s", strings.Join(Names(), ", "))
		}
		ret = append(ret, create())
	}
	return generator.Compose(ret...), nil
}

// primaryNamespace is the first segment of ns.
func primaryNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[:i]
	}
	return ns
}

func isGeneric(spec *dst.TypeSpec) bool {
	return spec.TypeParams != nil && len(spec.TypeParams.List) > 0
}

// referable reports whether a definition can be referenced from generated packages.
func referable(def *definition.Definition) bool {
	return def.Spec != nil &&
		def.PkgPath != "" &&
		def.PkgName != "main" &&
		token.IsExported(def.Name) &&
		!isGeneric(def.Spec)
}
