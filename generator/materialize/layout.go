package materialize

import (
	"path/filepath"

	"github.com/easygen/go-easy-generation/generator/definition"
	"github.com/easygen/go-easy-generation/generator/namespace"
)

type plannedFile struct {
	def     *definition.Definition
	path    string
	content []byte
}

// groupLayout is everything a primary namespace group needs on disk.
type groupLayout struct {
	primary string
	folders []string // sub namespace folders, in first seen order
	files   []plannedFile
	targets map[string]bool
}

// layout renders the definitions of one group and works out where they go.
func (m *Materializer) layout(primary string, defs []*definition.Definition) (*groupLayout, error) {
	group := &groupLayout{
		primary: primary,
		targets: map[string]bool{},
	}

	subNamespaces := [][]string{}
	for _, def := range defs {
		segments := namespace.Segments(def.Namespace, primary)
		if namespace.IsSubNamespace(segments) {
			subNamespaces = append(subNamespaces, segments)
		}
	}
	for _, segments := range namespace.Distinct(subNamespaces) {
		group.folders = append(group.folders, namespace.FolderPath(m.RootFolder, primary, segments))
	}

	for _, def := range defs {
		segments := namespace.Segments(def.Namespace, primary)
		content, err := def.Render()
		if err != nil {
			return nil, err
		}

		path := namespace.FilePath(m.RootFolder, primary, segments, def.Name, m.extension())
		group.files = append(group.files, plannedFile{
			def:     def,
			path:    path,
			content: content,
		})
		group.targets[filepath.Clean(path)] = true
	}
	return group, nil
}

// Targets returns the file each definition of the plan is written to, in write order.
func (m *Materializer) Targets(plan definition.Plan) []Target {
	ret := []Target{}
	for _, primary := range plan.Primaries() {
		for _, def := range plan[primary] {
			segments := namespace.Segments(def.Namespace, primary)
			ret = append(ret, Target{
				Definition: def,
				Path:       namespace.FilePath(m.RootFolder, primary, segments, def.Name, m.extension()),
			})
		}
	}
	return ret
}

// Target pairs a definition with its output file.
type Target struct {
	Definition *definition.Definition
	Path       string
}
