package materialize

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/generator/definition"
)

// Change is the effect a run would have on one file.
type Change struct {
	Path    string
	Old     string
	New     string
	Deleted bool
}

// Preview works out the changes Materialize would make for plan, without touching the
// filesystem. Each Change holds the content a file has before the run and after it, so
// a later group deleting a file an earlier group wrote is accounted for. Files that end
// the run with their current content are left out.
func (m *Materializer) Preview(plan definition.Plan) ([]Change, error) {
	v := &view{files: map[string]*pending{}}

	for _, primary := range plan.Primaries() {
		group, err := m.layout(primary, plan[primary])
		if err != nil {
			return nil, err
		}

		for _, folder := range group.folders {
			var doomed []string
			switch m.Policy {
			case Prune:
				doomed, err = m.staleFiles(folder, group.targets)
			default:
				doomed, err = filesUnder(folder, group.targets)
			}
			if err != nil {
				return nil, err
			}

			for _, path := range append(doomed, v.created(m.doomedBy(folder, group.targets))...) {
				if err := v.remove(path); err != nil {
					return nil, err
				}
			}
		}

		for _, file := range group.files {
			if err := v.write(file.path, string(file.content)); err != nil {
				return nil, err
			}
		}
	}
	return v.changes(), nil
}

// doomedBy returns the rule deciding which files a prepared folder loses.
func (m *Materializer) doomedBy(folder string, targets map[string]bool) func(string) bool {
	folder = filepath.Clean(folder)
	return func(path string) bool {
		if targets[path] {
			return false
		}
		if m.Policy == Prune {
			return filepath.Dir(path) == folder && filepath.Ext(path) == m.extension()
		}
		return strings.HasPrefix(path, folder+string(filepath.Separator))
	}
}

// pending is the state of one file as the run goes on.
type pending struct {
	path    string
	existed bool   // present on disk before the run
	old     string // content on disk before the run
	current string
	deleted bool
}

// view is the filesystem as Materialize would leave it after each step.
type view struct {
	files map[string]*pending
	order []string
}

func (v *view) get(path string) (*pending, error) {
	key := filepath.Clean(path)
	if p, ok := v.files[key]; ok {
		return p, nil
	}

	p := &pending{path: path}
	old, err := os.ReadFile(path)
	switch {
	case err == nil:
		p.existed = true
		p.old = string(old)
		p.current = p.old
	case errors.Is(err, os.ErrNotExist):
		p.deleted = true
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	v.files[key] = p
	v.order = append(v.order, key)
	return p, nil
}

func (v *view) write(path, content string) error {
	p, err := v.get(path)
	if err != nil {
		return err
	}
	p.current = content
	p.deleted = false
	return nil
}

// remove deletes path from the view. Paths already deleted are ignored.
func (v *view) remove(path string) error {
	p, err := v.get(path)
	if err != nil {
		return err
	}
	p.current = ""
	p.deleted = true
	return nil
}

// created lists the files written by the run that were not on disk before it and that
// doomed selects. Files on disk are found by listing the folder.
func (v *view) created(doomed func(string) bool) []string {
	ret := []string{}
	for _, key := range v.order {
		p := v.files[key]
		if !p.existed && !p.deleted && doomed(key) {
			ret = append(ret, p.path)
		}
	}
	return ret
}

func (v *view) changes() []Change {
	ret := []Change{}
	for _, key := range v.order {
		p := v.files[key]
		switch {
		case p.deleted && !p.existed:
			// written and deleted again within the run
		case p.deleted:
			ret = append(ret, Change{Path: p.path, Old: p.old, Deleted: true})
		case p.existed && p.current == p.old:
		default:
			ret = append(ret, Change{Path: p.path, Old: p.old, New: p.current})
		}
	}
	return ret
}

// filesUnder lists every regular file below folder that is not in targets.
func filesUnder(folder string, targets map[string]bool) ([]string, error) {
	ret := []string{}
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.Type().IsRegular() && !targets[filepath.Clean(path)] {
			ret = append(ret, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing folder %s", folder)
	}
	return ret, nil
}
