// Package materialize writes planned definitions to disk.
//
// Each primary namespace group is handled in turn. The folders of the group's sub
// namespaces are prepared first, then every definition of the group is rendered and
// written to <root>/<primary>/<sub namespace folders>/<Name><ext>. The first error
// stops the run; nothing already deleted or written is restored.
package materialize

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/generator/definition"
	"go.uber.org/zap"
)

const DefaultExtension = ".go"

// Policy decides what happens to the existing contents of a sub namespace folder.
type Policy int

const (
	// Recreate deletes each sub namespace folder with everything in it, then creates it empty.
	Recreate Policy = iota
	// Prune keeps each sub namespace folder and only deletes the files with the output
	// extension that the run does not write.
	Prune
)

func (p Policy) String() string {
	switch p {
	case Recreate:
		return "recreate"
	case Prune:
		return "prune"
	default:
		return "unknown"
	}
}

// ParsePolicy returns the policy named s.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recreate":
		return Recreate, nil
	case "prune":
		return Prune, nil
	}
	return Recreate, errors.WithHint(errors.Newf("unknown folder policy %q", s), "use one of: recreate, prune")
}

// Materializer writes plans under RootFolder.
type Materializer struct {
	RootFolder string
	Extension  string
	Policy     Policy
	Logger     *zap.SugaredLogger
}

// Result lists what a run changed on disk.
type Result struct {
	Folders []string // folders prepared for sub namespaces
	Written []string
	Removed []string // files or folders deleted before writing
}

// New returns a Materializer with the default extension and the Recreate policy.
func New(rootFolder string, logger *zap.SugaredLogger) *Materializer {
	return &Materializer{
		RootFolder: rootFolder,
		Extension:  DefaultExtension,
		Policy:     Recreate,
		Logger:     logger,
	}
}

func (m *Materializer) logger() *zap.SugaredLogger {
	if m.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return m.Logger
}

func (m *Materializer) extension() string {
	if m.Extension == "" {
		return DefaultExtension
	}
	return m.Extension
}

// Materialize writes every definition of the plan, one primary namespace group at a time.
func (m *Materializer) Materialize(ctx context.Context, plan definition.Plan) (*Result, error) {
	result := &Result{}
	for _, primary := range plan.Primaries() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		group, err := m.layout(primary, plan[primary])
		if err != nil {
			return result, err
		}

		if err := m.prepareFolders(group, result); err != nil {
			return result, err
		}
		if err := m.writeFiles(group, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (m *Materializer) prepareFolders(group *groupLayout, result *Result) error {
	for _, folder := range group.folders {
		switch m.Policy {
		case Prune:
			if err := os.MkdirAll(folder, 0755); err != nil {
				return errors.Wrapf(err, "creating folder %s", folder)
			}
			stale, err := m.staleFiles(folder, group.targets)
			if err != nil {
				return err
			}
			for _, path := range stale {
				if err := os.Remove(path); err != nil {
					return errors.Wrapf(err, "removing stale file %s", path)
				}
				m.logger().Debugw("removed stale file", "path", path)
				result.Removed = append(result.Removed, path)
			}
		default:
			if _, err := os.Stat(folder); err == nil {
				if err := os.RemoveAll(folder); err != nil {
					return errors.Wrapf(err, "deleting folder %s", folder)
				}
				m.logger().Debugw("deleted folder", "path", folder)
				result.Removed = append(result.Removed, folder)
			}
			if err := os.MkdirAll(folder, 0755); err != nil {
				return errors.Wrapf(err, "creating folder %s", folder)
			}
		}
		result.Folders = append(result.Folders, folder)
	}
	return nil
}

func (m *Materializer) writeFiles(group *groupLayout, result *Result) error {
	for _, file := range group.files {
		// definitions directly under the primary have no prepared folder
		if err := os.MkdirAll(filepath.Dir(file.path), 0755); err != nil {
			return errors.Wrapf(err, "creating folder for %s", file.path)
		}
		if err := os.WriteFile(file.path, file.content, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", file.path)
		}
		m.logger().Debugw("wrote definition", "definition", file.def.QualifiedName(), "path", file.path)
		result.Written = append(result.Written, file.path)
	}
	return nil
}

// staleFiles lists the files directly inside folder that carry the output extension
// and are not in targets.
func (m *Materializer) staleFiles(folder string, targets map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading folder %s", folder)
	}

	stale := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != m.extension() {
			continue
		}
		path := filepath.Join(folder, e.Name())
		if !targets[filepath.Clean(path)] {
			stale = append(stale, path)
		}
	}
	return stale, nil
}
