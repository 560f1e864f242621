package generator

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/generator/definition"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// WriteDiff writes the changes the plan would make as a unified diff to the diff file,
// replacing its previous content. Paths in the diff are relative to the application.
// It returns the number of files in the diff.
func (m *GenerationManager) WriteDiff(plan definition.Plan) (int, error) {
	changes, err := m.materializer.Preview(plan)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(m.opts.DiffFile)
	if err != nil {
		return 0, errors.Wrapf(err, "creating diff file %s", m.opts.DiffFile)
	}
	defer f.Close()

	absAppPath, err := filepath.Abs(m.opts.AppPath)
	if err != nil {
		return 0, err
	}

	for _, change := range changes {
		// what this file will be named in the diff file
		absPath, err := filepath.Abs(change.Path)
		if err != nil {
			return 0, err
		}
		diffFileName, err := filepath.Rel(absAppPath, absPath)
		if err != nil {
			return 0, err
		}

		patch := godiffpatch.GeneratePatch(filepath.ToSlash(diffFileName), change.Old, change.New)
		if _, err := f.WriteString(patch); err != nil {
			return 0, errors.Wrapf(err, "writing diff file %s", m.opts.DiffFile)
		}
	}

	m.logger.Infow("changes written", "diff", m.opts.DiffFile, "files", len(changes))
	return len(changes), nil
}
