package generator

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dave/dst/decorator"
	"github.com/easygen/go-easy-generation/generator/definition"
	"github.com/easygen/go-easy-generation/generator/facts"
	"github.com/easygen/go-easy-generation/generator/materialize"
	"github.com/easygen/go-easy-generation/internal/comment"
	"github.com/easygen/go-easy-generation/internal/debugger"
	"github.com/easygen/go-easy-generation/internal/util"
	"go.uber.org/zap"
)

// Options configures a GenerationManager.
type Options struct {
	AppPath         string // path to the user's application as provided by the user
	RootFolder      string
	Extension       string
	Policy          materialize.Policy
	DiffFile        string // when set, changes are written here as a diff instead of to disk
	Debug           bool
	WaitForDebugger time.Duration
}

// GenerationManager runs a planner over the definitions of a set of loaded packages and
// materializes the result.
type GenerationManager struct {
	opts         Options
	planner      Planner
	packages     []*decorator.Package
	facts        facts.Keeper // output path of every planned definition
	materializer *materialize.Materializer
	logger       *zap.SugaredLogger
}

// Report summarises a run.
type Report struct {
	Existing int
	Planned  int
	Written  []string
	Removed  []string
	DiffFile string
	Changes  int // number of files in the diff
}

// NewGenerationManager initializes a GenerationManager for the given packages.
func NewGenerationManager(pkgs []*decorator.Package, planner Planner, opts Options, logger *zap.SugaredLogger) *GenerationManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	m := materialize.New(opts.RootFolder, logger.Named("materialize"))
	m.Policy = opts.Policy
	if opts.Extension != "" {
		m.Extension = opts.Extension
	}

	return &GenerationManager{
		opts:         opts,
		planner:      planner,
		packages:     pkgs,
		facts:        facts.NewKeeper(),
		materializer: m,
		logger:       logger,
	}
}

// Initialize runs before generation. In debug mode without an attached debugger it
// explains how to attach one, and waits for it when WaitForDebugger is set.
func (m *GenerationManager) Initialize(ctx context.Context) {
	if !m.opts.Debug || debugger.Attached() {
		return
	}

	pid := os.Getpid()
	m.logger.Warnw("debug mode is on but no debugger is attached",
		"pid", pid,
		"hint", fmt.Sprintf("dlv attach %d", pid))

	if m.opts.WaitForDebugger <= 0 {
		return
	}

	m.logger.Infow("waiting for a debugger", "timeout", m.opts.WaitForDebugger)
	if debugger.WaitForAttach(ctx, m.opts.WaitForDebugger, debugger.DefaultPollInterval) {
		m.logger.Infow("debugger attached")
	} else {
		m.logger.Infow("no debugger attached, continuing")
	}
}

// ExistingDefinitions returns the definitions declared in the loaded packages.
func (m *GenerationManager) ExistingDefinitions() []*definition.Definition {
	for _, pkg := range m.packages {
		for _, err := range pkg.Errors {
			m.logger.Warnw("package has errors", "package", pkg.PkgPath, "error", err.Error())
		}
	}
	return definition.FromPackages(m.packages)
}

// Plan runs the planner and checks its output. Definitions that would overwrite each
// other are reported; the last one is written.
func (m *GenerationManager) Plan(existing []*definition.Definition) (definition.Plan, error) {
	plan, err := m.planner.Plan(existing)
	if err != nil {
		return nil, errors.Wrap(err, "planning definitions")
	}
	if plan == nil {
		plan = definition.Plan{}
	}

	for _, primary := range plan.Primaries() {
		if strings.HasSuffix(primary, ".") {
			m.logger.Warnw("primary namespace ends with a dot; sub namespace folders will be joined to it",
				"primary", primary)
		}
	}

	m.facts = facts.NewKeeper()
	first := map[string]*definition.Definition{}
	for _, target := range m.materializer.Targets(plan) {
		def := target.Definition
		if def.Name == "" {
			return nil, errors.Newf("planned definition in namespace %q has no name", def.Namespace)
		}
		if def.Kind() == facts.None {
			return nil, errors.Newf("planned definition %s has no type declaration", def.QualifiedName())
		}

		err := m.facts.AddFact(facts.Entry{Name: target.Path, Fact: def.Kind()})
		switch {
		case errors.Is(err, facts.ErrFactExists) && util.ExprEqual(first[target.Path].Spec.Type, def.Spec.Type):
			comment.Info(nil, target.Path, fmt.Sprintf("%s is planned more than once with the same type", def.QualifiedName()))
			m.logger.Infow("definition planned again", "definition", def.QualifiedName(), "path", target.Path)
		case errors.Is(err, facts.ErrFactExists):
			comment.Warn(nil, target.Path, fmt.Sprintf("%s overwrites a definition planned earlier in this run", def.QualifiedName()))
			m.logger.Warnw("duplicate output file", "definition", def.QualifiedName(), "path", target.Path)
		case err != nil:
			return nil, err
		default:
			first[target.Path] = def
		}
	}
	return plan, nil
}

// Execute extracts the existing definitions, plans new ones and writes them, either to
// disk or to the diff file.
func (m *GenerationManager) Execute(ctx context.Context) (*Report, error) {
	existing := m.ExistingDefinitions()
	m.logger.Debugw("extracted existing definitions", "count", len(existing))

	plan, err := m.Plan(existing)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Existing: len(existing),
		Planned:  plan.Len(),
	}
	if m.opts.Debug {
		m.dumpPlan(plan)
	}

	if m.opts.DiffFile != "" {
		changes, err := m.WriteDiff(plan)
		if err != nil {
			return nil, err
		}
		report.DiffFile = m.opts.DiffFile
		report.Changes = changes
		return report, nil
	}

	result, err := m.materializer.Materialize(ctx, plan)
	if result != nil {
		report.Written = result.Written
		report.Removed = result.Removed
	}
	if err != nil {
		return report, errors.Wrap(err, "materializing definitions")
	}
	m.logger.Infow("generation complete", "written", len(report.Written), "removed", len(report.Removed))
	return report, nil
}

func (m *GenerationManager) dumpPlan(plan definition.Plan) {
	for _, primary := range plan.Primaries() {
		for _, def := range plan[primary] {
			file, err := def.File()
			if err != nil {
				m.logger.Debugw("planned definition", "primary", primary, "definition", def.QualifiedName(), "error", err)
				continue
			}
			m.logger.Debugw("planned definition", "primary", primary, "definition", def.QualifiedName(), "tree", util.DebugPrint(file))
		}
	}
}
