package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dave/dst/decorator"
	"github.com/easygen/go-easy-generation/generator"
	"github.com/easygen/go-easy-generation/generator/materialize"
	"github.com/easygen/go-easy-generation/internal/comment"
	"github.com/easygen/go-easy-generation/internal/config"
	"github.com/easygen/go-easy-generation/internal/logger"
	"github.com/easygen/go-easy-generation/planners"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/tools/go/packages"
)

const (
	defaultPackagePath = ""
	defaultDebug       = false
)

var configFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate definitions once",
	Long:  "extract the definitions of an application, plan new ones and write them under the output root",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd.Flags())
		cobra.CheckErr(err)
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		report, err := Generate(ctx, cfg)
		comment.WriteAll()
		cobra.CheckErr(err)
		printReport(cfg, report)
	},
}

// addFlags registers the flags shared by every command that runs the generator.
func addFlags(flags *pflag.FlagSet) {
	flags.String("path", defaultPackagePath, "specify package path")
	flags.String("root", config.DefaultRootFolder, "output root folder, relative to --path unless absolute")
	flags.Bool("debug", defaultDebug, "enable debugging output")
	flags.Bool("dry-run", false, "write a diff of the changes instead of writing files")
	flags.String("diff", "", "specify diff output file path; implies a dry run")
	flags.StringSlice("planner", []string{"builder"}, fmt.Sprintf("planners to run (%s)", strings.Join(planners.Names(), ", ")))
	flags.String("policy", materialize.Recreate.String(), "what happens to existing sub namespace folders (recreate, prune)")
	flags.String("extension", materialize.DefaultExtension, "extension of generated files")
	flags.Duration("wait-for-debugger", 0, "in debug mode, wait this long for a debugger to attach")
	flags.Bool("json-logs", false, "log as JSON")
	flags.StringVar(&configFile, "config", "", "config file (default is easygen.toml in --path)")
	cobra.MarkFlagFilename(flags, "diff", ".diff") // for file completion
	cobra.MarkFlagFilename(flags, "config", ".toml")
}

// loadConfig resolves and validates the configuration, then sets up logging and the
// console printer.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(flags, configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.Debug, cfg.JSONLogs); err != nil {
		return nil, errors.Wrap(err, "initializing logger")
	}
	return cfg, nil
}

// Generate loads the application at cfg.Path and runs the configured planners over it.
func Generate(ctx context.Context, cfg *config.Config) (*generator.Report, error) {
	comment.EnableConsolePrinter(cfg.Path)

	planner, err := planners.Lookup(cfg.Planners...)
	if err != nil {
		return nil, err
	}

	pkgs, err := decorator.Load(&packages.Config{Dir: cfg.Path, Mode: packages.LoadSyntax | packages.NeedModule}, config.DefaultPackageName)
	if err != nil {
		return nil, errors.Wrapf(err, "loading packages in %s", cfg.Path)
	}

	manager := generator.NewGenerationManager(pkgs, planner, generator.Options{
		AppPath:         cfg.Path,
		RootFolder:      cfg.RootFolder(),
		Extension:       cfg.Extension,
		Policy:          cfg.FolderPolicy(),
		DiffFile:        cfg.Diff,
		Debug:           cfg.Debug,
		WaitForDebugger: cfg.WaitForDebugger,
	}, logger.Named("generator"))

	manager.Initialize(ctx)
	return manager.Execute(ctx)
}

func printReport(cfg *config.Config, report *generator.Report) {
	if report == nil {
		return
	}
	if report.DiffFile != "" {
		pterm.Success.Printfln("%d planned definitions, %d changed files written to %s", report.Planned, report.Changes, report.DiffFile)
		return
	}

	data := pterm.TableData{{"Change", "Path"}}
	for _, path := range report.Written {
		data = append(data, []string{"written", relative(cfg.Path, path)})
	}
	for _, path := range report.Removed {
		data = append(data, []string{"removed", relative(cfg.Path, path)})
	}
	if len(data) > 1 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			logger.Logger.Warnw("failed to render summary", "error", err)
		}
	}
	pterm.Success.Printfln("%d existing definitions, %d planned, %d files written, %d removed",
		report.Existing, report.Planned, len(report.Written), len(report.Removed))
}

func relative(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

func init() {
	addFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}
