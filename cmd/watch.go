package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/internal/comment"
	"github.com/easygen/go-easy-generation/internal/config"
	"github.com/easygen/go-easy-generation/internal/logger"
	"github.com/easygen/go-easy-generation/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "regenerate definitions when sources change",
	Long:  "run generate once, then again every time a Go source file of the application changes",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd.Flags())
		cobra.CheckErr(err)
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cobra.CheckErr(Watch(ctx, cfg))
	},
}

// Watch runs the generator, then keeps running it on source changes until ctx is done.
func Watch(ctx context.Context, cfg *config.Config) error {
	log := logger.Named("watch")

	run := func(ctx context.Context) error {
		report, err := Generate(ctx, cfg)
		comment.WriteAll()
		if err != nil {
			return err
		}
		printReport(cfg, report)
		return nil
	}
	if err := run(ctx); err != nil {
		log.Errorw("generation failed", "error", err)
	}

	dirs, err := packageDirs(cfg.Path)
	if err != nil {
		return err
	}

	w, err := watch.New(dirs, []string{cfg.RootFolder()}, cfg.Debounce, log)
	if err != nil {
		return err
	}
	log.Infow("watching for changes", "folders", len(dirs), "path", cfg.Path)
	return w.Run(ctx, run)
}

// packageDirs lists the folders of the application's packages.
func packageDirs(path string) ([]string, error) {
	pkgs, err := packages.Load(&packages.Config{Dir: path, Mode: packages.NeedName | packages.NeedFiles}, config.DefaultPackageName)
	if err != nil {
		return nil, errors.Wrapf(err, "listing packages in %s", path)
	}

	dirs := []string{path}
	seen := map[string]bool{}
	for _, pkg := range pkgs {
		if pkg.Dir == "" || seen[pkg.Dir] {
			continue
		}
		seen[pkg.Dir] = true
		dirs = append(dirs, pkg.Dir)
	}
	return dirs, nil
}

func init() {
	addFlags(watchCmd.Flags())
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "wait this long after the last change before regenerating")
	rootCmd.AddCommand(watchCmd)
}
