package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/easygen/go-easy-generation/generator/materialize"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("path", "", "")
	flags.String("root", DefaultRootFolder, "")
	flags.Bool("debug", false, "")
	flags.Bool("dry-run", false, "")
	flags.StringSlice("planner", []string{"builder"}, "")
	flags.Duration("wait-for-debugger", 0, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultRootFolder, c.Root)
	assert.Equal(t, []string{"builder"}, c.Planners)
	assert.Equal(t, "recreate", c.Policy)
	assert.Equal(t, ".go", c.Extension)
	assert.Equal(t, 500*time.Millisecond, c.Debounce)
	assert.False(t, c.Debug)
}

func TestLoad_Precedence(t *testing.T) {
	app := t.TempDir()
	toml := `root = "from-file"
policy = "prune"
planners = ["interface"]
debug = true
wait_for_debugger = "2s"
`
	require.NoError(t, os.WriteFile(filepath.Join(app, DefaultConfigFile), []byte(toml), 0644))

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--path", app, "--planner", "builder,interface"}))
	t.Setenv("EASYGEN_POLICY", "recreate")

	c, err := Load(flags, "")
	require.NoError(t, err)

	assert.Equal(t, app, c.Path)
	assert.Equal(t, "from-file", c.Root, "config file beats defaults")
	assert.Equal(t, "recreate", c.Policy, "environment beats config file")
	assert.Equal(t, []string{"builder", "interface"}, c.Planners, "flags beat config file")
	assert.True(t, c.Debug)
	assert.Equal(t, 2*time.Second, c.WaitForDebugger)
}

func TestLoad_ExplicitConfigFileMustExist(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	app := t.TempDir()

	tests := []struct {
		name     string
		config   Config
		wantErr  bool
		wantDiff string
	}{
		{
			name:   "valid",
			config: Config{Path: app, Root: "gen", Planners: []string{"builder"}},
		},
		{
			name:    "missing path",
			config:  Config{Root: "gen", Planners: []string{"builder"}},
			wantErr: true,
		},
		{
			name:    "path does not exist",
			config:  Config{Path: filepath.Join(app, "nope"), Root: "gen", Planners: []string{"builder"}},
			wantErr: true,
		},
		{
			name:    "empty root",
			config:  Config{Path: app, Planners: []string{"builder"}},
			wantErr: true,
		},
		{
			name:    "no planners",
			config:  Config{Path: app, Root: "gen"},
			wantErr: true,
		},
		{
			name:    "unknown policy",
			config:  Config{Path: app, Root: "gen", Planners: []string{"builder"}, Policy: "shred"},
			wantErr: true,
		},
		{
			name:    "extension without dot",
			config:  Config{Path: app, Root: "gen", Planners: []string{"builder"}, Extension: "go"},
			wantErr: true,
		},
		{
			name:     "dry run uses the default diff file",
			config:   Config{Path: app, Root: "gen", Planners: []string{"builder"}, DryRun: true},
			wantDiff: filepath.Join(app, DefaultDiffFile),
		},
		{
			name:    "diff file needs a .diff extension",
			config:  Config{Path: app, Root: "gen", Planners: []string{"builder"}, Diff: filepath.Join(app, "out.patch")},
			wantErr: true,
		},
		{
			name:    "diff file directory must exist",
			config:  Config{Path: app, Root: "gen", Planners: []string{"builder"}, Diff: filepath.Join(app, "nope", "out.diff")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiff, tt.config.Diff)
		})
	}
}

func TestRootFolder(t *testing.T) {
	c := Config{Path: filepath.Join("apps", "shop"), Root: "gen"}
	assert.Equal(t, filepath.Join("apps", "shop", "gen"), c.RootFolder())

	abs := filepath.Join(t.TempDir(), "out")
	c.Root = abs
	assert.Equal(t, abs, c.RootFolder())
}

func TestFolderPolicy(t *testing.T) {
	assert.Equal(t, materialize.Prune, (&Config{Policy: "prune"}).FolderPolicy())
	assert.Equal(t, materialize.Recreate, (&Config{}).FolderPolicy())
}
