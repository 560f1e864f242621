// Package config loads generator settings from defaults, an optional easygen.toml,
// EASYGEN_* environment variables and command line flags, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/generator/materialize"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix          = "EASYGEN"
	DefaultConfigFile  = "easygen.toml"
	DefaultDiffFile    = "easygen.diff"
	DefaultRootFolder  = "generated"
	DefaultPackageName = "./..."
)

// Config is the resolved configuration of a generator run.
type Config struct {
	Path            string        `mapstructure:"path"`
	Root            string        `mapstructure:"root"`
	Debug           bool          `mapstructure:"debug"`
	DryRun          bool          `mapstructure:"dry_run"`
	Diff            string        `mapstructure:"diff"`
	Planners        []string      `mapstructure:"planners"`
	Policy          string        `mapstructure:"policy"`
	Extension       string        `mapstructure:"extension"`
	WaitForDebugger time.Duration `mapstructure:"wait_for_debugger"`
	Debounce        time.Duration `mapstructure:"debounce"`
	JSONLogs        bool          `mapstructure:"json_logs"`
}

// flagKeys maps flag names to configuration keys where they differ.
var flagKeys = map[string]string{
	"dry-run":           "dry_run",
	"wait-for-debugger": "wait_for_debugger",
	"json-logs":         "json_logs",
	"planner":           "planners",
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("path", "")
	v.SetDefault("root", DefaultRootFolder)
	v.SetDefault("debug", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("diff", "")
	v.SetDefault("planners", []string{"builder"})
	v.SetDefault("policy", materialize.Recreate.String())
	v.SetDefault("extension", materialize.DefaultExtension)
	v.SetDefault("wait_for_debugger", time.Duration(0))
	v.SetDefault("debounce", 500*time.Millisecond)
	v.SetDefault("json_logs", false)
}

// Load resolves the configuration. flags may be nil. An explicit configFile must exist;
// otherwise easygen.toml is read from the application path when present.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if configFile == "" {
		candidate := filepath.Join(v.GetString("path"), DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	config.Planners = splitList(config.Planners)
	return &config, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = errors.Wrapf(err, "binding flag --%s", f.Name)
		}
	})
	return bindErr
}

// splitList accepts both repeated values and comma separated ones, as environment
// variables only carry a single string.
func splitList(in []string) []string {
	out := []string{}
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks the configuration and fills in derived values: a dry run without a
// diff file writes to easygen.diff in the application path.
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.WithHint(errors.New("--path is required"), "point --path at the root of the Go module to generate from")
	}
	if _, err := os.Stat(c.Path); err != nil {
		return errors.Wrapf(err, "--path %q is invalid", c.Path)
	}
	if c.Root == "" {
		return errors.New("--root must not be empty")
	}
	if len(c.Planners) == 0 {
		return errors.WithHint(errors.New("no planners configured"), "pass at least one --planner")
	}
	if _, err := materialize.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return errors.Newf("extension %q must start with a dot", c.Extension)
	}

	if c.DryRun && c.Diff == "" {
		c.Diff = filepath.Join(c.Path, DefaultDiffFile)
	}
	if c.Diff != "" {
		return validateOutputFile(c.Diff)
	}
	return nil
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "output file directory does not exist")
	}

	return nil
}

// RootFolder returns the output root. A relative root is taken relative to the application path.
func (c *Config) RootFolder() string {
	if filepath.IsAbs(c.Root) {
		return filepath.Clean(c.Root)
	}
	return filepath.Join(c.Path, c.Root)
}

// FolderPolicy returns the parsed folder policy. Call Validate first.
func (c *Config) FolderPolicy() materialize.Policy {
	p, _ := materialize.ParsePolicy(c.Policy)
	return p
}
