package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "VIZCORE"

// Configuration keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyScenario     = "scenario"
	KeyTreeVerify   = "tree.verify"
	KeyGraphWeight  = "graph.weight"
	KeyRenderIndent = "render.indent"

	// FlagConfig names the configuration file flag. It is not a setting.
	FlagConfig = "config"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("config: unknown config file format")

	// ErrInvalidValue is returned when a setting cannot be converted or is out of range.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Settings is the resolved configuration of a vizcore session.
type Settings struct {
	Log struct {
		// Level is the minimum enabled zap level: debug, info, warn or error.
		Level string
		// Format is the log encoding: console or json.
		Format string
	}
	// Scenario is an optional YAML scenario file to run before the shell.
	Scenario string
	Tree     struct {
		// Verify runs a red-black verification after every tree mutation.
		Verify bool
	}
	Graph struct {
		// Weight is the weight of edges created without one.
		Weight int64
	}
	Render struct {
		// Indent is the number of spaces per nesting level.
		Indent int
	}
}

// Defaults returns the default settings as a flat key map.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLogLevel:     "info",
		KeyLogFormat:    "console",
		KeyScenario:     "",
		KeyTreeVerify:   false,
		KeyGraphWeight:  int64(1),
		KeyRenderIndent: 2,
	}
}

// Configuration holds config parameters from several sources (defaults,
// file, env vars, flags). Later sources override earlier ones.
type Configuration struct {
	config *koanf.Koanf
}

// New returns an empty configuration.
func New() *Configuration {
	return &Configuration{config: koanf.New(".")}
}

// LoadDefaults merges the default settings.
func (c *Configuration) LoadDefaults() error {
	return c.config.Load(confmap.Provider(Defaults(), "."), nil)
}

// LoadFile loads parameters from a JSON or YAML file and merges them into
// the loaded config. Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrapf(err, "config file %q", filePath)
	}

	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return errors.Wrapf(err, "load config file %q", filePath)
	}

	return nil
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the
// loaded config. The prefix is used to filter the env vars; PREFIX_LOG_LEVEL
// maps to log.level. Only existing keys will be overwritten, all other keys
// are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.Replace(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".", -1)
		if !c.config.Exists(mapKey) {
			return ""
		}

		return mapKey
	}), nil)
}

// LoadFlagSet loads parameters from a FlagSet including default values and
// merges them into the loaded config. Existing keys will only be overwritten
// if they were set via command line.
func (c *Configuration) LoadFlagSet(flagSet *pflag.FlagSet) error {
	return c.config.Load(newFlagLayer(flagSet, c.config), nil)
}

// Settings converts the merged configuration into Settings and validates it.
// Environment values arrive as strings and are converted with cast.
func (c *Configuration) Settings() (*Settings, error) {
	s := &Settings{}
	var err error

	s.Log.Level = strings.ToLower(cast.ToString(c.config.Get(KeyLogLevel)))
	s.Log.Format = strings.ToLower(cast.ToString(c.config.Get(KeyLogFormat)))
	s.Scenario = cast.ToString(c.config.Get(KeyScenario))

	if s.Tree.Verify, err = cast.ToBoolE(c.config.Get(KeyTreeVerify)); err != nil {
		return nil, errors.Wrapf(ErrInvalidValue, "%s: %v", KeyTreeVerify, err)
	}
	if s.Graph.Weight, err = cast.ToInt64E(c.config.Get(KeyGraphWeight)); err != nil {
		return nil, errors.Wrapf(ErrInvalidValue, "%s: %v", KeyGraphWeight, err)
	}
	if s.Render.Indent, err = cast.ToIntE(c.config.Get(KeyRenderIndent)); err != nil {
		return nil, errors.Wrapf(ErrInvalidValue, "%s: %v", KeyRenderIndent, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if _, err := ParseLevel(s.Log.Level); err != nil {
		return err
	}
	if s.Log.Format != "console" && s.Log.Format != "json" {
		return errors.Wrapf(ErrInvalidValue, "%s: %q (want console or json)", KeyLogFormat, s.Log.Format)
	}
	if s.Graph.Weight < 0 {
		return errors.Wrapf(ErrInvalidValue, "%s: %d is negative", KeyGraphWeight, s.Graph.Weight)
	}
	if s.Render.Indent < 0 {
		return errors.Wrapf(ErrInvalidValue, "%s: %d is negative", KeyRenderIndent, s.Render.Indent)
	}

	return nil
}

// Load resolves the settings of one invocation: defaults, then the file
// named by --config, then VIZCORE_* environment variables, then flags that
// were set explicitly. args excludes the program name.
func Load(args []string) (*Settings, *pflag.FlagSet, error) {
	fs := NewFlagSet("vizcore", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return nil, fs, errors.Wrap(err, "parse flags")
	}

	c := New()
	if err := c.LoadDefaults(); err != nil {
		return nil, fs, err
	}
	if path, _ := fs.GetString(FlagConfig); path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, fs, err
		}
	}
	if err := c.LoadEnvironmentVars(EnvPrefix); err != nil {
		return nil, fs, errors.Wrap(err, "load environment")
	}
	if err := c.LoadFlagSet(fs); err != nil {
		return nil, fs, errors.Wrap(err, "load flags")
	}

	s, err := c.Settings()

	return s, fs, err
}
