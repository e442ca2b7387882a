// Package config holds the command's options and merges them from flags,
// XCCOV_PRETTY_* environment variables, and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jupierce/xccov-pretty/pkg/log"
)

// EnvPrefix prefixes every environment variable the command reads
const EnvPrefix = "XCCOV_PRETTY"

// Options holds all CLI configuration
type Options struct {
	Comment    bool
	Targets    []string
	Verbosity  string
	ConfigFile string
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Verbosity: "error",
	}
}

// BindFlags attaches the option flags to fs.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Comment, "comment", o.Comment, "Output an HTML summary suitable for a pull request comment")
	fs.StringSliceVarP(&o.Targets, "target", "t", o.Targets, "Only include the named target (repeat or comma-separate for several)")
	fs.StringVar(&o.Verbosity, "verbosity", o.Verbosity, "Log verbosity on stderr (error, info, debug, trace)")
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a config file (default: $XDG_CONFIG_HOME/xccov-pretty/config.yaml)")
}

// Load fills every option the user did not set on the command line from the
// environment or the config file, in that order of precedence.
func (o *Options) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	configFile := o.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if err := configureConfigFile(v, configFile); err != nil {
		return err
	}
	if err := readConfigFile(v, configFile != ""); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	o.Comment = v.GetBool("comment")
	o.Targets = splitTargets(v.GetStringSlice("target"))
	o.Verbosity = v.GetString("verbosity")
	return nil
}

// Validate checks option values
func (o *Options) Validate() error {
	if _, err := log.ParseLevel(o.Verbosity); err != nil {
		return fmt.Errorf("--verbosity: %w", err)
	}
	return nil
}

// Level returns the parsed verbosity, falling back to ErrorLevel.
func (o *Options) Level() log.Level {
	level, err := log.ParseLevel(o.Verbosity)
	if err != nil {
		return log.ErrorLevel
	}
	return level
}

// AllowList returns the target allow-list, or nil when every target is included.
func (o *Options) AllowList() []string {
	if len(o.Targets) == 0 {
		return nil
	}
	return o.Targets
}

// splitTargets accepts comma-separated values from env vars and config files,
// which viper only splits on whitespace.
func splitTargets(values []string) []string {
	var targets []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				targets = append(targets, name)
			}
		}
	}
	return targets
}

func configureConfigFile(v *viper.Viper, explicitPath string) error {
	if explicitPath != "" {
		path, err := homedir.Expand(explicitPath)
		if err != nil {
			return fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
		return nil
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
	return nil
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "xccov-pretty"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "xccov-pretty"))
	}
	return dirs
}
