package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/Timisorean/Loki/pddl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every subcommand.
// Values come from an optional YAML file, flags given on the command line take precedence.
type Config struct {
	Indent    int    `yaml:"indent"`
	AddIndent int    `yaml:"add-indent"`
	LogLevel  string `yaml:"log-level"`
	Stats     bool   `yaml:"stats"`
}

var DefaultConfig = Config{
	Indent:    pddl.DefaultFormattingOptions.Indent,
	AddIndent: pddl.DefaultFormattingOptions.AddIndent,
	LogLevel:  "error",
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig
	f, err := os.Open(path)
	if err != nil {
		return config, errors.Wrap(err, "open config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, errors.Wrapf(err, "decode config %s", path)
	}
	return config, nil
}

func (c Config) FormattingOptions() pddl.FormattingOptions {
	return pddl.FormattingOptions{Indent: c.Indent, AddIndent: c.AddIndent}
}

// Level parses LogLevel as one of debug, info, warn or error
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("config", "c", "", "YAML config file")
	flags.Int("indent", DefaultConfig.Indent, "indentation of the outermost form")
	flags.Int("add-indent", DefaultConfig.AddIndent, "indentation added per nesting level")
	flags.StringP("log-level", "l", DefaultConfig.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("stats", DefaultConfig.Stats, "print the number of distinct nodes per family to stderr")
}

// resolveConfig merges the config file and the flags of cmd that were set explicitly
func resolveConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	config := DefaultConfig
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if config, err = LoadConfig(path); err != nil {
			return config, err
		}
	}
	if flags.Changed("indent") {
		config.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("add-indent") {
		config.AddIndent, _ = flags.GetInt("add-indent")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("stats") {
		config.Stats, _ = flags.GetBool("stats")
	}
	if config.Indent < 0 || config.AddIndent < 0 {
		return config, errors.Errorf("indentation must not be negative, got indent %d and add-indent %d", config.Indent, config.AddIndent)
	}
	return config, nil
}
