// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"synaudit/internal/core"
)

// Config is the top-level configuration. Maps to the `synaudit:` root key in
// YAML; env vars use the SYNAUDIT_ prefix via the key replacer (e.g.
// SYNAUDIT_LOG_LEVEL).
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Analyze AnalyzeConfig `mapstructure:"analyze"`
	Export  ExportConfig  `mapstructure:"export"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string           `mapstructure:"level"`  // debug / info / warn / error
	Format string           `mapstructure:"format"` // json / text
	File   FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures optional rotating file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// AnalyzeConfig contains defaults for the analyze command.
type AnalyzeConfig struct {
	Format string `mapstructure:"format"` // text / json / yaml
	Output string `mapstructure:"output"` // empty = stdout
}

// ExportConfig contains settings for the live export mode.
type ExportConfig struct {
	Listen  string        `mapstructure:"listen"`
	Path    string        `mapstructure:"path"`
	Capture CaptureConfig `mapstructure:"capture"`
}

// CaptureConfig contains live capture handle settings.
type CaptureConfig struct {
	Interface   string `mapstructure:"interface"`
	Snaplen     int    `mapstructure:"snaplen"`
	Promiscuous bool   `mapstructure:"promiscuous"`
	Timeout     string `mapstructure:"timeout"`
	BPF         string `mapstructure:"bpf"`
}

// KafkaConfig contains Kafka report sink connection settings.
type KafkaConfig struct {
	Brokers      []string `mapstructure:"brokers"`
	Topic        string   `mapstructure:"topic"`
	Compression  string   `mapstructure:"compression"`
	BatchSize    int      `mapstructure:"batch_size"`
	BatchTimeout string   `mapstructure:"batch_timeout"`
}

// configRoot is the top-level wrapper matching the YAML structure `synaudit: ...`.
type configRoot struct {
	Synaudit Config `mapstructure:"synaudit"`
}

// Load loads configuration from file. An empty path skips the file read and
// yields defaults plus env overrides, so the tool runs without any config.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// No explicit env prefix — the `synaudit.` key prefix naturally maps to
	// `SYNAUDIT_` in env vars via the key replacer
	// (key "synaudit.log.level" → env "SYNAUDIT_LOG_LEVEL").
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Synaudit

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values. All keys use the "synaudit." prefix to
// match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("synaudit.log.level", "info")
	v.SetDefault("synaudit.log.format", "text")
	v.SetDefault("synaudit.log.file.enabled", false)
	v.SetDefault("synaudit.log.file.path", "/var/log/synaudit/synaudit.log")
	v.SetDefault("synaudit.log.file.rotation.max_size_mb", 100)
	v.SetDefault("synaudit.log.file.rotation.max_age_days", 30)
	v.SetDefault("synaudit.log.file.rotation.max_backups", 5)
	v.SetDefault("synaudit.log.file.rotation.compress", true)

	// Analyze defaults
	v.SetDefault("synaudit.analyze.format", "text")

	// Export defaults
	v.SetDefault("synaudit.export.listen", ":9469")
	v.SetDefault("synaudit.export.path", "/metrics")
	v.SetDefault("synaudit.export.capture.snaplen", 262144)
	v.SetDefault("synaudit.export.capture.promiscuous", false)
	v.SetDefault("synaudit.export.capture.bpf", "tcp")

	// Kafka sink defaults
	v.SetDefault("synaudit.kafka.compression", "snappy")
	v.SetDefault("synaudit.kafka.batch_size", 100)
	v.SetDefault("synaudit.kafka.batch_timeout", "100ms")
}

// Validate checks configuration invariants.
func (cfg *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: log level %s (must be debug/info/warn/error)", core.ErrConfigInvalid, cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("%w: log format %s (must be json/text)", core.ErrConfigInvalid, cfg.Log.Format)
	}
	switch cfg.Analyze.Format {
	case "text", "json", "yaml", "kafka":
	default:
		return fmt.Errorf("%w: analyze format %s (must be text/json/yaml/kafka)", core.ErrConfigInvalid, cfg.Analyze.Format)
	}
	if cfg.Export.Listen == "" {
		return fmt.Errorf("%w: export.listen must not be empty", core.ErrConfigInvalid)
	}
	return nil
}
