package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/version-checker/internal/logger"
)

// Config holds settings shared by the version-checker binaries.
type Config struct {
	// ServerAddress is the gRPC address of the version channel.
	ServerAddress string `yaml:"server_addr"`
	// Timeout is the duration for RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum level of emitted log messages.
	LogLevel string `yaml:"log_level,omitempty"`
	// App selects where application version metadata comes from.
	App AppConfig `yaml:"app"`
}

// AppConfig describes the application metadata source.
type AppConfig struct {
	// Source is either SourceManifest or SourceBuild.
	Source string `yaml:"source"`
	// Manifest is the path to the package manifest used by SourceManifest.
	Manifest string `yaml:"manifest,omitempty"`
	// Package is the manifest key of the application.
	// Empty means the name of the running executable.
	Package string `yaml:"package,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "version-checker-settings.yaml"

	// DefaultManifestFilename is the default filename for the package manifest.
	DefaultManifestFilename = "app-manifest.yaml"

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// SourceManifest reads application metadata from the package manifest.
	SourceManifest = "manifest"

	// SourceBuild reports the version metadata injected at build time.
	SourceBuild = "build"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownSource is returned for an unsupported app.source value.
	errUnknownSource = errors.New("unknown application metadata source")
	// errUnknownLogLevel is returned for an unparsable log_level value.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
			return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
		}
	}

	switch settings.App.Source {
	case "":
		settings.App.Source = SourceManifest
	case SourceManifest, SourceBuild:
	default:
		return fmt.Errorf("%w: %q", errUnknownSource, settings.App.Source)
	}

	if settings.App.Source == SourceManifest && settings.App.Manifest == "" {
		settings.App.Manifest = DefaultManifestFilename
	}

	return nil
}
