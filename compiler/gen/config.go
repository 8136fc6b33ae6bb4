package gen

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
)

const defaultHeader = "Code generated by mvcgen. DO NOT EDIT."

// Config holds the configuration of one generation run.
type Config struct {
	// Target is the parent directory. The project is created
	// at Target/<project name>.
	Target string

	// Module is the Go module path written to the generated go.mod.
	// Empty means the project name.
	Module string

	// Driver is the default DB_DRIVER of the generated project and the
	// dialect of config/schema.sql. One of "mysql", "postgres" or "sqlite".
	Driver string

	// Header is the comment written at the top of generated Go files.
	Header string

	// Features enabled for this run. The presentation and authentication
	// features are also enabled from the ProjectSpec flags.
	Features []Feature

	// Logger receives one debug record per written artifact.
	Logger *slog.Logger

	// Reporter receives one progress step per artifact class.
	Reporter Reporter
}

// DefaultConfig returns a Config with the default header, driver and features.
func DefaultConfig() *Config {
	return &Config{
		Target:   ".",
		Driver:   DriverMySQL,
		Header:   defaultHeader,
		Features: DefaultFeatures(),
	}
}

// OutputConfig groups the settings controlling where and how files are written.
type OutputConfig struct {
	Target string
	Module string
	Header string
}

// Output returns the output settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{Target: c.Target, Module: c.Module, Header: c.Header}
}

// ProjectDir returns the directory of the generated project.
func (c *Config) ProjectDir(project string) string {
	return filepath.Join(c.Target, project)
}

// ModulePath returns the Go module path of the generated project.
func (c *Config) ModulePath(project string) string {
	if c.Module != "" {
		return c.Module
	}
	return project
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns an error for unknown features.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range AllFeatures {
		if name == f.Name {
			return c.HasFeature(name), nil
		}
	}
	return false, NewConfigError("Features", name, fmt.Sprintf("unexpected feature name %q", name))
}

// HasFeature reports if the feature is in the enabled list.
func (c *Config) HasFeature(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool { return f.Name == name })
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Config) reporter() Reporter {
	if c.Reporter != nil {
		return c.Reporter
	}
	return NopReporter{}
}
