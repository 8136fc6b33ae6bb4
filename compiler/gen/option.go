package gen

import (
	"errors"
	"log/slog"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated Go file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the parent directory of the generated project.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithModule sets the Go module path of the generated project.
// For example: "github.com/org/blog".
func WithModule(module string) Option {
	return func(c *Config) error {
		if module == "" {
			return NewConfigError("Module", nil, "module cannot be empty")
		}
		if strings.ContainsAny(module, " \t\n") {
			return NewConfigError("Module", module, "module path must not contain whitespace")
		}
		c.Module = module
		return nil
	}
}

// WithDriver sets the default database driver of the generated project.
// Supported drivers: "mysql", "postgres", "sqlite".
func WithDriver(driver string) Option {
	return func(c *Config) error {
		if _, err := NewDriver(driver); err != nil {
			return err
		}
		c.Driver = driver
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.HasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithFeatureNames enables features by name. It fails on unknown names.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unexpected feature name")
			}
			if !c.HasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithoutFeatures disables features, including default ones.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		kept := c.Features[:0]
		for _, f := range c.Features {
			drop := false
			for _, name := range names {
				if f.Name == name {
					drop = true
					break
				}
			}
			if !drop {
				kept = append(kept, f)
			}
		}
		c.Features = kept
		return nil
	}
}

// WithLogger sets the logger receiving one debug record per written artifact.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(c *Config) error {
		if r == nil {
			return NewConfigError("Reporter", nil, "reporter cannot be nil")
		}
		c.Reporter = r
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
