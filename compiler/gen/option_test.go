package gen

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithHeader("Custom header")(c))
	assert.Equal(t, "Custom header", c.Header)
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./out")(c))
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("rejects empty target", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		assert.True(t, IsConfigError(err))
	})
}

func TestWithModule(t *testing.T) {
	t.Run("sets module", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithModule("github.com/acme/blog")(c))
		assert.Equal(t, "github.com/acme/blog", c.Module)
	})

	t.Run("rejects empty module", func(t *testing.T) {
		assert.Error(t, WithModule("")(&Config{}))
	})

	t.Run("rejects whitespace", func(t *testing.T) {
		err := WithModule("github.com/acme/my blog")(&Config{})
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "Module", cerr.Option)
	})
}

func TestWithDriver(t *testing.T) {
	for _, name := range []string{DriverMySQL, DriverPostgres, DriverSQLite} {
		c := &Config{}
		require.NoError(t, WithDriver(name)(c))
		assert.Equal(t, name, c.Driver)
	}

	err := WithDriver("oracle")(&Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithFeatures(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithFeatures(FeatureAuth, FeatureAuth, FeaturePresentation)(c))
	assert.Len(t, c.Features, 2)
	assert.True(t, c.HasFeature("auth"))
	assert.True(t, c.HasFeature("views"))
}

func TestWithFeatureNames(t *testing.T) {
	t.Run("enables known features", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithFeatureNames("auth", "views")(c))
		assert.True(t, c.HasFeature("auth"))
		assert.True(t, c.HasFeature("views"))
	})

	t.Run("rejects unknown features", func(t *testing.T) {
		err := WithFeatureNames("graphql")(&Config{})
		assert.True(t, IsConfigError(err))
	})
}

func TestWithoutFeatures(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, WithoutFeatures(FeatureSchemaSQL.Name)(c))
	assert.False(t, c.HasFeature(FeatureSchemaSQL.Name))
	assert.Empty(t, c.Features)
}

func TestWithLogger(t *testing.T) {
	c := &Config{}
	l := slog.New(slog.DiscardHandler)
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.logger())

	assert.Error(t, WithLogger(nil)(c))
}

func TestWithReporter(t *testing.T) {
	c := &Config{}
	var got []Progress
	require.NoError(t, WithReporter(ReporterFunc(func(p Progress) { got = append(got, p) }))(c))
	c.reporter().Progress(Progress{Phase: PhaseStatic})
	assert.Len(t, got, 1)

	assert.Error(t, WithReporter(nil)(c))
}

func TestConfigApply(t *testing.T) {
	t.Run("stops at the first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithTarget(""), WithHeader("never"))
		assert.Error(t, err)
		assert.Empty(t, c.Header)
	})

	t.Run("ApplyAll collects every error", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(WithTarget(""), WithDriver("oracle"), WithHeader("set"))
		require.Error(t, err)
		assert.Equal(t, "set", c.Header)
		var cerr *ConfigError
		assert.True(t, errors.As(err, &cerr))
		assert.Contains(t, err.Error(), "Driver")
		assert.Contains(t, err.Error(), "Target")
	})
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithTarget("out"), WithDriver(DriverSQLite))
	require.NoError(t, err)
	assert.Equal(t, "out", c.Target)
	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, defaultHeader, c.Header)

	_, err = NewConfig(WithModule(""))
	assert.Error(t, err)

	assert.Panics(t, func() { MustNewConfig(WithDriver("oracle")) })
	assert.NotPanics(t, func() { MustNewConfig() })
}
