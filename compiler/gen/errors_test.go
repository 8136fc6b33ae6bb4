package gen

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("Post", "title", "empty name", cause)

		assert.Contains(t, err.Error(), "mvcgen: schema error")
		assert.Contains(t, err.Error(), "entity Post")
		assert.Contains(t, err.Error(), "field title")
		assert.Contains(t, err.Error(), "empty name")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with entity only", func(t *testing.T) {
		err := &SchemaError{Entity: "Post"}
		assert.Contains(t, err.Error(), "entity Post")
		assert.NotContains(t, err.Error(), "field")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Post", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError("Post", "", "", nil)
		assert.True(t, errors.Is(err, ErrInvalidSchema))
		assert.True(t, IsSchemaError(fmt.Errorf("wrapped: %w", err)))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Driver", "oracle", "unsupported driver")

		assert.Contains(t, err.Error(), "mvcgen: config error")
		assert.Contains(t, err.Error(), "Driver")
		assert.Contains(t, err.Error(), "oracle")
		assert.Contains(t, err.Error(), "unsupported driver")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Target")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches sentinel and cause", func(t *testing.T) {
		err := &ConfigError{Option: "Target", Value: "blog", Message: "exists", Cause: ErrTargetExists}
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.True(t, errors.Is(err, ErrTargetExists))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewGenerationError("entity", "src/Entity/post.go", "write artifact", os.ErrPermission)

		assert.Contains(t, err.Error(), "mvcgen: generation error")
		assert.Contains(t, err.Error(), "phase entity")
		assert.Contains(t, err.Error(), "file: src/Entity/post.go")
		assert.Contains(t, err.Error(), "write artifact")
	})

	t.Run("Unwrap reaches the os error", func(t *testing.T) {
		err := NewGenerationError("static", "", "", os.ErrPermission)
		assert.True(t, errors.Is(err, os.ErrPermission))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
	})
}
