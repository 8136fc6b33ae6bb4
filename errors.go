package mvcgen

import (
	"errors"
	"fmt"

	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/schema"
)

// Sentinel errors returned by Generate. They are the generator sentinels,
// so errors.Is matches errors from either package.
var (
	// ErrInvalidSchema is returned for an invalid project description.
	ErrInvalidSchema = gen.ErrInvalidSchema

	// ErrInvalidConfig is returned when an option is rejected.
	ErrInvalidConfig = gen.ErrInvalidConfig

	// ErrTargetExists is returned when the project directory is already
	// present. Nothing is written in that case.
	ErrTargetExists = gen.ErrTargetExists

	// ErrGenerationFailed is returned when an artifact could not be
	// rendered or written. Files written before the failure are kept.
	ErrGenerationFailed = gen.ErrGenerationFailed
)

// IsTargetExists reports whether err is the existing target precondition failure.
func IsTargetExists(err error) bool {
	return errors.Is(err, ErrTargetExists)
}

// Message returns the one-line description of err shown to users.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var (
		genErr    *gen.GenerationError
		configErr *gen.ConfigError
		specErr   *schema.SpecError
	)
	switch {
	case errors.As(err, &configErr) && errors.Is(err, ErrTargetExists):
		return fmt.Sprintf("directory %v already exists", configErr.Value)
	case errors.As(err, &genErr) && genErr.File != "" && genErr.Cause != nil:
		return fmt.Sprintf("%s %s: %v", genErr.Message, genErr.File, innermost(genErr.Cause))
	case errors.As(err, &specErr):
		return specErr.Error()
	case errors.As(err, &configErr):
		return fmt.Sprintf("invalid %s: %s", configErr.Option, configErr.Message)
	default:
		return err.Error()
	}
}

// innermost returns the last error of a wrap chain.
func innermost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
