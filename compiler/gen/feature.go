package gen

var (
	// FeaturePresentation provides a feature-flag for the presentation layer.
	// It emits one listing view per entity and switches controllers to the
	// hybrid variant.
	FeaturePresentation = Feature{
		Name:        "views",
		Stage:       Stable,
		Default:     false,
		Description: "Views generates HTML listing pages and hybrid controllers serving both pages and JSON",
	}

	// FeatureAuth provides a feature-flag for the authentication bundle.
	FeatureAuth = Feature{
		Name:        "auth",
		Stage:       Stable,
		Default:     false,
		Description: "Auth generates a user entity, login and registration routes and a session gate",
	}

	// FeatureSchemaSQL writes config/schema.sql with the CREATE TABLE
	// statements of every entity.
	FeatureSchemaSQL = Feature{
		Name:        "sql/schema",
		Stage:       Beta,
		Default:     true,
		Description: "Writes the CREATE TABLE statements of the generated tables to config/schema.sql",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeaturePresentation,
		FeatureAuth,
		FeatureSchemaSQL,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are usable, but their generated output may still change.
	Alpha

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// DefaultFeatures returns the features enabled by default.
func DefaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}

// Variant selects one of the two controller bodies. It is resolved once
// per run; generated code never branches on it.
type Variant uint8

// List of controller variants.
const (
	// VariantAPI controllers always answer with JSON.
	VariantAPI Variant = iota
	// VariantHybrid controllers render pages for browser navigation and
	// answer with JSON for script requests.
	VariantHybrid
)

// VariantOf returns the variant for the presentation flag.
func VariantOf(presentation bool) Variant {
	if presentation {
		return VariantHybrid
	}
	return VariantAPI
}

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantHybrid {
		return "hybrid"
	}
	return "api"
}

// Hybrid reports if the variant renders pages.
func (v Variant) Hybrid() bool { return v == VariantHybrid }
