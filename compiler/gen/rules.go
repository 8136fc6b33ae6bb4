package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/mvcgen/core"
	"github.com/syssam/mvcgen/schema"
)

// MaxStringLength is the length limit applied to short string fields.
const MaxStringLength = 255

// RuleKind identifies a validation rule.
type RuleKind uint8

// List of rule kinds, in evaluation order.
const (
	RuleRequired RuleKind = iota + 1
	RuleNumeric
	RuleEmail
	RuleMaxLength
)

// String returns the rule name.
func (k RuleKind) String() string {
	switch k {
	case RuleRequired:
		return "required"
	case RuleNumeric:
		return "numeric"
	case RuleEmail:
		return "email"
	case RuleMaxLength:
		return "max"
	default:
		return "unknown"
	}
}

// Rule is one validation rule of a field.
type Rule struct {
	Kind RuleKind
	// Field is the form key the rule applies to.
	Field string
	// Limit is set for RuleMaxLength.
	Limit int
	// Message is reported when the rule fails.
	Message string
}

// Check evaluates the rule against a submitted value with the same
// validators the generated controllers call.
func (r Rule) Check(v string) bool {
	switch r.Kind {
	case RuleRequired:
		return core.IsPresent(v)
	case RuleNumeric:
		return core.IsNumeric(v)
	case RuleEmail:
		return core.IsEmail(v)
	case RuleMaxLength:
		return core.MaxLength(v, r.Limit)
	default:
		return true
	}
}

// Validator returns the name of the core validator used by the rule.
func (r Rule) Validator() string {
	switch r.Kind {
	case RuleRequired:
		return "IsPresent"
	case RuleNumeric:
		return "IsNumeric"
	case RuleEmail:
		return "IsEmail"
	case RuleMaxLength:
		return "MaxLength"
	default:
		return ""
	}
}

// Rules returns the ordered validation rules of a field. Only the first
// failing rule of a field is reported.
func Rules(f schema.FieldSpec) []Rule {
	rules := []Rule{{
		Kind:    RuleRequired,
		Field:   f.Name,
		Message: fmt.Sprintf("Field '%s' is required", f.Name),
	}}
	switch f.Type {
	case schema.TypeInteger, schema.TypeFloat:
		rules = append(rules, Rule{
			Kind:    RuleNumeric,
			Field:   f.Name,
			Message: fmt.Sprintf("Field '%s' must be a number", f.Name),
		})
	case schema.TypeString:
		if strings.Contains(f.Name, "email") {
			rules = append(rules, Rule{
				Kind:    RuleEmail,
				Field:   f.Name,
				Message: fmt.Sprintf("Field '%s' must be a valid email", f.Name),
			})
		} else {
			rules = append(rules, Rule{
				Kind:    RuleMaxLength,
				Field:   f.Name,
				Limit:   MaxStringLength,
				Message: fmt.Sprintf("Field '%s' must not exceed %d characters", f.Name, MaxStringLength),
			})
		}
	}
	return rules
}

// Validate runs the rules of every field against a submitted form and
// returns the violation messages in field order, one per failing field.
func Validate(fields []schema.FieldSpec, form map[string]string) []string {
	var errs []string
	for _, f := range fields {
		for _, r := range Rules(f) {
			if !r.Check(form[f.Name]) {
				errs = append(errs, r.Message)
				break
			}
		}
	}
	return errs
}

// Storage is the Go type that holds a field value.
type Storage struct {
	// PkgPath is the import path of the type, empty for builtins.
	PkgPath string
	// Name is the type name.
	Name string
	// Converter is the core function converting hydrated values.
	Converter string
}

// String returns the qualified Go type.
func (s Storage) String() string {
	if s.PkgPath == "" {
		return s.Name
	}
	return s.PkgPath + "." + s.Name
}

// StorageOf maps a field type to its storage type.
func StorageOf(t schema.FieldType) Storage {
	switch t {
	case schema.TypeInteger:
		return Storage{Name: "int64", Converter: "ToInt64"}
	case schema.TypeFloat:
		return Storage{Name: "float64", Converter: "ToFloat64"}
	case schema.TypeBoolean:
		return Storage{Name: "bool", Converter: "ToBool"}
	case schema.TypeDateTime:
		return Storage{PkgPath: "time", Name: "Time", Converter: "ToTime"}
	default:
		return Storage{Name: "string", Converter: "ToString"}
	}
}

// InputOf returns the HTML form control used for a field.
func InputOf(f schema.FieldSpec) string {
	switch f.Type {
	case schema.TypeInteger, schema.TypeFloat:
		return "number"
	case schema.TypeBoolean:
		return "checkbox"
	case schema.TypeDateTime:
		return "date"
	default:
		if f.IsText() {
			return "textarea"
		}
		return "text"
	}
}
