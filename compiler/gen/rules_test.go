package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mvcgen/schema"
)

func TestRules(t *testing.T) {
	tests := []struct {
		field    schema.FieldSpec
		kinds    []RuleKind
		messages []string
	}{
		{
			field:    schema.Field("title", "string"),
			kinds:    []RuleKind{RuleRequired, RuleMaxLength},
			messages: []string{"Field 'title' is required", "Field 'title' must not exceed 255 characters"},
		},
		{
			field:    schema.Field("email", "string"),
			kinds:    []RuleKind{RuleRequired, RuleEmail},
			messages: []string{"Field 'email' is required", "Field 'email' must be a valid email"},
		},
		{
			field:    schema.Field("contact_email", "text"),
			kinds:    []RuleKind{RuleRequired, RuleEmail},
			messages: []string{"Field 'contact_email' is required", "Field 'contact_email' must be a valid email"},
		},
		{
			field:    schema.Field("views", "int"),
			kinds:    []RuleKind{RuleRequired, RuleNumeric},
			messages: []string{"Field 'views' is required", "Field 'views' must be a number"},
		},
		{
			field:    schema.Field("price", "float"),
			kinds:    []RuleKind{RuleRequired, RuleNumeric},
			messages: []string{"Field 'price' is required", "Field 'price' must be a number"},
		},
		{
			field:    schema.Field("published", "bool"),
			kinds:    []RuleKind{RuleRequired},
			messages: []string{"Field 'published' is required"},
		},
		{
			field:    schema.Field("email_verified_at", "datetime"),
			kinds:    []RuleKind{RuleRequired},
			messages: []string{"Field 'email_verified_at' is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			rules := Rules(tt.field)
			require.Len(t, rules, len(tt.kinds))
			for i, r := range rules {
				assert.Equal(t, tt.kinds[i], r.Kind)
				assert.Equal(t, tt.messages[i], r.Message)
				assert.Equal(t, tt.field.Name, r.Field)
			}
		})
	}
}

func TestRules_Deterministic(t *testing.T) {
	f := schema.Field("title", "string")
	assert.Equal(t, Rules(f), Rules(f))
}

func TestRuleCheck(t *testing.T) {
	numeric := Rule{Kind: RuleNumeric}
	for _, v := range []string{"42", "-3", "1.5"} {
		assert.True(t, numeric.Check(v), v)
	}
	for _, v := range []string{"", "abc", "NaN", "Inf"} {
		assert.False(t, numeric.Check(v), v)
	}

	email := Rule{Kind: RuleEmail}
	assert.True(t, email.Check("a@b.co"))
	assert.False(t, email.Check("not-an-email"))
	assert.False(t, email.Check("Jane <a@b.co>"))

	required := Rule{Kind: RuleRequired}
	assert.True(t, required.Check("x"))
	assert.False(t, required.Check(""))

	max := Rule{Kind: RuleMaxLength, Limit: 3}
	assert.True(t, max.Check("abc"))
	assert.False(t, max.Check("abcd"))
}

func TestRuleValidator(t *testing.T) {
	assert.Equal(t, "IsPresent", Rule{Kind: RuleRequired}.Validator())
	assert.Equal(t, "IsNumeric", Rule{Kind: RuleNumeric}.Validator())
	assert.Equal(t, "IsEmail", Rule{Kind: RuleEmail}.Validator())
	assert.Equal(t, "MaxLength", Rule{Kind: RuleMaxLength}.Validator())
	assert.Empty(t, Rule{}.Validator())
	assert.Equal(t, "max", RuleMaxLength.String())
}

func TestValidate(t *testing.T) {
	fields := []schema.FieldSpec{
		schema.Field("title", "string"),
		schema.Field("views", "int"),
	}

	t.Run("reports one message per failing field", func(t *testing.T) {
		errs := Validate(fields, map[string]string{"views": "abc"})
		assert.Equal(t, []string{
			"Field 'title' is required",
			"Field 'views' must be a number",
		}, errs)
	})

	t.Run("accepts a valid submission", func(t *testing.T) {
		errs := Validate(fields, map[string]string{"title": "Hi", "views": "3"})
		assert.Empty(t, errs)
	})

	t.Run("enforces the length limit", func(t *testing.T) {
		long := make([]byte, MaxStringLength+1)
		for i := range long {
			long[i] = 'a'
		}
		errs := Validate(fields, map[string]string{"title": string(long), "views": "1"})
		assert.Equal(t, []string{"Field 'title' must not exceed 255 characters"}, errs)
	})
}

func TestStorageOf(t *testing.T) {
	assert.Equal(t, "string", StorageOf(schema.TypeString).String())
	assert.Equal(t, "int64", StorageOf(schema.TypeInteger).String())
	assert.Equal(t, "float64", StorageOf(schema.TypeFloat).String())
	assert.Equal(t, "bool", StorageOf(schema.TypeBoolean).String())
	assert.Equal(t, "time.Time", StorageOf(schema.TypeDateTime).String())
	assert.Equal(t, "ToTime", StorageOf(schema.TypeDateTime).Converter)
}

func TestInputOf(t *testing.T) {
	assert.Equal(t, "number", InputOf(schema.Field("views", "int")))
	assert.Equal(t, "number", InputOf(schema.Field("price", "double")))
	assert.Equal(t, "checkbox", InputOf(schema.Field("published", "bool")))
	assert.Equal(t, "date", InputOf(schema.Field("at", "date")))
	assert.Equal(t, "textarea", InputOf(schema.Field("body", "text")))
	assert.Equal(t, "text", InputOf(schema.Field("title", "string")))
	assert.Equal(t, "text", InputOf(schema.Field("misc", "uuid")))
}
