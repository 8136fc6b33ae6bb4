// Package schema provides the in-memory description of a project to generate.
//
// A project is a name, an ordered list of entities and two feature flags. Each
// entity is a name plus an ordered list of typed fields:
//
//	spec := schema.ProjectSpec{
//	    ProjectName: "blog",
//	    Entities: []schema.EntitySpec{
//	        {
//	            Name: "Post",
//	            Fields: []schema.FieldSpec{
//	                schema.Field("title", "string"),
//	                schema.Field("views", "int"),
//	            },
//	        },
//	    },
//	    WithPresentationViews: true,
//	}
//
// # Field Types
//
// Field types form a closed set: String, Integer, Float, Boolean and DateTime.
// Declared type strings are matched case-insensitively against the accepted
// aliases. Unrecognized type strings map to String; they are never rejected:
//
//	schema.ParseFieldType("int")      // Integer
//	schema.ParseFieldType("double")   // Float
//	schema.ParseFieldType("uuid")     // String
//
// # Spec Files
//
// A ProjectSpec can also be loaded from YAML:
//
//	project: blog
//	views: true
//	auth: false
//	entities:
//	  - name: Post
//	    fields:
//	      - {name: title, type: string}
//	      - {name: views, type: int}
//
// Order is significant everywhere: it determines the emitted property, column
// and form-field order of the generated artifacts.
package schema
