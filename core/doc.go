// Package core is the runtime shared by every generated project.
//
// Its sources are copied verbatim into src/Core of the generated project,
// so the package depends only on the standard library and the drivers and
// helpers listed in the generated go.mod. It provides:
//
//   - Router: ordered route table with {id} and {name} parameters and
//     _method override of POST.
//   - Record: an ordered JSON object used by the entity serializers.
//   - ToString, ToInt64, ToFloat64, ToBool and ToTime: hydration converters.
//   - IsPresent, IsNumeric, IsEmail and MaxLength: form validators.
//   - Database: a *sql.DB wrapper for mysql, postgres and sqlite.
//   - SessionStore, Gate and the password helpers used by authentication.
//   - Views: html/template rendering with a shared layout.
package core
