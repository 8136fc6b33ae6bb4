package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/mvcgen/schema"
)

// Supported database drivers of the generated projects.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Driver describes the SQL dialect used for config/schema.sql.
type Driver struct {
	Name string
	// Quote is the identifier quote character.
	Quote string
	// ID is the column definition of the identifier.
	ID string
	// Types maps field types to column types.
	Types map[schema.FieldType]string
	// Text is the column type of long text fields.
	Text string
	// Suffix is appended after the closing parenthesis of CREATE TABLE.
	Suffix string
}

var drivers = []*Driver{
	{
		Name:  DriverMySQL,
		Quote: "`",
		ID:    "BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY",
		Types: map[schema.FieldType]string{
			schema.TypeString:   "VARCHAR(255)",
			schema.TypeInteger:  "BIGINT",
			schema.TypeFloat:    "DOUBLE",
			schema.TypeBoolean:  "TINYINT(1)",
			schema.TypeDateTime: "DATETIME",
		},
		Text:   "TEXT",
		Suffix: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	},
	{
		Name:  DriverPostgres,
		Quote: `"`,
		ID:    "BIGSERIAL PRIMARY KEY",
		Types: map[schema.FieldType]string{
			schema.TypeString:   "VARCHAR(255)",
			schema.TypeInteger:  "BIGINT",
			schema.TypeFloat:    "DOUBLE PRECISION",
			schema.TypeBoolean:  "BOOLEAN",
			schema.TypeDateTime: "TIMESTAMP",
		},
		Text: "TEXT",
	},
	{
		Name:  DriverSQLite,
		Quote: `"`,
		ID:    "INTEGER PRIMARY KEY AUTOINCREMENT",
		Types: map[schema.FieldType]string{
			schema.TypeString:   "TEXT",
			schema.TypeInteger:  "INTEGER",
			schema.TypeFloat:    "REAL",
			schema.TypeBoolean:  "BOOLEAN",
			schema.TypeDateTime: "DATETIME",
		},
		Text: "TEXT",
	},
}

// NewDriver returns the driver with the given name.
func NewDriver(name string) (*Driver, error) {
	for _, d := range drivers {
		if name == d.Name {
			return d, nil
		}
	}
	return nil, NewConfigError("Driver", name, "unsupported driver; use mysql, postgres or sqlite")
}

// String implements the fmt.Stringer interface.
func (d *Driver) String() string { return d.Name }

// QuoteIdent quotes a table or column name.
func (d *Driver) QuoteIdent(s string) string {
	return d.Quote + strings.ReplaceAll(s, d.Quote, d.Quote+d.Quote) + d.Quote
}

// ColumnType returns the column type of a field.
func (d *Driver) ColumnType(f *Field) string {
	if f.Spec().IsText() {
		return d.Text
	}
	return d.Types[f.Type]
}

// TableSchema returns the CREATE TABLE statement of the type.
func (d *Driver) TableSchema(t *Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", d.QuoteIdent(t.Table()))
	fmt.Fprintf(&b, "    %s %s", d.QuoteIdent("id"), d.ID)
	for _, f := range t.Fields {
		fmt.Fprintf(&b, ",\n    %s %s NOT NULL", d.QuoteIdent(f.Names.Column), d.ColumnType(f))
		if f.Unique {
			b.WriteString(" UNIQUE")
		}
	}
	b.WriteString("\n)")
	b.WriteString(d.Suffix)
	b.WriteString(";\n")
	return b.String()
}

// TableSchemas returns the CREATE TABLE statements of every type of the
// graph, in generation order.
func (g *Graph) TableSchemas() ([]string, error) {
	d, err := NewDriver(g.driver())
	if err != nil {
		return nil, err
	}
	types := g.Types()
	stmts := make([]string, 0, len(types))
	for _, t := range types {
		stmts = append(stmts, d.TableSchema(t))
	}
	return stmts, nil
}

func (g *Graph) driver() string {
	if g.Config == nil || g.Config.Driver == "" {
		return DriverMySQL
	}
	return g.Config.Driver
}
