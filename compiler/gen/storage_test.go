package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mvcgen/schema"
)

func TestNewDriver(t *testing.T) {
	for _, name := range []string{DriverMySQL, DriverPostgres, DriverSQLite} {
		d, err := NewDriver(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.String())
	}
	_, err := NewDriver("oracle")
	assert.True(t, IsConfigError(err))
}

func TestDriverQuoteIdent(t *testing.T) {
	mysql, _ := NewDriver(DriverMySQL)
	postgres, _ := NewDriver(DriverPostgres)

	assert.Equal(t, "`posts`", mysql.QuoteIdent("posts"))
	assert.Equal(t, "`a``b`", mysql.QuoteIdent("a`b"))
	assert.Equal(t, `"posts"`, postgres.QuoteIdent("posts"))
}

func TestTableSchema(t *testing.T) {
	typ := NewType(DefaultConfig(), schema.EntitySpec{
		Name: "Post",
		Fields: []schema.FieldSpec{
			schema.Field("title", "string"),
			schema.Field("body", "text"),
			schema.Field("views", "int"),
		},
	})

	t.Run("mysql", func(t *testing.T) {
		d, _ := NewDriver(DriverMySQL)
		assert.Equal(t, "CREATE TABLE IF NOT EXISTS `posts` (\n"+
			"    `id` BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,\n"+
			"    `title` VARCHAR(255) NOT NULL,\n"+
			"    `body` TEXT NOT NULL,\n"+
			"    `views` BIGINT NOT NULL\n"+
			") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;\n", d.TableSchema(typ))
	})

	t.Run("postgres", func(t *testing.T) {
		d, _ := NewDriver(DriverPostgres)
		stmt := d.TableSchema(typ)
		assert.Contains(t, stmt, `"id" BIGSERIAL PRIMARY KEY`)
		assert.Contains(t, stmt, `"views" BIGINT NOT NULL`)
		assert.Contains(t, stmt, "\n);\n")
	})

	t.Run("sqlite", func(t *testing.T) {
		d, _ := NewDriver(DriverSQLite)
		assert.Contains(t, d.TableSchema(typ), `"id" INTEGER PRIMARY KEY AUTOINCREMENT`)
	})
}

func TestGraphTableSchemas(t *testing.T) {
	spec := blogSpec()
	spec.WithAuthentication = true
	g, err := NewGraph(MustNewConfig(WithDriver(DriverSQLite)), spec)
	require.NoError(t, err)

	stmts, err := g.TableSchemas()
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], `"posts"`)
	assert.Contains(t, stmts[2], `"email" TEXT NOT NULL UNIQUE`)

	g.Driver = "oracle"
	_, err = g.TableSchemas()
	assert.Error(t, err)
}
