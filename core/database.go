package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("core: record not found")

// Database wraps a *sql.DB with the placeholder and identifier rules of its driver.
// Statements are written with ? placeholders and backtick-quoted identifiers.
type Database struct {
	db      *sql.DB
	dialect string
}

// Open opens a database for driver with the given data source name.
func Open(driver, source string) (*Database, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("core: open %s: %w", driver, err)
	}
	return OpenDB(driver, db), nil
}

// OpenConfig opens the database described by cfg.
func OpenConfig(cfg DatabaseConfig) (*Database, error) {
	source, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	return Open(cfg.Driver, source)
}

// OpenDB wraps an existing *sql.DB.
func OpenDB(driver string, db *sql.DB) *Database {
	return &Database{db: db, dialect: driver}
}

// DB returns the underlying *sql.DB.
func (d *Database) DB() *sql.DB { return d.db }

// Dialect returns the driver name.
func (d *Database) Dialect() string { return d.dialect }

// Ping verifies the connection.
func (d *Database) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

// Close closes the underlying connection pool.
func (d *Database) Close() error { return d.db.Close() }

// Rebind rewrites a statement for the driver. PostgreSQL gets numbered
// placeholders and double-quoted identifiers.
func (d *Database) Rebind(query string) string {
	if d.dialect != Postgres {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	for i := 0; i < len(query); i++ {
		switch c := query[i]; c {
		case '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		case '`':
			end := strings.IndexByte(query[i+1:], '`')
			if end < 0 {
				b.WriteString(query[i:])
				return b.String()
			}
			b.WriteString(pq.QuoteIdentifier(query[i+1 : i+1+end]))
			i += end + 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Exec executes a statement that returns no rows.
func (d *Database) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := d.db.ExecContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("core: exec: %w", err)
	}
	return res, nil
}

// Insert executes an INSERT statement and returns the generated id.
func (d *Database) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	if d.dialect == Postgres {
		var id int64
		if err := d.db.QueryRowContext(ctx, d.Rebind(query)+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("core: insert: %w", err)
		}
		return id, nil
	}
	res, err := d.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("core: insert: last insert id: %w", err)
	}
	return id, nil
}

// InsertDefault inserts a row made only of column defaults and returns
// the generated id.
func (d *Database) InsertDefault(ctx context.Context, table string) (int64, error) {
	if d.dialect == MySQL {
		return d.Insert(ctx, "INSERT INTO `"+table+"` () VALUES ()")
	}
	return d.Insert(ctx, "INSERT INTO `"+table+"` DEFAULT VALUES")
}

// FetchAll runs a query and returns every row as a column map.
func (d *Database) FetchAll(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := d.db.QueryContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("core: query: %w", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("core: query: columns: %w", err)
	}
	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("core: query: scan: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, c := range columns {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("core: query: %w", err)
	}
	return out, nil
}

// FetchOne runs a query and returns its first row, or ErrNotFound.
func (d *Database) FetchOne(ctx context.Context, query string, args ...any) (map[string]any, error) {
	rows, err := d.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Scalar runs a query returning a single integer, such as COUNT(*).
func (d *Database) Scalar(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := d.db.QueryRowContext(ctx, d.Rebind(query), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("core: scalar: %w", err)
	}
	return n, nil
}

// MySQL error number and PostgreSQL SQLSTATE for unique violations.
const (
	mysqlDuplicateEntry = 1062
	pgUniqueViolation   = "23505"
)

// IsUniqueViolation reports if err resulted from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
