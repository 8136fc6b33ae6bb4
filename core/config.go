package core

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// DatabaseConfig holds connection settings read from config/database.env.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	Charset  string
}

// LoadDatabaseConfig reads the env file at path. Process environment
// variables of the same name take precedence over the file.
func LoadDatabaseConfig(path string) (DatabaseConfig, error) {
	file, err := godotenv.Read(path)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("core: read database config: %w", err)
	}
	get := func(key, def string) string {
		return firstNonEmpty(strings.TrimSpace(os.Getenv(key)), strings.TrimSpace(file[key]), def)
	}
	cfg := DatabaseConfig{
		Driver:   strings.ToLower(get("DB_DRIVER", MySQL)),
		Host:     get("DB_HOST", "localhost"),
		Port:     get("DB_PORT", ""),
		Name:     get("DB_NAME", ""),
		User:     get("DB_USER", ""),
		Password: get("DB_PASSWORD", ""),
		Charset:  get("DB_CHARSET", "utf8mb4"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort(cfg.Driver)
	}
	return cfg, nil
}

// DSN returns the data source name for the configured driver.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case MySQL, "":
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, c.Port)
		mc.DBName = c.Name
		mc.ParseTime = true
		if c.Charset != "" {
			mc.Params = map[string]string{"charset": c.Charset}
		}
		return mc.FormatDSN(), nil
	case Postgres:
		u := url.URL{
			Scheme:   "postgres",
			Host:     net.JoinHostPort(c.Host, c.Port),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		if c.User != "" {
			u.User = url.UserPassword(c.User, c.Password)
		}
		return u.String(), nil
	case SQLite:
		if c.Name == "" {
			return "", fmt.Errorf("core: sqlite requires DB_NAME")
		}
		return c.Name, nil
	default:
		return "", fmt.Errorf("core: unsupported DB_DRIVER %q", c.Driver)
	}
}

func defaultPort(driver string) string {
	switch driver {
	case Postgres:
		return "5432"
	case SQLite:
		return ""
	default:
		return "3306"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
