package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

const (
	DefaultPort     = 8090
	DefaultDBFile   = "community-voice.db"
	DefaultAuthFile = "auth.secret"

	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AuthFile     string
}

// DriverName maps the configured database type to its driver name.
func (c Config) DriverName() string {
	if c.DatabaseType == TypePostgres {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags with environment variable fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("community-voice", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (default: local sqlite file)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AuthFile, "auth-file", "", "Path to the reset-guard auth file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = TypeSQLite
		}
	}
	if cfg.DatabaseType != TypeSQLite && cfg.DatabaseType != TypePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == TypePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		// Local-first default: a sqlite file next to the binary.
		cfg.DatabaseURL = DefaultDBFile
	}

	if cfg.AuthFile == "" {
		cfg.AuthFile = os.Getenv("AUTH_FILE")
	}
	if cfg.AuthFile == "" {
		cfg.AuthFile = DefaultAuthFile
	}

	return cfg, nil
}
