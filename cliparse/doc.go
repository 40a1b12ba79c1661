/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8090)
  - DatabaseURL: Connection string (default: local sqlite file community-voice.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AuthFile: Path to the reset-guard auth file (default: auth.secret)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-auth-file  Auth file path

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	AUTH_FILE     → -auth-file

CLI flags take precedence over environment variables. A .env file in
the working directory is loaded by main via godotenv before parsing.

# Validation

Running against sqlite needs no configuration at all; only postgres
requires an explicit DATABASE_URL.
*/
package cliparse
