package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/alfa2267/community-voice/auth"
	"github.com/alfa2267/community-voice/cliparse"
	"github.com/alfa2267/community-voice/commands"
	"github.com/alfa2267/community-voice/db"
	"github.com/alfa2267/community-voice/middleware"
	"github.com/alfa2267/community-voice/router"
	"github.com/alfa2267/community-voice/store"
)

func main() {
	var err error

	// Subcommands
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		commands.HashPassword(os.Args[2:])
		return
	}

	// Load .env if present (optional in production)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open database (sqlite file by default, postgres optional)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == cliparse.TypeSQLite {
		// In-process sqlite: a single writer avoids SQLITE_BUSY.
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema and seed the fixed polls, items and events
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if err := db.Seed(dbConn); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", cfg.DatabaseType)

	// Load reset-guard credentials
	creds, err := auth.LoadCredentials(cfg.AuthFile)
	if err != nil {
		slog.Error("failed to load auth file", "error", err, "path", cfg.AuthFile)
		os.Exit(1)
	}
	if creds == nil {
		slog.Warn("NO AUTH FILE FOUND - POST /reset is unprotected. Local development only!",
			"expected", cfg.AuthFile, "hint", "run: community-voice hash-password")
	} else {
		slog.Info("reset guard enabled", "user", creds.User)
	}

	// Create router
	st := store.New(dbConn)
	mux := router.NewRouter(st, creds)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
