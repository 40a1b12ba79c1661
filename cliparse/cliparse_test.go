package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "AUTH_FILE"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != TypeSQLite {
		t.Errorf("Expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != DefaultDBFile {
		t.Errorf("Expected %q, got %q", DefaultDBFile, cfg.DatabaseURL)
	}
	if cfg.AuthFile != DefaultAuthFile {
		t.Errorf("Expected %q, got %q", DefaultAuthFile, cfg.AuthFile)
	}
	if cfg.DriverName() != "sqlite" {
		t.Errorf("Expected sqlite driver, got %q", cfg.DriverName())
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{
		"-p", "9001",
		"-t", "postgres",
		"-d", "postgres://localhost/votes",
		"-auth-file", "/etc/community-voice/auth",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9001 {
		t.Errorf("Expected port 9001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != TypePostgres {
		t.Errorf("Expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/votes" {
		t.Errorf("Unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.AuthFile != "/etc/community-voice/auth" {
		t.Errorf("Unexpected auth file %q", cfg.AuthFile)
	}
	if cfg.DriverName() != "postgres" {
		t.Errorf("Expected postgres driver, got %q", cfg.DriverName())
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://env/votes")
	t.Setenv("AUTH_FILE", "env.secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("Expected port from env, got %d", cfg.Port)
	}
	if cfg.DatabaseType != TypePostgres || cfg.DatabaseURL != "postgres://env/votes" {
		t.Errorf("Expected env database config, got %+v", cfg)
	}
	if cfg.AuthFile != "env.secret" {
		t.Errorf("Expected env auth file, got %q", cfg.AuthFile)
	}
}

func TestParseFlagsFlagsBeatEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")

	cfg, err := ParseFlags([]string{"-p", "9001"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9001 {
		t.Errorf("Expected flag to win over env, got %d", cfg.Port)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "postgres without url", args: []string{"-t", "postgres"}},
		{name: "unknown database type", args: []string{"-t", "mysql"}},
		{name: "invalid port env", env: map[string]string{"PORT": "not-a-number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
