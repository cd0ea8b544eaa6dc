package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyboard/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "LISTEN_ADDR", "LOG_LEVEL", "ENV",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
		"SEED_FILE", "SEED_USERS", "SEED_TASKS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/duty.db")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/duty.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Seed.Users)
	assert.Empty(t, cfg.Seed.Tasks)
}

func TestLoadFromEnv_DBPathRequired(t *testing.T) {
	clearEnv(t)

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH")
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/duty.db")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("RATE_LIMIT_RPS", "10")
	t.Setenv("RATE_LIMIT_BURST", "20")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_InvalidRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/duty.db")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_SeedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - alice\n  - bob\ntasks:\n  - dishes\n"), 0o600))
	t.Setenv("DB_PATH", "/tmp/duty.db")
	t.Setenv("SEED_FILE", path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, domain.SeedLists{Users: []string{"alice", "bob"}, Tasks: []string{"dishes"}}, cfg.Seed)
}

func TestLoadFromEnv_SeedEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: [alice]\ntasks: [dishes]\n"), 0o600))
	t.Setenv("DB_PATH", "/tmp/duty.db")
	t.Setenv("SEED_FILE", path)
	t.Setenv("SEED_USERS", "carol,dave")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "dave"}, cfg.Seed.Users)
	assert.Equal(t, []string{"dishes"}, cfg.Seed.Tasks, "file values kept where no env override")
}

func TestLoadFromEnv_SeedFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/duty.db")
	t.Setenv("SEED_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), "level %q", in)
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "PRODUCTION"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{}).IsProduction())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nDB_PATH=/tmp/duty.db\nLISTEN_ADDR=\":7070\"\n\nLOG_LEVEL='debug'\nnot a pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/tmp/duty.db", os.Getenv("DB_PATH"))
	assert.Equal(t, ":7070", os.Getenv("LISTEN_ADDR"), "double quotes stripped")
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"), "single quotes stripped")
}

func TestLoadDotEnv_ExistingEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/keep/this.db")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/tmp/other.db\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/keep/this.db", os.Getenv("DB_PATH"))
}

func TestLoadDotEnv_MissingFileIsNoop(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
