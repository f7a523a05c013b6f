package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "db"
port = 5432
user = "scheduler"
password = "from-file"
dbname = "scheduling"

[scheduling]
timezone = "Europe/Paris"
horizon_days = 30

[auth]
jwt_secret = "file-secret"

[mail]
provider = "sendgrid"
from_email = "noreply@example.com"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Scheduling.HorizonDays)
	// значения по умолчанию
	assert.Equal(t, 15, cfg.Scheduling.StepMinutes)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "0 * * * *", cfg.Reminders.Schedule)
	assert.Contains(t, cfg.Database.DSN(), "dbname=scheduling")
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad timezone", content: "[auth]\njwt_secret = \"x\"\n[scheduling]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "zero step", content: "[auth]\njwt_secret = \"x\"\n[scheduling]\nstep_minutes = -15\n"},
		{name: "unknown provider", content: "[auth]\njwt_secret = \"x\"\n[mail]\nprovider = \"pigeon\"\n"},
		{name: "missing secret", content: "[server]\nhttp_port = 8080\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
