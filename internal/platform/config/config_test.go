package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	require.Equal(t, "phone", cfg.Source.PhoneColumn)
	require.Equal(t, "grouper.session", cfg.Telegram.SessionPath)
	require.Equal(t, 2*time.Second, cfg.Pacing.BetweenAdds)
	require.Equal(t, 25, cfg.Pacing.BatchEvery)
	require.Equal(t, 30*time.Second, cfg.Pacing.BatchSleep)
	require.Equal(t, "add_members_log.csv", cfg.Journal.Path)
	require.Equal(t, "03:00", cfg.Schedule.At)
	require.Contains(t, cfg.DM.Template, "{link}")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
telegram:
  api_id: 12345
  api_hash: abc
group:
  ref: "@mygroup"
pacing:
  between_adds: 5s
  batch_every: 10
source:
  excel_path: roster.xlsx
  default_region: US
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	require.Equal(t, 12345, cfg.Telegram.APIID)
	require.Equal(t, "@mygroup", cfg.Group.Ref)
	require.Equal(t, 5*time.Second, cfg.Pacing.BetweenAdds)
	require.Equal(t, 10, cfg.Pacing.BatchEvery)
	// Untouched keys keep their defaults.
	require.Equal(t, 2*time.Second, cfg.Pacing.BetweenDMs)
	require.Equal(t, "US", cfg.Source.DefaultRegion)
}

func TestLoadMissingYAMLFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
group:
  ref: from-file
`)
	t.Setenv("GROUPER_GROUP_REF", "from-env")
	t.Setenv("GROUPER_PACING_BATCH_EVERY", "7")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	require.Equal(t, "from-env", cfg.Group.Ref)
	require.Equal(t, 7, cfg.Pacing.BatchEvery)
}

func TestEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "GROUPER_TELEGRAM_API_HASH=fromdotenv\nGROUPER_SOURCE_EXCEL_URL=https://example.com/r.xlsx\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)

	require.Equal(t, "fromdotenv", cfg.Telegram.APIHash)
	require.Equal(t, "https://example.com/r.xlsx", cfg.Source.ExcelURL)
}

func TestEnvFileMissingIsSkipped(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestEnvKeyMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GROUPER_TELEGRAM_API_ID", "telegram.api_id"},
		{"GROUPER_PACING_BATCH_EVERY", "pacing.batch_every"},
		{"GROUPER_GROUP_REF", "group.ref"},
		{"GROUPER_JOURNAL_POSTGRES_DSN", "journal.postgres_dsn"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, envKey(tt.in))
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Telegram.APIID = 1
	valid.Telegram.APIHash = "h"
	valid.Group.Ref = "@g"
	valid.Source.ExcelPath = "r.xlsx"

	t.Run("accepts a complete config", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("requires api credentials", func(t *testing.T) {
		cfg := valid
		cfg.Telegram.APIHash = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("requires a group reference", func(t *testing.T) {
		cfg := valid
		cfg.Group.Ref = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("requires a roster source", func(t *testing.T) {
		cfg := valid
		cfg.Source.ExcelPath = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects a malformed daily time", func(t *testing.T) {
		cfg := valid
		cfg.Schedule.Daily = true
		cfg.Schedule.At = "25:99"
		require.Error(t, cfg.Validate())
	})
}
