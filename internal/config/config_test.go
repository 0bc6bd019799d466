package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TELEGRAM_TOKEN", "SUPABASE_URL", "SUPABASE_KEY", "POLL_TIMEOUT", "DEBUG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("env file", func(t *testing.T) {
		clearEnv(t)
		envPath := filepath.Join(t.TempDir(), ".env")
		err := os.WriteFile(envPath, []byte("TELEGRAM_TOKEN=file-token\nSUPABASE_URL=https://x.supabase.co\nSUPABASE_KEY=key\n"), 0o600)
		require.NoError(t, err)

		cfg, err := LoadConfig(nil, envPath)
		require.NoError(t, err)
		assert.Equal(t, "file-token", cfg.TelegramToken)
		assert.Equal(t, "https://x.supabase.co", cfg.SupabaseURL)
		assert.True(t, cfg.UseSupabase())
		assert.Equal(t, 60*time.Second, cfg.PollTimeout)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing env file is fine", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TELEGRAM_TOKEN", "env-token")
		cfg, err := LoadConfig(nil, filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.TelegramToken)
		assert.False(t, cfg.UseSupabase())
	})

	t.Run("flags win over env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TELEGRAM_TOKEN", "env-token")
		cfg, err := LoadConfig([]string{"--token=flag-token", "--poll-timeout=5s", "--dbg"}, filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "flag-token", cfg.TelegramToken)
		assert.Equal(t, 5*time.Second, cfg.PollTimeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("unknown flag", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig([]string{"--nope"}, filepath.Join(t.TempDir(), "absent.env"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{TelegramToken: "t", PollTimeout: time.Minute}, false},
		{"no token", Config{PollTimeout: time.Minute}, true},
		{"url without key", Config{TelegramToken: "t", SupabaseURL: "u", PollTimeout: time.Minute}, true},
		{"short timeout", Config{TelegramToken: "t", PollTimeout: time.Millisecond}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
