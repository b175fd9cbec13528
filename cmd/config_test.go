package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"staffing/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.NotifierRedis, config.Notifier)
	assert.Equal(t, "Asia/Tokyo", config.Location().String())
	assert.Equal(t, 5, config.NotificationMaxAttempts)
	assert.Equal(t, "0 * * * * *", config.NotificationRetrySchedule)
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("HTTP_PORT=9000\nDB_NAME=from_file\n"), 0o600))
	t.Setenv("HTTP_PORT", "9100")
	// godotenv writes into the process environment; restore DB_NAME afterwards.
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	config, err := cmd.LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "9100", config.HTTPPort)
	assert.Equal(t, "from_file", config.DBName)
	assert.Contains(t, config.DSN(), "dbname=from_file")
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown notifier", "NOTIFIER", "sms"},
		{"unknown zone", "TIME_ZONE", "Mars/Olympus"},
		{"non numeric attempts", "NOTIFICATION_MAX_ATTEMPTS", "many"},
		{"zero batch", "NOTIFICATION_BATCH_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

			assert.Error(t, err)
		})
	}
}
