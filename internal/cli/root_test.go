package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawlog/internal/app"
	"pawlog/internal/domain/pawlog"
	"pawlog/internal/platform/config"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PAWLOG_CONFIG", "STORAGE_DRIVER", "DB_PATH", "DB_DSN", "STORAGE_QUOTA_BYTES", "PAWLOG_TIMEZONE", "SEED_MOCK_FEED"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func seedSQLite(t *testing.T, path string) {
	t.Helper()
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.Path = path

	a, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Store.InitializeUser(ctx, "owner@example.com", "Owner")
	require.NoError(t, err)
	_, err = a.Store.AddDog(ctx, pawlog.DogInput{Name: "Mochi", Breed: "Maltese", Weight: 3.5, Gender: pawlog.GenderFemale})
	require.NoError(t, err)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "pawlogctl", cmd.Use)

	for _, name := range []string{"export", "import", "usage", "clear", "reminders"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for flag, def := range map[string]string{"config": "", "driver": "", "db": "", "dsn": "", "format": "text"} {
		f := cmd.PersistentFlags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
}

func TestInvalidFormatIsCommandError(t *testing.T) {
	isolateEnv(t)
	code, _, stderr := run(t, "usage", "--format", "yaml")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "invalid format")
}

func TestClearRequiresYes(t *testing.T) {
	isolateEnv(t)
	code, _, stderr := run(t, "clear")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "--yes")
}

func TestExportClearImportRoundTrip(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "pawlog.db")
	backup := filepath.Join(dir, "backup.json")
	seedSQLite(t, db)

	code, stdout, stderr := run(t, "export", "--driver", "sqlite", "--db", db, "--out", backup, "--format", "json")
	require.Equal(t, ExitSuccess, code, stderr)
	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	raw, err := os.ReadFile(backup)
	require.NoError(t, err)
	b, err := pawlog.ParseBackup(raw)
	require.NoError(t, err)
	require.Len(t, b.Dogs, 1)

	code, _, stderr = run(t, "clear", "--yes", "--driver", "sqlite", "--db", db)
	require.Equal(t, ExitSuccess, code, stderr)

	code, stdout, stderr = run(t, "import", backup, "--driver", "sqlite", "--db", db)
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "(1 dogs)")

	code, stdout, _ = run(t, "usage", "--driver", "sqlite", "--db", db, "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var usage struct {
		Data pawlog.StorageUsage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &usage))
	assert.Positive(t, usage.Data.Used)
	assert.Equal(t, int64(5*1024*1024), usage.Data.Total)
}

func TestImportInvalidBackupFails(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":"1.0.0","dogs":[]}`), 0o600))

	code, stdout, _ := run(t, "import", bad, "--format", "json")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, `"status":"error"`)
	assert.Contains(t, stdout, "invalid backup")

	code, _, _ = run(t, "import", filepath.Join(dir, "missing.json"))
	assert.Equal(t, ExitCommandError, code)
}

func TestRemindersEmpty(t *testing.T) {
	isolateEnv(t)
	code, stdout, _ := run(t, "reminders")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "no reminders for today")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
}
