package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_LoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()
	envFile := filepath.Join(tmp, ".env.local")
	require.NoError(t, os.WriteFile(envFile, []byte("CAMPUSKIT_TEST_ENV_LOAD=ok\n"), 0o644))

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	_ = os.Unsetenv("CAMPUSKIT_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "ok", os.Getenv("CAMPUSKIT_TEST_ENV_LOAD"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestValidateRLS(t *testing.T) {
	c := &Configuration{RLSEnforce: " Enforce ", Database: DatabaseOptions{User: "campuskit"}}
	require.NoError(t, c.validateRLS())
	require.Equal(t, "enforce", c.RLSEnforce)

	c = &Configuration{RLSEnforce: "enforce", Database: DatabaseOptions{User: "postgres"}}
	require.Error(t, c.validateRLS())

	c = &Configuration{RLSEnforce: "bogus"}
	require.Error(t, c.validateRLS())

	c = &Configuration{}
	require.NoError(t, c.validateRLS())
	require.Equal(t, "disabled", c.RLSEnforce)
}

func TestLogrusLogLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, (&Configuration{LogLevel: "debug"}).LogrusLogLevel())
	require.Equal(t, logrus.WarnLevel, (&Configuration{LogLevel: "warn"}).LogrusLogLevel())
	require.Equal(t, logrus.PanicLevel, (&Configuration{LogLevel: "silent"}).LogrusLogLevel())
	require.Equal(t, logrus.ErrorLevel, (&Configuration{LogLevel: "unknown"}).LogrusLogLevel())
}
