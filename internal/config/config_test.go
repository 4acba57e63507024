package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packageexpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := Load("")
	rq.NoError(err)
	rq.NoError(cfg.Validate())

	rq.Equal(50.0, cfg.Limits.MaxWeight)
	rq.Equal(50.0, cfg.Limits.MaxDimensions)
	rq.Equal(100.0, cfg.Pricing.Divisor)
	rq.Equal("warn", cfg.Log.Level)
	rq.False(cfg.Log.NoColor)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")
}

func TestLoad_YAML(t *testing.T) {
	rq := require.New(t)
	path := writeConfig(t, `
limits:
  max_weight: 70
  max_dimensions: 120
pricing:
  divisor: 250
log:
  level: debug
  no_color: true
`)

	cfg, err := Load(path)
	rq.NoError(err)
	rq.NoError(cfg.Validate())

	rq.Equal(70.0, cfg.Limits.MaxWeight)
	rq.Equal(120.0, cfg.Limits.MaxDimensions)
	rq.Equal(250.0, cfg.Pricing.Divisor)
	rq.Equal("debug", cfg.Log.Level)
	rq.True(cfg.Log.NoColor)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	rq := require.New(t)
	path := writeConfig(t, "limits:\n  max_weight: 30\n")

	cfg, err := Load(path)
	rq.NoError(err)
	rq.Equal(30.0, cfg.Limits.MaxWeight)
	rq.Equal(50.0, cfg.Limits.MaxDimensions)
	rq.Equal(100.0, cfg.Pricing.Divisor)
}

func TestLoad_EnvOverridesLogging(t *testing.T) {
	rq := require.New(t)
	path := writeConfig(t, "log:\n  level: error\n")

	t.Setenv("PACKAGE_EXPRESS_LOG_LEVEL", "info")
	t.Setenv("PACKAGE_EXPRESS_LOG_NO_COLOR", "true")

	cfg, err := Load(path)
	rq.NoError(err)
	rq.Equal("info", cfg.Log.Level)
	rq.True(cfg.Log.NoColor)
}

func TestLoad_EnvCannotChangeLimits(t *testing.T) {
	rq := require.New(t)
	chdir(t, t.TempDir())
	rq.NoError(os.WriteFile(".env", []byte("PACKAGE_EXPRESS_MAX_DIMENSIONS=5\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PACKAGE_EXPRESS_MAX_DIMENSIONS") })

	t.Setenv("PACKAGE_EXPRESS_MAX_WEIGHT", "5")
	t.Setenv("PACKAGE_EXPRESS_RATE_DIVISOR", "10")

	cfg, err := Load("")
	rq.NoError(err)
	rq.Equal(50.0, cfg.Limits.MaxWeight)
	rq.Equal(50.0, cfg.Limits.MaxDimensions)
	rq.Equal(100.0, cfg.Pricing.Divisor)
}

func TestLoad_DotEnvLogging(t *testing.T) {
	rq := require.New(t)
	chdir(t, t.TempDir())
	rq.NoError(os.WriteFile(".env", []byte("PACKAGE_EXPRESS_LOG_NO_COLOR=true\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PACKAGE_EXPRESS_LOG_NO_COLOR") })

	cfg, err := Load("")
	rq.NoError(err)
	rq.True(cfg.Log.NoColor)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("!!!\n"), 0o600))

	_, err := Load("")
	require.ErrorContains(t, err, "load .env")
}

func TestLoad_NormalizesLevel(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  string
		want string
	}{
		{"file upper case", "log:\n  level: INFO\n", "", "info"},
		{"env padded mixed case", "", " Debug ", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)
			if tt.env != "" {
				t.Setenv("PACKAGE_EXPRESS_LOG_LEVEL", tt.env)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}

			cfg, err := Load(path)
			rq.NoError(err)
			rq.Equal(tt.want, cfg.Log.Level)
			rq.NoError(cfg.Validate())
		})
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("PACKAGE_EXPRESS_LOG_NO_COLOR", "maybe")

	_, err := Load("")
	require.ErrorContains(t, err, "env.Parse")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "limits: [not, a, map\n")

	_, err := Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestLoad_UnreadablePath(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorContains(t, err, "read config")
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative weight limit", "limits:\n  max_weight: -1\n"},
		{"negative dimension limit", "limits:\n  max_dimensions: -5\n"},
		{"negative divisor", "pricing:\n  divisor: -100\n"},
		{"unknown level", "log:\n  level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			require.NoError(t, err)
			require.ErrorContains(t, cfg.Validate(), "invalid config")
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
