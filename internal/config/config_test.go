package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
flights_file: legs.txt
workers: 4
max_paths: 1000
log_level: debug
`), 0o600))
	t.Setenv("FLIGHTPLAN_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "legs.txt", cfg.FlightsFile)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 1000, cfg.MaxPaths)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "requests.txt", cfg.RequestsFile)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FLIGHTPLAN_TOP=5\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FLIGHTPLAN_TOP") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Top)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("missing.yaml")
	assert.Error(t, err)

	t.Setenv("FLIGHTPLAN_MAX_DEPTH", "deep")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--workers", "3", "--output-file", "-"}))

	cfg := Default()
	cfg.Top = 7
	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "-", cfg.OutputFile)
	assert.Equal(t, 7, cfg.Top, "unset flags keep earlier values")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown source", func(c *Config) { c.Source = "redis" }, ErrUnknownSource},
		{"bad mysql dsn", func(c *Config) { c.Source = SourceMySQL; c.DSN = "not a dsn" }, ErrInvalid},
		{"mysql without dsn", func(c *Config) { c.Source = SourceMySQL }, ErrInvalid},
		{"postgres without dsn", func(c *Config) { c.Source = SourcePostgres }, ErrInvalid},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalid},
		{"negative max paths", func(c *Config) { c.MaxPaths = -1 }, ErrInvalid},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, ErrInvalid},
		{"zero top", func(c *Config) { c.Top = 0 }, ErrInvalid},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), c.want)
		})
	}

	ok := Default()
	ok.Source = SourceMySQL
	ok.DSN = "user:pass@tcp(127.0.0.1:3306)/flights"
	assert.NoError(t, ok.Validate())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
