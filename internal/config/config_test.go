package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/gofhir/converter"
)

// chdir keeps a stray fhirconv.yaml out of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "R4", cfg.From)
	assert.Equal(t, "R5", cfg.To)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Zero(t, cfg.Workers)

	from, to, err := cfg.Versions()
	require.NoError(t, err)
	assert.Equal(t, fc.R4, from)
	assert.Equal(t, fc.R5, to)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conv.yaml")
	require.NoError(t, os.WriteFile(file, []byte("workers: 3\noutput: json\ntimeout: 2s\nlog-level: info\n"), 0o644))

	t.Setenv("FHIRCONV_WORKERS", "5")
	t.Setenv("FHIRCONV_STRICT_PARSE", "true")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	flags.String("where", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "yaml", "--where", "active"}))

	cfg, err := Load(New(), file, flags)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Workers, "environment beats file")
	assert.True(t, cfg.StrictParse)
	assert.Equal(t, OutputYAML, cfg.Output, "flag beats file")
	assert.Equal(t, "active", cfg.Where)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(New(), "/does/not/exist.yaml", nil)
	assert.Error(t, err)

	tests := []struct {
		key, value string
	}{
		{"FHIRCONV_FROM", "R3"},
		{"FHIRCONV_OUTPUT", "xml"},
		{"FHIRCONV_LOG_LEVEL", "loud"},
		{"FHIRCONV_LOG_FORMAT", "logfmt"},
		{"FHIRCONV_MAX_FAILURES", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(New(), "", nil)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{StrictParse: true, Where: "active", Workers: 2, Timeout: time.Second, MaxFailures: 4, LogLevel: "debug"}

	opts := fc.DefaultOptions().Apply(cfg.Options()...)
	assert.True(t, opts.StrictParse)
	assert.Equal(t, "active", opts.Filter)
	assert.Equal(t, 2, opts.WorkerCount)
	assert.Equal(t, time.Second, opts.JobTimeout)
	assert.Equal(t, 4, opts.MaxFailures)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info", LogFormat: "json"}

	cfg.Logger(&buf).Info("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
