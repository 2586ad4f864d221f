package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "solid.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SOLID_CONFIG", "SOLID_LOG", "SOLID_LANGUAGE", "SOLID_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Empty(t, cfg.Source)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	p := writeConfig(t, `
log: debug
language: French
format: json
vocabularies:
  German:
    car: Auto
    bike: Fahrrad
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, p, cfg.Source)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "French", cfg.Language)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, map[string]string{"car": "Auto", "bike": "Fahrrad"}, cfg.Vocabularies["German"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLID_LANGUAGE", "Spanish")
	t.Setenv("SOLID_LOG", "info")

	cfg, err := Load(writeConfig(t, "language: French\n"))
	require.NoError(t, err)
	assert.Equal(t, "Spanish", cfg.Language)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(writeConfig(t, "language: [unterminated\n"))
	assert.Error(t, err)
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Format:       "xml",
		Language:     " ",
		Vocabularies: map[string]map[string]string{"German": {}},
	}
	err := cfg.Validate()

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.Contains(t, err.Error(), `format must be text or json, got "xml"`)
	assert.Contains(t, err.Error(), "language must not be empty")
	assert.Contains(t, err.Error(), `vocabulary "German" is empty`)
}

func TestPath(t *testing.T) {
	clearEnv(t)

	t.Setenv("SOLID_CONFIG", "/etc/solid.yaml")
	assert.Equal(t, "/etc/solid.yaml", Path())

	t.Setenv("SOLID_CONFIG", "")
	t.Chdir(t.TempDir())
	assert.Equal(t, "", Path())

	require.NoError(t, os.WriteFile(DefaultFile, []byte("{}"), 0o644))
	assert.Equal(t, DefaultFile, Path())
}
