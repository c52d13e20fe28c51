package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, sdk.DefaultBaseURL, cfg.APIURL)
	assert.False(t, cfg.NonInteractive)
}

func TestLoad_FlagWins(t *testing.T) {
	t.Setenv("GESTORY_API_URL", "http://env.example.com/api")

	cfg, err := Load("", "http://flag.example.com/api")
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com/api", cfg.APIURL)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("GESTORY_API_URL", "http://env.example.com/api")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/api", cfg.APIURL)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gestory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://file.example.com/api\nnon_interactive: true\n"), 0644))

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "http://file.example.com/api", cfg.APIURL)
	assert.True(t, cfg.NonInteractive)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}
