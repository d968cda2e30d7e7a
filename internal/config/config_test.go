package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Data, cfg.Data)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.Match.TopN)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"llm:\n  model: gemini-2.0-pro\nmatch:\n  top_n: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.Match.TopN)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultConfig().Assets, cfg.Assets)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [not a map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: from-file\n"), 0o644))

	t.Run("GENAI_API_KEY wins over the file", func(t *testing.T) {
		t.Setenv("GENAI_API_KEY", "from-env")
		t.Setenv("GEMINI_API_KEY", "")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.LLM.APIKey)
	})

	t.Run("GEMINI_API_KEY only fills an empty key", func(t *testing.T) {
		t.Setenv("GENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "fallback")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.LLM.APIKey,
			"a key from the file must not be clobbered by the fallback variable")

		cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "fallback", cfg.LLM.APIKey)
	})

	t.Run("PAWMATCH_MODEL", func(t *testing.T) {
		t.Setenv("GENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("PAWMATCH_MODEL", "gemini-exp")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "gemini-exp", cfg.LLM.Model)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Data.BreedTraits = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Data.TraitDescriptions = ""
	assert.Error(t, cfg.Validate())
}
