package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TenKenZero/cronologia/config"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields full defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "gemini-2.0-pro-exp-02-05", cfg.Gemini.TextModel)
		assert.Equal(t, "imagen-3.0-generate-002", cfg.Gemini.ImageModel)
		assert.Equal(t, 1080, cfg.Video.Width)
		assert.Equal(t, 1920, cfg.Video.Height)
		assert.Equal(t, 24, cfg.Video.FPS)
		assert.Equal(t, 0.5, cfg.Video.PadSec)
		assert.Equal(t, 2.0, cfg.Video.IntroSec)
		assert.Equal(t, 1, cfg.Pipeline.Workers)
		assert.Equal(t, "media", cfg.Paths.Media)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "language: es\nvideo:\n  width: 720\n  height: 1280\n  fps: 30\n  pad_sec: 0.5\n  intro_sec: 2.0\npipeline:\n  workers: 4\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, 720, cfg.Video.Width)
		assert.Equal(t, 30, cfg.Video.FPS)
		assert.Equal(t, 4, cfg.Pipeline.Workers)
	})

	t.Run("unsupported language falls back to English", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("language: fr\n"), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("garbage yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("language: [unclosed"), 0644))

		_, err := config.Load(path)
		assert.Error(t, err)
	})
}

func TestVoiceFor(t *testing.T) {
	t.Run("selects the language's voice", func(t *testing.T) {
		cfg, err := config.Load("absent.yaml")
		require.NoError(t, err)

		v := cfg.VoiceFor()
		assert.Equal(t, "en-US-Chirp-HD-D", v.Name)
		assert.Equal(t, "en-US", v.LanguageCode)

		cfg.Language = "es"
		v = cfg.VoiceFor()
		assert.Equal(t, "es-US-Chirp-HD-D", v.Name)
		assert.Equal(t, "es-US", v.LanguageCode)
	})

	t.Run("unknown language uses the English voice", func(t *testing.T) {
		cfg, err := config.Load("absent.yaml")
		require.NoError(t, err)
		cfg.Language = "de"

		v := cfg.VoiceFor()
		assert.Equal(t, "en-US", v.LanguageCode)
	})
}
