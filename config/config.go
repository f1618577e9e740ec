package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every knob for one run. Language and voice selection live
// here and are threaded explicitly into the generators, so two runs with
// different languages can coexist in one process.
type Config struct {
	Language string         `yaml:"language"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	TTS      TTSConfig      `yaml:"tts"`
	Video    VideoConfig    `yaml:"video"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Paths    PathsConfig    `yaml:"paths"`

	// Debug is set from the CLI flag, not the file.
	Debug bool `yaml:"-"`
}

type GeminiConfig struct {
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
}

type TTSConfig struct {
	SpeakingRate float64          `yaml:"speaking_rate"`
	Voices       map[string]Voice `yaml:"voices"`
}

// Voice selects a named voice within a language.
type Voice struct {
	Name         string `yaml:"name"`
	LanguageCode string `yaml:"language_code"`
}

type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
	// PadSec is the silence inserted before and after narration in each clip.
	PadSec float64 `yaml:"pad_sec"`
	// IntroSec is the static title card duration when intro audio is unavailable.
	IntroSec float64 `yaml:"intro_sec"`
}

type PipelineConfig struct {
	// Workers bounds concurrent stage processing. 1 means sequential.
	Workers int `yaml:"workers"`
}

type PathsConfig struct {
	Media string `yaml:"media"`
}

var supportedLanguages = map[string]bool{
	"en": true,
	"es": true,
}

// Load reads the YAML config file and applies defaults. A missing file is
// not an error: every field has a usable default.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if !supportedLanguages[cfg.Language] {
		log.Printf("[config] Unsupported language %q. Defaulting to English.", cfg.Language)
		cfg.Language = "en"
	}
	if cfg.Pipeline.Workers < 1 {
		cfg.Pipeline.Workers = 1
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Language: "en",
		Gemini: GeminiConfig{
			TextModel:  "gemini-2.0-pro-exp-02-05",
			ImageModel: "imagen-3.0-generate-002",
		},
		TTS: TTSConfig{
			SpeakingRate: 1.0,
			Voices: map[string]Voice{
				"en": {Name: "en-US-Chirp-HD-D", LanguageCode: "en-US"},
				"es": {Name: "es-US-Chirp-HD-D", LanguageCode: "es-US"},
			},
		},
		Video: VideoConfig{
			Width:    1080,
			Height:   1920,
			FPS:      24,
			PadSec:   0.5,
			IntroSec: 2.0,
		},
		Pipeline: PipelineConfig{Workers: 1},
		Paths:    PathsConfig{Media: "media"},
	}
}

// VoiceFor returns the configured voice for the active language, falling
// back to the English voice when the language has no entry.
func (c *Config) VoiceFor() Voice {
	if v, ok := c.TTS.Voices[c.Language]; ok {
		return v
	}
	return Voice{Name: "en-US-Chirp-HD-D", LanguageCode: "en-US"}
}
