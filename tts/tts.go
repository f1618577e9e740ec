// Package tts synthesizes narration audio with Google Cloud Text-to-Speech.
package tts

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"github.com/TenKenZero/cronologia/config"
)

// Synthesizer wraps the Text-to-Speech service with the run's voice config.
type Synthesizer struct {
	cfg *config.Config
	svc *texttospeech.Service
}

// New creates a Synthesizer. TTS_API_KEY is used when set; otherwise the
// client falls back to application default credentials.
func New(ctx context.Context, cfg *config.Config) (*Synthesizer, error) {
	var opts []option.ClientOption
	if key := os.Getenv("TTS_API_KEY"); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init text-to-speech client: %w", err)
	}
	return &Synthesizer{cfg: cfg, svc: svc}, nil
}

// Synthesize converts text to an MP3 at outputPath using the voice for the
// configured language.
func (s *Synthesizer) Synthesize(ctx context.Context, text, outputPath string) (string, error) {
	log.Printf("[tts] Generating audio for text of length %d in %s", len(text), s.cfg.Language)

	voice := s.cfg.VoiceFor()
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
			SsmlGender:   "MALE",
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  s.cfg.TTS.SpeakingRate,
			Pitch:         0,
			VolumeGainDb:  0,
		},
	}

	resp, err := s.svc.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return "", fmt.Errorf("decode audio content: %w", err)
	}
	if err := os.WriteFile(outputPath, audio, 0644); err != nil {
		return "", fmt.Errorf("write audio %s: %w", outputPath, err)
	}

	log.Printf("[tts] Audio content written to %s", outputPath)
	return outputPath, nil
}
