package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/TenKenZero/cronologia/types"
)

// imagesPerStage is load-bearing: per-image duration math divides the clip
// length by the image count, so every clip gets exactly this many images.
const imagesPerStage = 3

// Silence-fallback sizing for failed narration synthesis.
const (
	narrationWPM      = 150.0
	minSilenceSeconds = 3.0
)

// processStage runs one stage through script, audio, prompts, images and
// clip synthesis. Every failure degrades to a fallback for that step only;
// the returned StageClip always carries the intended clip path, which may
// not exist on disk if synthesis itself failed (the concatenator skips it).
func (p *Pipeline) processStage(ctx context.Context, topic string, stage types.Stage, allStages []types.Stage, exec *types.ExecutionContext) types.StageClip {
	log.Printf("[pipeline] Processing stage %d: %s", stage.Order, stage.Name)

	script := p.gen.GenerateStageScript(ctx, topic, stage, allStages)

	audioPath := exec.StageAudioPath(stage.Order)
	if _, err := p.tts.Synthesize(ctx, script, audioPath); err != nil || !fileExists(audioPath) {
		log.Printf("[pipeline] Stage %d narration failed (%v) — substituting silence", stage.Order, err)
		if sErr := p.gfx.SilentAudio(audioPath, silenceSeconds(script)); sErr != nil {
			log.Printf("[pipeline] Stage %d silence track failed: %v", stage.Order, sErr)
		}
	}

	prompts := normalizeImagePrompts(topic, stage, p.gen.GenerateImagePrompts(ctx, topic, stage, allStages, script))
	images := p.gen.GenerateImages(ctx, prompts, exec.ImageDir, exec.StageImagePrefix(stage.Order))

	// Under-delivery replaces the whole set, not just the missing slots, so
	// the clip never mixes generated and placeholder imagery inconsistently.
	if len(images) < imagesPerStage {
		log.Printf("[pipeline] Insufficient images generated for stage %d. Creating placeholders.", stage.Order)
		images = images[:0]
		for n := 1; n <= imagesPerStage; n++ {
			path := exec.StageImagePath(stage.Order, n)
			if pErr := p.gfx.Placeholder(path); pErr != nil {
				log.Printf("[pipeline] Stage %d placeholder %d failed: %v", stage.Order, n, pErr)
			}
			images = append(images, path)
		}
	}

	clipPath := exec.StageClipPath(stage.Order)
	if _, err := p.gfx.Clip(ctx, images, audioPath, stage.Name, clipPath); err != nil {
		log.Printf("[pipeline] Stage %d clip synthesis failed: %v", stage.Order, err)
	} else {
		log.Printf("[pipeline] Created video clip for stage %d: %s", stage.Order, clipPath)
	}

	return types.StageClip{Order: stage.Order, Path: clipPath}
}

// silenceSeconds estimates a silence-track length from the script's word
// count at a natural narration pace.
func silenceSeconds(script string) float64 {
	seconds := float64(len(strings.Fields(script))) / narrationWPM * 60.0
	if seconds < minSilenceSeconds {
		return minSilenceSeconds
	}
	return seconds
}

// normalizeImagePrompts forces the prompt count to exactly imagesPerStage:
// excess prompts are truncated and shortfalls are padded with generic
// prompts derived from the stage.
func normalizeImagePrompts(topic string, stage types.Stage, prompts []string) []string {
	return normalizePrompts(prompts, func() string {
		return fmt.Sprintf("Historical illustration of %s during the %s period.", topic, stage.Name)
	})
}

// normalizeCoverPrompts is the cover-image counterpart.
func normalizeCoverPrompts(topic string, prompts []string) []string {
	return normalizePrompts(prompts, func() string {
		return fmt.Sprintf("Historical illustration of the evolution of %s through time, showing key transformations in a visually striking composition.", topic)
	})
}

func normalizePrompts(prompts []string, filler func() string) []string {
	out := make([]string, 0, imagesPerStage)
	for _, p := range prompts {
		if len(out) == imagesPerStage {
			break
		}
		out = append(out, p)
	}
	for len(out) < imagesPerStage {
		out = append(out, filler())
	}
	return out
}
