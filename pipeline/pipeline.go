// Package pipeline drives the topic-to-video workflow: timeline generation,
// per-stage script/audio/image/clip production, the intro clip, and the
// final concatenation.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/TenKenZero/cronologia/config"
	"github.com/TenKenZero/cronologia/types"
)

// ContentGenerator produces the timeline, narration scripts, image prompts
// and images. Implementations never return nil timelines or empty scripts:
// they degrade to deterministic fallbacks internally.
type ContentGenerator interface {
	GenerateTimeline(ctx context.Context, topic string) *types.Timeline
	GenerateStageScript(ctx context.Context, topic string, stage types.Stage, allStages []types.Stage) string
	GenerateIntroScript(ctx context.Context, topic string, allStages []types.Stage) string
	GenerateImagePrompts(ctx context.Context, topic string, stage types.Stage, allStages []types.Stage, script string) []string
	GenerateCoverPrompts(ctx context.Context, topic string, allStages []types.Stage) []string
	GenerateImages(ctx context.Context, prompts []string, outputDir, prefix string) []string
	GenerateCoverImages(ctx context.Context, prompts []string, outputDir, prefix string) []string
}

// SpeechSynthesizer turns narration text into an audio file.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, outputPath string) (string, error)
}

// Assembler is the media assembly engine.
type Assembler interface {
	Clip(ctx context.Context, images []string, audioPath, caption, outputPath string) (string, error)
	TitleCard(ctx context.Context, title, coverPath, outputPath string) (string, error)
	Concatenate(ctx context.Context, clipPaths []string, outputPath string) (string, error)
	Placeholder(path string) error
	SilentAudio(path string, seconds float64) error
}

// Pipeline coordinates one full run.
type Pipeline struct {
	cfg *config.Config
	gen ContentGenerator
	tts SpeechSynthesizer
	gfx Assembler
}

// New wires the pipeline to its collaborators.
func New(cfg *config.Config, gen ContentGenerator, tts SpeechSynthesizer, gfx Assembler) *Pipeline {
	return &Pipeline{cfg: cfg, gen: gen, tts: tts, gfx: gfx}
}

// Run generates the timeline video for a topic and returns the final path.
// Sub-steps degrade locally (placeholders, silence tracks, skipped clips);
// only orchestration failures — of which concatenating zero clips is the
// significant one — propagate.
func (p *Pipeline) Run(ctx context.Context, topic string, exec *types.ExecutionContext) (string, error) {
	log.Printf("[pipeline] Generating timeline video for topic: %s", topic)

	timeline := p.gen.GenerateTimeline(ctx, topic)
	log.Printf("[pipeline] Timeline: %q (%d stages)", timeline.Title, len(timeline.Stages))

	clips, err := p.processStages(ctx, topic, timeline, exec)
	if err != nil {
		return "", err
	}

	// Order must hold regardless of completion order.
	sort.Slice(clips, func(i, j int) bool { return clips[i].Order < clips[j].Order })

	introPath := p.buildIntro(ctx, topic, timeline, exec)

	allClips := make([]string, 0, len(clips)+1)
	allClips = append(allClips, introPath)
	for _, c := range clips {
		allClips = append(allClips, c.Path)
	}

	finalPath, err := p.gfx.Concatenate(ctx, allClips, exec.FinalPath())
	if err != nil {
		return "", fmt.Errorf("combine video clips: %w", err)
	}

	log.Printf("[pipeline] Final video created at: %s", finalPath)
	return finalPath, nil
}

// processStages runs the stage processor over every stage, sequentially or,
// when configured, through a bounded worker pool. Each stage's working set
// is disjoint (paths are namespaced by execution id and order), so stages
// are safe to run concurrently.
func (p *Pipeline) processStages(ctx context.Context, topic string, timeline *types.Timeline, exec *types.ExecutionContext) ([]types.StageClip, error) {
	clips := make([]types.StageClip, len(timeline.Stages))

	if p.cfg.Pipeline.Workers <= 1 {
		for i, stage := range timeline.Stages {
			clips[i] = p.processStage(ctx, topic, stage, timeline.Stages, exec)
		}
		return clips, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Pipeline.Workers)
	for i, stage := range timeline.Stages {
		i, stage := i, stage
		g.Go(func() error {
			clips[i] = p.processStage(gctx, topic, stage, timeline.Stages, exec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return clips, nil
}

// buildIntro produces the intro clip: narrated over generated cover images
// when intro audio can be synthesized, otherwise a static title card. It
// always returns the intro clip path; the concatenator skips it if the
// file never materialized.
func (p *Pipeline) buildIntro(ctx context.Context, topic string, timeline *types.Timeline, exec *types.ExecutionContext) string {
	outPath := exec.IntroClipPath()

	introScript := p.gen.GenerateIntroScript(ctx, topic, timeline.Stages)
	audioPath, err := p.tts.Synthesize(ctx, introScript, exec.IntroAudioPath())
	if err != nil || !fileExists(audioPath) {
		log.Printf("[pipeline] Intro narration unavailable (%v) — using static title card", err)
		if _, tErr := p.gfx.TitleCard(ctx, timeline.Title, exec.CoverImagePath(1), outPath); tErr != nil {
			log.Printf("[pipeline] Title card failed: %v", tErr)
		}
		return outPath
	}

	prompts := normalizeCoverPrompts(topic, p.gen.GenerateCoverPrompts(ctx, topic, timeline.Stages))
	covers := p.gen.GenerateCoverImages(ctx, prompts, exec.ImageDir, exec.ID)
	if len(covers) < imagesPerStage {
		log.Printf("[pipeline] Insufficient cover images generated. Creating placeholders.")
		covers = covers[:0]
		for n := 1; n <= imagesPerStage; n++ {
			path := exec.CoverImagePath(n)
			if pErr := p.gfx.Placeholder(path); pErr != nil {
				log.Printf("[pipeline] Cover placeholder %d failed: %v", n, pErr)
			}
			covers = append(covers, path)
		}
	}

	if _, cErr := p.gfx.Clip(ctx, covers, audioPath, timeline.Title, outPath); cErr != nil {
		log.Printf("[pipeline] Intro clip failed: %v", cErr)
	}
	return outPath
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
