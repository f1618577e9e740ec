package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/TenKenZero/cronologia/types"
)

// GenerateTimeline asks the text model for a chronological timeline of the
// topic. It always returns a usable Timeline: any failure, malformed JSON
// or empty stage list degrades to a minimal single-stage fallback.
func (c *Client) GenerateTimeline(ctx context.Context, topic string) *types.Timeline {
	log.Printf("[gemini] Generating timeline stages for topic: %s (%s)", topic, c.cfg.Language)

	raw, err := c.generateText(ctx, timelinePrompt(c.cfg.Language, topic))
	if err != nil {
		log.Printf("[gemini] Timeline generation failed: %v — using fallback timeline", err)
		return fallbackTimeline(topic)
	}

	timeline, err := parseTimeline(raw)
	if err != nil {
		log.Printf("[gemini] Timeline parse failed: %v — using fallback timeline", err)
		return fallbackTimeline(topic)
	}

	log.Printf("[gemini] Timeline %q with %d stages", timeline.Title, len(timeline.Stages))
	return timeline
}

func parseTimeline(raw string) (*types.Timeline, error) {
	var timeline types.Timeline
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &timeline); err != nil {
		return nil, fmt.Errorf("parse timeline JSON: %w", err)
	}
	if timeline.Title == "" || len(timeline.Stages) == 0 {
		return nil, fmt.Errorf("invalid timeline structure: missing title or stages")
	}
	return &timeline, nil
}

func fallbackTimeline(topic string) *types.Timeline {
	return &types.Timeline{
		Title: fmt.Sprintf("Timeline of %s", topic),
		Stages: []types.Stage{{
			Order:       1,
			Name:        fmt.Sprintf("History of %s", topic),
			Description: fmt.Sprintf("An overview of the historical evolution of %s.", topic),
		}},
	}
}

// GenerateStageScript writes the narration for one stage. On failure it
// returns a short deterministic script built from the stage itself.
func (c *Client) GenerateStageScript(ctx context.Context, topic string, stage types.Stage, allStages []types.Stage) string {
	log.Printf("[gemini] Generating voiceover script for stage %d: %s", stage.Order, stage.Name)

	script, err := c.generateText(ctx, stageScriptPrompt(c.cfg.Language, topic, stage, allStages))
	if err != nil {
		log.Printf("[gemini] Script generation failed for stage %d: %v — using fallback", stage.Order, err)
		return fallbackStageScript(c.cfg.Language, topic, stage)
	}
	return script
}

func fallbackStageScript(language, topic string, stage types.Stage) string {
	if language == "es" {
		return fmt.Sprintf("Durante este período, %s marcó un hito importante en la historia de %s. %s",
			stage.Name, topic, truncate(stage.Description, 50))
	}
	return fmt.Sprintf("During this period, %s marked an important milestone in the history of %s. %s",
		stage.Name, topic, truncate(stage.Description, 50))
}

// GenerateIntroScript writes the short hook narration for the intro clip.
func (c *Client) GenerateIntroScript(ctx context.Context, topic string, allStages []types.Stage) string {
	log.Printf("[gemini] Generating voiceover intro script for topic: %s", topic)

	script, err := c.generateText(ctx, introScriptPrompt(c.cfg.Language, topic, allStages))
	if err != nil {
		log.Printf("[gemini] Intro script generation failed: %v — using fallback", err)
		if c.cfg.Language == "es" {
			return fmt.Sprintf("Bienvenidos. Hoy exploraremos la historia de %s a través de su cronología.", topic)
		}
		return fmt.Sprintf("Welcome. Today we'll explore the history of %s through its timeline.", topic)
	}
	return script
}

// GenerateImagePrompts asks for three image prompts describing one stage.
// The returned length is whatever the model delivered after parsing; the
// pipeline normalizes the count.
func (c *Client) GenerateImagePrompts(ctx context.Context, topic string, stage types.Stage, allStages []types.Stage, script string) []string {
	log.Printf("[gemini] Generating image prompts for stage %d: %s", stage.Order, stage.Name)

	raw, err := c.generateText(ctx, imagePromptsPrompt(c.cfg.Language, topic, stage, allStages, script))
	if err != nil {
		log.Printf("[gemini] Image prompt generation failed for stage %d: %v — using fallback prompts", stage.Order, err)
		return fallbackImagePrompts(topic, stage.Name)
	}

	prompts, err := parsePromptList(raw)
	if err != nil {
		log.Printf("[gemini] Image prompt parse failed for stage %d: %v — using fallback prompts", stage.Order, err)
		return fallbackImagePrompts(topic, stage.Name)
	}
	return prompts
}

// GenerateCoverPrompts asks for three cover image prompts spanning the
// whole timeline.
func (c *Client) GenerateCoverPrompts(ctx context.Context, topic string, allStages []types.Stage) []string {
	log.Printf("[gemini] Generating cover image prompts for topic: %s", topic)

	raw, err := c.generateText(ctx, coverPromptsPrompt(c.cfg.Language, topic, allStages))
	if err != nil {
		log.Printf("[gemini] Cover prompt generation failed: %v — using fallback prompts", err)
		return fallbackCoverPrompts(topic)
	}

	prompts, err := parsePromptList(raw)
	if err != nil {
		log.Printf("[gemini] Cover prompt parse failed: %v — using fallback prompts", err)
		return fallbackCoverPrompts(topic)
	}
	return prompts
}

// parsePromptList accepts either a bare JSON array or an object with a
// "prompts" array.
func parsePromptList(raw string) ([]string, error) {
	cleaned := cleanJSON(raw)

	var prompts []string
	if err := json.Unmarshal([]byte(cleaned), &prompts); err == nil {
		return prompts, nil
	}

	var wrapped struct {
		Prompts []string `json:"prompts"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Prompts) > 0 {
		return wrapped.Prompts, nil
	}
	return nil, fmt.Errorf("prompt list is not a JSON array: %s", truncate(cleaned, 80))
}

func fallbackImagePrompts(topic, stageName string) []string {
	base := fmt.Sprintf("Historical illustration of %s during the %s period", topic, stageName)
	return []string{
		base + ", wide establishing shot, dramatic lighting, photorealistic.",
		base + ", close-up on key figures and artifacts, cinematic composition.",
		base + ", atmospheric scene capturing the era, rich detail, vertical framing.",
	}
}

func fallbackCoverPrompts(topic string) []string {
	base := fmt.Sprintf("Historical illustration of the evolution of %s through time", topic)
	return []string{
		base + ", epic montage composition, dramatic lighting, vertical framing.",
		base + ", key transformations in one visually striking scene, photorealistic.",
		base + ", symbolic imagery of change across eras, cinematic, rich color.",
	}
}

func stagesContext(language string, allStages []types.Stage) string {
	var sb strings.Builder
	if language == "es" {
		sb.WriteString("Estas son todas las etapas del video (para referencia):\n")
		for _, s := range allStages {
			sb.WriteString(fmt.Sprintf("* Etapa %d: %s — %s\n", s.Order, s.Name, s.Description))
		}
	} else {
		sb.WriteString("Here are all the stages of the video (for reference):\n")
		for _, s := range allStages {
			sb.WriteString(fmt.Sprintf("* Stage %d: %s — %s\n", s.Order, s.Name, s.Description))
		}
	}
	return sb.String()
}
