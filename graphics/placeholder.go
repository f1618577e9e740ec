package graphics

import (
	"context"
	"fmt"
	"log"
)

// placeholderColor is the fill of generated placeholder images, cornflower blue.
const placeholderColor = "0x6495ED"

// Placeholder writes a frame-sized solid-color image at path, used whenever
// image generation under-delivers or a referenced image file is missing.
func (e *Engine) Placeholder(path string) error {
	src := fmt.Sprintf("color=c=%s:s=%dx%d", placeholderColor, e.cfg.Video.Width, e.cfg.Video.Height)
	err := runFFmpeg(context.Background(),
		"-f", "lavfi",
		"-i", src,
		"-frames:v", "1",
		path,
	)
	if err != nil {
		return fmt.Errorf("placeholder image %s: %w", path, err)
	}
	log.Printf("[graphics] Placeholder image created at %s", path)
	return nil
}

// SilentAudio writes a silence-only MP3 of the given length at path. It
// substitutes for failed narration synthesis so a stage clip still has a
// well-defined duration.
func (e *Engine) SilentAudio(path string, seconds float64) error {
	if seconds <= 0 {
		seconds = minDuration
	}
	err := runFFmpeg(context.Background(),
		"-f", "lavfi",
		"-i", "anullsrc=r=24000:cl=mono",
		"-t", fmt.Sprintf("%.3f", seconds),
		"-c:a", "libmp3lame",
		"-q:a", "9",
		path,
	)
	if err != nil {
		return fmt.Errorf("silent audio %s: %w", path, err)
	}
	log.Printf("[graphics] Silent audio track created at %s (%.1fs)", path, seconds)
	return nil
}
