// Package graphics assembles timed media into video clips with ffmpeg.
// It owns every ffmpeg/ffprobe invocation in the pipeline.
package graphics

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/TenKenZero/cronologia/config"
)

// Engine drives ffmpeg for clip synthesis, placeholders and concatenation.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates an Engine bound to the run's video settings.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// runFFmpeg executes ffmpeg with the given args, buffering its output so a
// failure carries the tail of the log instead of spamming the console.
func runFFmpeg(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", append([]string{"-y"}, args...)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, tail(out.String(), 400))
	}
	return nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

// escapeText escapes characters that break ffmpeg drawtext filter strings.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, ":", "\\:")
	s = strings.ReplaceAll(s, "%", "\\%")
	return s
}

// frameFilter scales and pads an arbitrary input to the output frame.
func (e *Engine) frameFilter() string {
	w, h := e.cfg.Video.Width, e.cfg.Video.Height
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1",
		w, h, w, h,
	)
}
