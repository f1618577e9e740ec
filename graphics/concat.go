package graphics

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// existingClips filters paths down to those that exist on disk, preserving
// order. Missing clips are logged and skipped, never fatal.
func existingClips(paths []string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			log.Printf("[graphics] Video clip not found: %s — skipping", p)
			continue
		}
		out = append(out, p)
	}
	return out
}

// Concatenate joins clips in input order into one video. Each input is
// normalized to the output frame before the join, so clips of differing
// geometry still concatenate. Zero surviving inputs is the one failure this
// engine does not degrade from.
func (e *Engine) Concatenate(ctx context.Context, clipPaths []string, outputPath string) (string, error) {
	clips := existingClips(clipPaths)
	if len(clips) == 0 {
		return "", fmt.Errorf("no valid video clips to concatenate")
	}

	var args []string
	for _, c := range clips {
		args = append(args, "-i", c)
	}

	var filters []string
	var concatIn []string
	for i := range clips {
		filters = append(filters, fmt.Sprintf("[%d:v]%s,fps=%d[v%d]", i, e.frameFilter(), e.cfg.Video.FPS, i))
		filters = append(filters, fmt.Sprintf("[%d:a]aresample=44100[a%d]", i, i))
		concatIn = append(concatIn, fmt.Sprintf("[v%d][a%d]", i, i))
	}
	filters = append(filters, fmt.Sprintf("%sconcat=n=%d:v=1:a=1[vout][aout]", strings.Join(concatIn, ""), len(clips)))

	args = append(args,
		"-filter_complex", strings.Join(filters, ";"),
		"-map", "[vout]",
		"-map", "[aout]",
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "22",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "+faststart",
		outputPath,
	)

	log.Printf("[graphics] Concatenating %d clip(s) into %s", len(clips), outputPath)
	if e.cfg.Debug {
		log.Printf("[graphics] ffmpeg args: %v", args)
	}
	if err := runFFmpeg(ctx, args...); err != nil {
		return "", fmt.Errorf("concatenate %s: %w", outputPath, err)
	}
	return outputPath, nil
}
