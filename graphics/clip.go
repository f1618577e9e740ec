package graphics

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// clipTimings derives the clip's total duration and the per-image display
// duration from the native audio length. Both streams are sized from the
// same total so audio and video never drift apart.
func clipTimings(audioDur, padSec float64, imageCount int) (total, perImage float64) {
	if audioDur <= 0 {
		audioDur = minDuration
	}
	if imageCount < 1 {
		imageCount = 1
	}
	total = audioDur + 2*padSec
	return total, total / float64(imageCount)
}

// Clip builds one video clip: the images shown back to back across the full
// padded audio duration, the caption overlaid for the whole clip, and the
// narration wrapped in lead/trail silence. Missing image files are replaced
// in place with placeholders before assembly.
func (e *Engine) Clip(ctx context.Context, images []string, audioPath, caption, outputPath string) (string, error) {
	if len(images) == 0 {
		return "", fmt.Errorf("no images for clip %s", outputPath)
	}

	for _, img := range images {
		if _, err := os.Stat(img); err != nil {
			log.Printf("[graphics] Image not found: %s. Creating placeholder.", img)
			if perr := e.Placeholder(img); perr != nil {
				return "", fmt.Errorf("placeholder for %s: %w", img, perr)
			}
		}
	}

	pad := e.cfg.Video.PadSec
	audioDur := durationOrFloor(audioPath)
	total, perImage := clipTimings(audioDur, pad, len(images))

	wrapped, fontSize := Layout(caption, e.cfg.Video.Width)

	var args []string
	for _, img := range images {
		args = append(args, "-loop", "1", "-t", fmt.Sprintf("%.3f", perImage), "-i", img)
	}
	args = append(args, "-i", audioPath)

	var filters []string
	var concatIn []string
	for i := range images {
		filters = append(filters, fmt.Sprintf("[%d:v]%s,fps=%d[v%d]", i, e.frameFilter(), e.cfg.Video.FPS, i))
		concatIn = append(concatIn, fmt.Sprintf("[v%d]", i))
	}
	filters = append(filters, fmt.Sprintf("%sconcat=n=%d:v=1:a=0[vcat]", strings.Join(concatIn, ""), len(images)))
	filters = append(filters, fmt.Sprintf(
		"[vcat]drawtext=text='%s':fontsize=%d:fontcolor=white:box=1:boxcolor=black@0.5:boxborderw=20:x=(w-text_w)/2:y=(h-text_h)/2[vout]",
		escapeText(wrapped), fontSize,
	))
	padMs := int(pad * 1000)
	filters = append(filters, fmt.Sprintf(
		"[%d:a]adelay=%d:all=1,apad=pad_dur=%.3f[aout]",
		len(images), padMs, pad,
	))

	args = append(args,
		"-filter_complex", strings.Join(filters, ";"),
		"-map", "[vout]",
		"-map", "[aout]",
		"-t", fmt.Sprintf("%.3f", total),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		outputPath,
	)

	log.Printf("[graphics] Creating clip %s (%d images, %.2fs)", outputPath, len(images), total)
	if e.cfg.Debug {
		log.Printf("[graphics] ffmpeg args: %v", args)
	}
	if err := runFFmpeg(ctx, args...); err != nil {
		return "", fmt.Errorf("clip %s: %w", outputPath, err)
	}
	return outputPath, nil
}

// TitleCard builds the degraded intro variant: the title over a cover image
// for a fixed duration, with a silent audio track so the clip concatenates
// cleanly with narrated clips.
func (e *Engine) TitleCard(ctx context.Context, title, coverPath, outputPath string) (string, error) {
	if _, err := os.Stat(coverPath); err != nil {
		log.Printf("[graphics] Cover image not found: %s. Creating placeholder.", coverPath)
		if perr := e.Placeholder(coverPath); perr != nil {
			return "", fmt.Errorf("placeholder cover: %w", perr)
		}
	}

	dur := e.cfg.Video.IntroSec
	wrapped, fontSize := Layout(title, e.cfg.Video.Width)

	filter := fmt.Sprintf(
		"[0:v]%s,fps=%d,drawtext=text='%s':fontsize=%d:fontcolor=white:box=1:boxcolor=black@0.7:boxborderw=20:x=(w-text_w)/2:y=(h-text_h)/2[vout]",
		e.frameFilter(), e.cfg.Video.FPS, escapeText(wrapped), fontSize,
	)

	args := []string{
		"-loop", "1", "-t", fmt.Sprintf("%.3f", dur), "-i", coverPath,
		"-f", "lavfi", "-t", fmt.Sprintf("%.3f", dur), "-i", "anullsrc=r=44100:cl=mono",
		"-filter_complex", filter,
		"-map", "[vout]",
		"-map", "1:a",
		"-t", fmt.Sprintf("%.3f", dur),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		outputPath,
	}

	log.Printf("[graphics] Creating title card %s", outputPath)
	if err := runFFmpeg(ctx, args...); err != nil {
		return "", fmt.Errorf("title card %s: %w", outputPath, err)
	}
	return outputPath, nil
}
