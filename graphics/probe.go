package graphics

import (
	"fmt"
	"os/exec"
	"strings"
)

// minDuration is the floor applied when audio cannot be probed or reports a
// non-positive length, so per-image duration math always divides a positive
// total.
const minDuration = 1.0

// Duration returns the media duration in seconds via ffprobe.
func Duration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	var dur float64
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &dur); err != nil {
		return 0, fmt.Errorf("parse ffprobe output for %s: %w", path, err)
	}
	return dur, nil
}

// durationOrFloor probes the audio duration, clamping failures and
// degenerate values to minDuration.
func durationOrFloor(path string) float64 {
	dur, err := Duration(path)
	if err != nil || dur <= 0 {
		return minDuration
	}
	return dur
}
