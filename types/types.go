package types

import (
	"fmt"
	"os"
	"path/filepath"
)

// Stage is one chronological segment of the timeline. Name is short enough
// to be burned into the video as a caption; Description seeds the narration.
type Stage struct {
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Timeline is the full chronology for one topic. Stages arrive in
// chronological order from the generator and are never reordered here.
type Timeline struct {
	Title  string  `json:"title"`
	Stages []Stage `json:"stages"`
}

// StageClip pairs a produced clip path with the stage order it belongs to,
// so clips can be collected in any completion order and sorted afterwards.
type StageClip struct {
	Order int
	Path  string
}

// ExecutionContext namespaces every artifact of one pipeline run. All output
// filenames derive from the execution ID, so two runs never collide.
type ExecutionContext struct {
	ID       string
	ImageDir string
	AudioDir string
	VideoDir string
}

// NewExecutionContext creates the media directory tree for a run.
func NewExecutionContext(mediaDir, executionID string) (*ExecutionContext, error) {
	ec := &ExecutionContext{
		ID:       executionID,
		ImageDir: filepath.Join(mediaDir, "image", executionID),
		AudioDir: filepath.Join(mediaDir, "audio", executionID),
		VideoDir: filepath.Join(mediaDir, "video", executionID),
	}
	for _, dir := range []string{ec.ImageDir, ec.AudioDir, ec.VideoDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return ec, nil
}

// StageAudioPath is where the narration audio for a stage is written.
func (ec *ExecutionContext) StageAudioPath(order int) string {
	return filepath.Join(ec.AudioDir, fmt.Sprintf("%s_stage%d.mp3", ec.ID, order))
}

// StageImagePrefix is the filename prefix for a stage's generated images.
// The image generator appends _{n}.jpg for n = 1..3.
func (ec *ExecutionContext) StageImagePrefix(order int) string {
	return fmt.Sprintf("%s_stage%d", ec.ID, order)
}

// StageImagePath is the deterministic path of the n-th image of a stage.
func (ec *ExecutionContext) StageImagePath(order, n int) string {
	return filepath.Join(ec.ImageDir, fmt.Sprintf("%s_stage%d_%d.jpg", ec.ID, order, n))
}

// StageClipPath is where the assembled clip for a stage is written.
func (ec *ExecutionContext) StageClipPath(order int) string {
	return filepath.Join(ec.VideoDir, fmt.Sprintf("%s_stage%d.mp4", ec.ID, order))
}

// IntroAudioPath is where the intro narration audio is written.
func (ec *ExecutionContext) IntroAudioPath() string {
	return filepath.Join(ec.AudioDir, fmt.Sprintf("%s_intro.mp3", ec.ID))
}

// CoverImagePath is the deterministic path of the n-th cover image.
func (ec *ExecutionContext) CoverImagePath(n int) string {
	return filepath.Join(ec.ImageDir, fmt.Sprintf("%s_cover%d.jpg", ec.ID, n))
}

// IntroClipPath is where the intro clip is written.
func (ec *ExecutionContext) IntroClipPath() string {
	return filepath.Join(ec.VideoDir, fmt.Sprintf("%s_intro.mp4", ec.ID))
}

// FinalPath is where the concatenated final video is written.
func (ec *ExecutionContext) FinalPath() string {
	return filepath.Join(ec.VideoDir, fmt.Sprintf("%s_final.mp4", ec.ID))
}
