package types_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TenKenZero/cronologia/types"
)

func TestNewExecutionContext(t *testing.T) {
	base := t.TempDir()
	ec, err := types.NewExecutionContext(base, "0104251200_cafe0123")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(base, "image", "0104251200_cafe0123"))
	assert.DirExists(t, filepath.Join(base, "audio", "0104251200_cafe0123"))
	assert.DirExists(t, filepath.Join(base, "video", "0104251200_cafe0123"))
	assert.Equal(t, "0104251200_cafe0123", ec.ID)
}

func TestExecutionContextPaths(t *testing.T) {
	ec, err := types.NewExecutionContext(t.TempDir(), "run1")
	require.NoError(t, err)

	assert.Equal(t, "run1_stage2.mp3", filepath.Base(ec.StageAudioPath(2)))
	assert.Equal(t, "run1_stage2", ec.StageImagePrefix(2))
	assert.Equal(t, "run1_stage2_3.jpg", filepath.Base(ec.StageImagePath(2, 3)))
	assert.Equal(t, "run1_stage2.mp4", filepath.Base(ec.StageClipPath(2)))
	assert.Equal(t, "run1_intro.mp3", filepath.Base(ec.IntroAudioPath()))
	assert.Equal(t, "run1_cover1.jpg", filepath.Base(ec.CoverImagePath(1)))
	assert.Equal(t, "run1_intro.mp4", filepath.Base(ec.IntroClipPath()))
	assert.Equal(t, "run1_final.mp4", filepath.Base(ec.FinalPath()))

	// Audio, image and video artifacts live in their own subtrees.
	assert.Contains(t, ec.StageAudioPath(1), filepath.Join("audio", "run1"))
	assert.Contains(t, ec.StageImagePath(1, 1), filepath.Join("image", "run1"))
	assert.Contains(t, ec.StageClipPath(1), filepath.Join("video", "run1"))
}
