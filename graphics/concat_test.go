package graphics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TenKenZero/cronologia/config"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0644))
	return path
}

func TestExistingClips(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "a_missing.mp4")
	b := writeStub(t, dir, "b.mp4")
	c := writeStub(t, dir, "c.mp4")

	t.Run("skips missing clips and preserves order", func(t *testing.T) {
		got := existingClips([]string{missing, b, c})
		assert.Equal(t, []string{b, c}, got)
	})

	t.Run("empty when nothing exists", func(t *testing.T) {
		assert.Empty(t, existingClips([]string{missing}))
	})
}

func TestConcatenateNoInput(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	e := NewEngine(cfg)

	dir := t.TempDir()
	_, err = e.Concatenate(context.Background(),
		[]string{filepath.Join(dir, "gone.mp4")},
		filepath.Join(dir, "out.mp4"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid video clips")
}
