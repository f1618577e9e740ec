package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipTimings(t *testing.T) {
	t.Run("total is audio plus both pads", func(t *testing.T) {
		for _, audioDur := range []float64{0.1, 1.0, 12.4, 61.0} {
			total, _ := clipTimings(audioDur, 0.5, 3)
			assert.InDelta(t, audioDur+1.0, total, 1e-9)
		}
	})

	t.Run("image durations sum to the total", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 5} {
			total, per := clipTimings(12.4, 0.5, n)
			assert.InDelta(t, total, per*float64(n), 1e-9)
		}
	})

	t.Run("non-positive audio clamps to the floor", func(t *testing.T) {
		total, per := clipTimings(0, 0.5, 3)
		assert.InDelta(t, minDuration+1.0, total, 1e-9)
		assert.False(t, math.IsInf(per, 1))
		assert.Greater(t, per, 0.0)

		total, _ = clipTimings(-3, 0.5, 3)
		assert.InDelta(t, minDuration+1.0, total, 1e-9)
	})

	t.Run("zero images treated as one", func(t *testing.T) {
		total, per := clipTimings(4.0, 0.5, 0)
		assert.InDelta(t, total, per, 1e-9)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		t1, p1 := clipTimings(7.3, 0.5, 3)
		t2, p2 := clipTimings(7.3, 0.5, 3)
		assert.Equal(t, t1, t2)
		assert.Equal(t, p1, p2)
	})
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `Rome\: Rise and Fall`, escapeText("Rome: Rise and Fall"))
	assert.Equal(t, `It\'s here`, escapeText("It's here"))
	assert.Equal(t, `100\% done`, escapeText("100% done"))
}
