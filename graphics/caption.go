package graphics

import "strings"

// Caption rendering calibration for a vertical frame. avgCharPx is the
// measured average glyph width at the base font size; maxCharsCap keeps
// lines readable even on wide frames.
const (
	avgCharPx    = 15
	maxCharsCap  = 25
	baseFontSize = 50
	maxLines     = 5
	fontSizeStep = 5
	minFontSize  = 20
)

// Layout wraps caption text to fit targetWidth pixels and picks a font size
// that keeps the block inside the frame. Lines break on word boundaries
// only. When the wrapped text exceeds maxLines, the font size shrinks one
// step per excess line down to minFontSize. Pure and deterministic.
func Layout(text string, targetWidth int) (string, int) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", baseFontSize
	}

	maxChars := targetWidth / avgCharPx
	if maxChars > maxCharsCap {
		maxChars = maxCharsCap
	}
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= maxChars {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)

	size := baseFontSize
	if len(lines) > maxLines {
		size -= (len(lines) - maxLines) * fontSizeStep
		if size < minFontSize {
			size = minFontSize
		}
	}

	return strings.Join(lines, "\n"), size
}
