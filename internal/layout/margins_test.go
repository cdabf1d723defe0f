package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMargins_RunningHeader(t *testing.T) {
	// A line at y=50 on all 10 pages: 10 >= max(2, 6).
	var lines []Line
	for p := 1; p <= 10; p++ {
		lines = append(lines, Line{Text: "ACME Corp Annual Report", Size: 9, X0: 72, Y: 50, Page: p})
		lines = append(lines, Line{Text: fmt.Sprintf("body text on page %d", p), Size: 10, X0: 72, Y: 300, Page: p})
	}
	m := DetectMargins(lines, 10)

	assert.True(t, m.InBand(50))
	assert.True(t, m.InBand(50.04), "membership is at one-decimal precision")
	assert.False(t, m.InBand(300), "frequent y outside the top margin is not a header")
	assert.True(t, m.IsRepeated("ACME Corp Annual Report"))
}

func TestDetectMargins_Footer(t *testing.T) {
	var lines []Line
	for p := 1; p <= 10; p++ {
		if p <= 7 {
			lines = append(lines, Line{Text: "Confidential", Size: 8, X0: 250, Y: 700, Page: p})
		}
	}
	m := DetectMargins(lines, 10)

	assert.True(t, m.InBand(700), "7 of 10 pages meets the 0.6 threshold")
	assert.True(t, m.IsRepeated("Confidential"))
}

func TestDetectMargins_BelowFractionalThreshold(t *testing.T) {
	// 5 of 10 pages is under ceil(0.6*10); a heading that repeats a few
	// times must not be absorbed into the margin bands.
	var lines []Line
	for p := 1; p <= 5; p++ {
		lines = append(lines, Line{Text: "Discussion", Size: 14, X0: 72, Y: 80, Page: p})
	}
	m := DetectMargins(lines, 10)

	assert.False(t, m.InBand(80))
	assert.False(t, m.IsRepeated("Discussion"))
}

func TestDetectMargins_PageMarkersNeverBoilerplate(t *testing.T) {
	var lines []Line
	for p := 1; p <= 6; p++ {
		lines = append(lines, Line{Text: "12", Size: 9, X0: 280, Y: 700, Page: p})
		lines = append(lines, Line{Text: "iv", Size: 9, X0: 280, Y: 710, Page: p})
	}
	m := DetectMargins(lines, 6)

	assert.False(t, m.IsRepeated("12"))
	assert.False(t, m.IsRepeated("iv"))
	// Their coordinates still count toward the footer band.
	assert.True(t, m.InBand(700))
	assert.True(t, m.InBand(710))
}

func TestDetectMargins_MinimumTwoPages(t *testing.T) {
	// Single-page document: threshold floors at 2, so nothing repeats.
	lines := []Line{
		{Text: "Title", Size: 20, X0: 72, Y: 50, Page: 1},
	}
	m := DetectMargins(lines, 1)

	assert.False(t, m.InBand(50))
	assert.False(t, m.IsRepeated("Title"))
}
