package layout

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	pageNumberRe   = regexp.MustCompile(`^\d+$`)
	romanNumeralRe = regexp.MustCompile(`^(?i)[ivxlcdm]+$`)

	quoteReplacer = strings.NewReplacer(
		"’", "'",
		"“", `"`,
		"”", `"`,
		"​", "",
	)
)

// Normalize canonicalizes extracted text: NFC form, curly quotes
// straightened, zero-width characters removed, and all runs of whitespace
// (including NBSP) collapsed to single spaces. Idempotent.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = quoteReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// IsPageNumber reports whether text is a bare integer or roman numeral,
// i.e. a page marker rather than content.
func IsPageNumber(text string) bool {
	text = strings.TrimSpace(text)
	return pageNumberRe.MatchString(text) || romanNumeralRe.MatchString(text)
}

// Round1 rounds to one decimal place; the tolerance used for grouping
// y-coordinates.
func Round1(v float64) float64 {
	return round(v, 10)
}

// Round2 rounds to two decimal places; the precision font sizes are
// compared at.
func Round2(v float64) float64 {
	return round(v, 100)
}

func round(v float64, scale float64) float64 {
	return math.Round(v*scale) / scale
}
