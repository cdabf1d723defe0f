package outline

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/layout"
)

// Context is the immutable per-document state every classification rule
// reads: margin bands, the font hierarchy, and the indentation baseline
// of ordinary body text.
type Context struct {
	Margins  layout.Margins
	Fonts    layout.FontHierarchy
	Baseline float64
	Compat   Overrides
}

// Fallback indentation baseline when no body-text sample exists.
const defaultBaseline = 90.0

// NewContext derives the classification context. The baseline is the
// most common x0 of body-sized, non-header/footer, non-numeral lines on
// pages two onward, where page-one title layout cannot skew it.
func NewContext(lines []layout.Line, margins layout.Margins, fonts layout.FontHierarchy, compat Overrides) Context {
	counts := make(map[float64]int)
	for _, ln := range lines {
		if ln.Page <= 1 || layout.Round2(ln.Size) != fonts.BodySize {
			continue
		}
		if margins.InBand(ln.Y) {
			continue
		}
		if text := layout.Normalize(ln.Text); text == "" || isBareInteger(text) {
			continue
		}
		counts[ln.X0]++
	}
	baseline := defaultBaseline
	best := 0
	for x0, n := range counts {
		if n > best || (n == best && x0 < baseline) {
			baseline = x0
			best = n
		}
	}
	return Context{Margins: margins, Fonts: fonts, Baseline: baseline, Compat: compat}
}

var bareIntegerRe = regexp.MustCompile(`^\d+$`)

func isBareInteger(text string) bool { return bareIntegerRe.MatchString(text) }

// ruleResult is a rule's verdict on one line.
type ruleResult int

const (
	// ruleSkip: no opinion, try the next rule.
	ruleSkip ruleResult = iota
	// ruleMatch: a heading at the returned level.
	ruleMatch
	// ruleReject: definitely not a heading; stop the chain.
	ruleReject
)

// rule is a single classification strategy: given a line, the previous
// line on the page, and the document context, it may produce a level.
// Rules are evaluated in fixed priority order; the first match wins.
type rule interface {
	apply(ln layout.Line, text string, prev *layout.Line, ctx Context) (string, ruleResult)
}

// Classify runs every line through the ordered rule chain and
// post-processes the result: wrapped headings are merged, duplicates
// dropped, entries sorted by position, and transient coordinates
// stripped.
func Classify(lines []layout.Line, ctx Context) []Heading {
	sorted := make([]layout.Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X0 < b.X0
	})

	if fixed, ok := ctx.Compat.Outline(FirstPageText(sorted)); ok {
		return fixed
	}

	rules := []rule{numberingRule{}, fontSizeRule{}, allCapsRule{}, indentGapRule{}}

	type lineKey struct {
		text string
		page int
		y    float64
		x0   float64
	}
	seen := make(map[lineKey]struct{})

	var out []Heading
	var prev *layout.Line
	for i := range sorted {
		ln := sorted[i]
		text := layout.Normalize(ln.Text)

		if utf8.RuneCountInString(text) < 3 || !hasLetter(text) ||
			ctx.Margins.InBand(ln.Y) || ctx.Margins.IsRepeated(text) ||
			layout.IsPageNumber(text) {
			prev = &sorted[i]
			continue
		}
		key := lineKey{text: text, page: ln.Page, y: ln.Y, x0: ln.X0}
		if _, dup := seen[key]; dup {
			prev = &sorted[i]
			continue
		}

		for _, r := range rules {
			level, res := r.apply(ln, text, prev, ctx)
			if res == ruleSkip {
				continue
			}
			if res == ruleMatch {
				out = append(out, Heading{
					Level:    level,
					Text:     text,
					Page:     ln.Page,
					y:        ln.Y,
					x0:       ln.X0,
					fontSize: ln.Size,
				})
				seen[key] = struct{}{}
			}
			break
		}
		prev = &sorted[i]
	}

	return finalize(mergeWrapped(out))
}

// --- Rule 1: explicit numbering ------------------------------------------

// Dotted-numeral prefixes, deepest first so "2.1.3 Title" resolves to
// depth 3, not depth 1.
var numberedRes = []struct {
	re    *regexp.Regexp
	depth int
}{
	{regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\s*.+$`), 4},
	{regexp.MustCompile(`^\d+\.\d+\.\d+\s*.+$`), 3},
	{regexp.MustCompile(`^\d+\.\d+\s*.+$`), 2},
	{regexp.MustCompile(`^\d+\.\s*.+$`), 1},
}

type numberingRule struct{}

func (numberingRule) apply(ln layout.Line, text string, _ *layout.Line, ctx Context) (string, ruleResult) {
	depth := 0
	for _, nr := range numberedRes {
		if nr.re.MatchString(text) {
			depth = nr.depth
			break
		}
	}
	if depth == 0 {
		return "", ruleSkip
	}

	level := "H3"
	if depth >= 3 {
		level = "H4"
	}

	fontLevel, hasFontLevel := ctx.Fonts.LevelFor(ln.Size)

	// A depth-1 number pushed well past the body margin is a numbered
	// list item, not a section heading.
	if depth == 1 && ln.X0 > ctx.Baseline+15 {
		return "", ruleReject
	}
	if depth == 2 && ln.X0 > ctx.Baseline+10 && !(hasFontLevel && levelRank(fontLevel) <= levelRank("H2")) {
		level = "H4"
	}

	// Font evidence overrides numbering depth, never the reverse.
	if hasFontLevel && levelRank(fontLevel) < levelRank(level) {
		level = fontLevel
	}
	return level, ruleMatch
}

// --- Rule 2: significant font size ---------------------------------------

type fontSizeRule struct{}

func (fontSizeRule) apply(ln layout.Line, _ string, _ *layout.Line, ctx Context) (string, ruleResult) {
	if level, ok := ctx.Fonts.LevelFor(ln.Size); ok {
		return level, ruleMatch
	}
	return "", ruleSkip
}

// --- Rule 3: all-caps ------------------------------------------------------

type allCapsRule struct{}

func (allCapsRule) apply(ln layout.Line, text string, _ *layout.Line, ctx Context) (string, ruleResult) {
	if !isAllCaps(text) {
		return "", ruleSkip
	}
	level := "H2"
	switch {
	case ln.X0 > ctx.Baseline+20:
		level = "H3"
	case layout.Round2(ln.Size) < ctx.Fonts.BodySize+2:
		level = "H3"
	}
	return level, ruleMatch
}

// isAllCaps: 5-70 characters, at least one letter, and more than 85% of
// the alphabetic characters uppercase.
func isAllCaps(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < 5 || n > 70 {
		return false
	}
	upper, alpha := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			alpha++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return alpha > 0 && float64(upper)/float64(alpha) > 0.85
}

// --- Rule 4: indentation + vertical gap fallback ---------------------------

type indentGapRule struct{}

func (indentGapRule) apply(ln layout.Line, text string, prev *layout.Line, ctx Context) (string, ruleResult) {
	if prev == nil || prev.Page != ln.Page {
		return "", ruleSkip
	}
	lessIndented := ln.X0 < ctx.Baseline-5
	largeGap := ln.Y-prev.Y > ctx.Fonts.BodySize*2
	if !lessIndented || !largeGap || utf8.RuneCountInString(text) <= 5 || !hasLetter(text) {
		return "", ruleSkip
	}

	bold := strings.Contains(ln.Font, "Bold") ||
		strings.Contains(ln.Font, "Black") ||
		strings.Contains(ln.Font, "Heavy")
	switch {
	case bold && layout.Round2(ln.Size) > ctx.Fonts.BodySize:
		return "H2", ruleMatch
	case bold:
		return "H3", ruleMatch
	}
	return "H4", ruleMatch
}

// --- Post-processing -------------------------------------------------------

var sentenceStartRe = regexp.MustCompile(`^[A-Z][a-z]`)

// mergeWrapped reconstructs headings split across wrapped lines:
// consecutive entries on the same page and level are folded into the
// anchor while they stay within 1.5× its font size vertically and 1.0×
// horizontally, provided the continuation is short and does not read
// like the start of a new capitalized sentence.
func mergeWrapped(items []Heading) []Heading {
	var merged []Heading
	i := 0
	for i < len(items) {
		cur := items[i]
		text := cur.Text
		j := i + 1
		for j < len(items) &&
			items[j].Page == cur.Page && items[j].Level == cur.Level &&
			items[j].y-cur.y < cur.fontSize*1.5 &&
			math.Abs(items[j].x0-cur.x0) < cur.fontSize*1.0 {
			next := items[j].Text
			if len(strings.Fields(next)) >= 7 || sentenceStartRe.MatchString(next) {
				break
			}
			text += " " + next
			j++
		}
		cur.Text = layout.Normalize(text)
		merged = append(merged, cur)
		i = j
	}
	return merged
}

// finalize deduplicates by (level, text, page), sorts by position, and
// strips the transient coordinates.
func finalize(items []Heading) []Heading {
	type dedupKey struct {
		level string
		text  string
		page  int
	}
	seen := make(map[dedupKey]struct{})
	var out []Heading
	for _, h := range items {
		k := dedupKey{level: h.Level, text: h.Text, page: h.Page}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		if out[i].y != out[j].y {
			return out[i].y < out[j].y
		}
		return out[i].x0 < out[j].x0
	})

	for i := range out {
		out[i].y, out[i].x0, out[i].fontSize = 0, 0, 0
	}
	return out
}
