package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownSource_Headings(t *testing.T) {
	input := `# Project Plan

Intro paragraph.

## Phase One

### Staffing

Details here.

##### Deep Dive
`
	doc, err := (&MarkdownSource{}).Extract(strings.NewReader(input), "plan.md")
	require.NoError(t, err)

	assert.Equal(t, "Project Plan", doc.Title, "first top-level heading becomes the title")
	require.Len(t, doc.Outline, 4)
	assert.Equal(t, "H1", doc.Outline[0].Level)
	assert.Equal(t, "Phase One", doc.Outline[1].Text)
	assert.Equal(t, "H2", doc.Outline[1].Level)
	assert.Equal(t, "H3", doc.Outline[2].Level)
	assert.Equal(t, "H4", doc.Outline[3].Level, "h5 clamps to H4")
	for _, h := range doc.Outline {
		assert.Equal(t, 1, h.Page)
	}
}

func TestMarkdownSource_NoHeadings(t *testing.T) {
	doc, err := (&MarkdownSource{}).Extract(strings.NewReader("just prose\n"), "memo.md")
	require.NoError(t, err)

	assert.Equal(t, "memo", doc.Title, "falls back to the filename")
	assert.NotNil(t, doc.Outline)
	assert.Empty(t, doc.Outline)
}

func TestMarkdownSource_InlineMarkupStripped(t *testing.T) {
	doc, err := (&MarkdownSource{}).Extract(strings.NewReader("## The *Quick* Fix\n"), "x.md")
	require.NoError(t, err)

	require.Len(t, doc.Outline, 1)
	assert.Equal(t, "The Quick Fix", doc.Outline[0].Text)
}
