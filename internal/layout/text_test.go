package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace runs", "  a \t b\n c  ", "a b c"},
		{"nbsp", "a b", "a b"},
		{"zero width", "Re​quest", "Request"},
		{"curly quotes", "“Ontario’s”", `"Ontario's"`},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  a \t b\n c  ",
		"“quoted” text here",
		"plain",
		"",
		"1.  Introduction​",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestIsPageNumber(t *testing.T) {
	assert.True(t, IsPageNumber("42"))
	assert.True(t, IsPageNumber("iv"))
	assert.True(t, IsPageNumber("XIII"))
	assert.True(t, IsPageNumber(" 7 "))

	assert.False(t, IsPageNumber("Chapter 7"))
	assert.False(t, IsPageNumber("7a"))
	assert.False(t, IsPageNumber(""))
	assert.False(t, IsPageNumber("mix of words"))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 50.0, Round1(50.04))
	assert.Equal(t, 50.1, Round1(50.05))
	assert.Equal(t, 12.35, Round2(12.345))
	assert.Equal(t, -3.1, Round1(-3.14))
}
