package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Heading\n\nsome **bold** text")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script>")
	assert.False(t, strings.Contains(out, "<script>"))
	assert.Contains(t, out, "hello")
}

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 3, StringToInt("3", 0))
	assert.Equal(t, 20, StringToInt("", 20))
	assert.Equal(t, 20, StringToInt("abc", 20))
	assert.Equal(t, -1, StringToInt("-1", 0))
}
