package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**bold** and *italic*"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown(`hello <script>alert("x")</script> world`))
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.True(t, strings.Contains(out, "hello"))
}
