package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasic(t *testing.T) {
	out := string(RenderMarkdown("# Title\n\nsome **bold** text"))

	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Title") {
		t.Errorf("heading not rendered: %s", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("bold not rendered: %s", out)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert(1)</script> world"))

	if strings.Contains(out, "<script") {
		t.Fatalf("script tag survived sanitization: %s", out)
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("surrounding text lost: %s", out)
	}
}
