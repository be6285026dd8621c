package htmlsanitize_test

import (
	"testing"

	"github.com/empoderata/academy/internal/app/system/htmlsanitize"
)

func TestPlainText_Empty(t *testing.T) {
	if got := htmlsanitize.PlainText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestPlainText_Unchanged(t *testing.T) {
	in := "We need training for 20 agents"
	if got := htmlsanitize.PlainText(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestPlainText_StripsTags(t *testing.T) {
	got := htmlsanitize.PlainText("<p>Hello <strong>there</strong></p>")
	if got != "Hello there" {
		t.Errorf("got %q, want %q", got, "Hello there")
	}
}

func TestPlainText_RemovesScript(t *testing.T) {
	got := htmlsanitize.PlainText("Hi<script>alert('xss')</script>")
	if got != "Hi" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestPlainText_TrimsWhitespace(t *testing.T) {
	if got := htmlsanitize.PlainText("  Sipho  "); got != "Sipho" {
		t.Errorf("got %q", got)
	}
}

func TestPlainText_KeepsPunctuation(t *testing.T) {
	in := "We'd like R&D training for 5 < 10 people"
	if got := htmlsanitize.PlainText(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}
