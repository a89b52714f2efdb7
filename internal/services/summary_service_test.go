package services

import (
	"strings"
	"testing"
)

func TestSummaryService_Short(t *testing.T) {
	s := NewSummaryService()

	got := s.Summarize("a b c")
	want := "Summary of 3 words: a b c..."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSummaryService_Empty(t *testing.T) {
	s := NewSummaryService()

	got := s.Summarize("")
	want := "Summary of 0 words: ..."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSummaryService_Truncation(t *testing.T) {
	s := NewSummaryService()

	text := strings.Repeat("word ", 100) // 500 chars, 100 words
	got := s.Summarize(text)

	want := "Summary of 100 words: " + text[:200] + "..."
	if got != want {
		t.Errorf("Expected 200-char preview, got %q", got)
	}
}
