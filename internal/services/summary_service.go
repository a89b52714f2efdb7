package services

import (
	"fmt"
	"strings"
)

// summaryPreviewLen is the number of characters of input echoed back.
const summaryPreviewLen = 200

// SummaryService is a deterministic placeholder for summarization: it
// reports a word count and echoes a truncated prefix of the input. It is
// deliberately not a semantic summarizer.
type SummaryService struct{}

// NewSummaryService creates a new summary service
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// Summarize returns "Summary of N words: <first 200 chars>...".
func (s *SummaryService) Summarize(text string) string {
	words := strings.Fields(text)

	preview := []rune(text)
	if len(preview) > summaryPreviewLen {
		preview = preview[:summaryPreviewLen]
	}

	recordSummaryServed()
	return fmt.Sprintf("Summary of %d words: %s...", len(words), string(preview))
}
