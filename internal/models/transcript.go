package models

import (
	"fmt"
	"time"
)

// Transcript represents one speech-to-text chunk saved for a session.
// Each record lives under its own store key, so writes never race.
type Transcript struct {
	Transcript string `json:"transcript"`
	Timestamp  string `json:"timestamp"` // RFC3339
	SessionID  string `json:"sessionId"`
}

// Transcript keys are "transcript-{sessionId}-{epochMillis}". Key enumeration
// order is whatever the store yields; callers must not assume chronological
// order.
const transcriptKeyPrefix = "transcript"

// TranscriptKey composes the store key for a transcript created at t.
func TranscriptKey(sessionID string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%d", transcriptKeyPrefix, sessionID, t.UnixMilli())
}

// TranscriptPrefix is the key prefix shared by all transcripts of a session.
func TranscriptPrefix(sessionID string) string {
	return fmt.Sprintf("%s-%s-", transcriptKeyPrefix, sessionID)
}
