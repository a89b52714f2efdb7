package models

import (
	"strconv"
	"time"
)

// Memory represents a single saved note.
// The whole collection is stored under one key as a JSON array, newest first.
type Memory struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Timestamp string   `json:"timestamp"` // RFC3339
	Tags      []string `json:"tags"`
	Priority  string   `json:"priority"`
}

// Priority constants
const (
	PriorityNormal = "normal"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityNormal, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MemoryDefaults holds the default values applied to optional fields
// during record construction.
type MemoryDefaults struct {
	Tags     []string
	Priority string
}

// StandardDefaults returns the defaults used for new memories.
func StandardDefaults() MemoryDefaults {
	return MemoryDefaults{
		Tags:     []string{},
		Priority: PriorityNormal,
	}
}

// NewMemory constructs a memory record at the given creation time,
// applying defaults for omitted or unknown optional fields.
// The id is the creation time in epoch milliseconds; two creations within
// the same millisecond collide. That is a documented limitation of the
// id scheme, not corrected here.
func NewMemory(now time.Time, text string, tags []string, priority string, defaults MemoryDefaults) Memory {
	if tags == nil {
		tags = defaults.Tags
	}
	if !ValidPriority(priority) {
		priority = defaults.Priority
	}
	return Memory{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Text:      text,
		Timestamp: now.Format(time.RFC3339),
		Tags:      tags,
		Priority:  priority,
	}
}
