package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"memomate/internal/kvstore"
	"memomate/internal/logging"
	"memomate/internal/models"

	"github.com/google/uuid"
)

// TranscriptService implements save/list over per-record transcript keys.
// Every save gets its own key, so unlike the memory collection there is no
// read-modify-write race between concurrent writers.
type TranscriptService struct {
	store kvstore.Store
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(store kvstore.Store) *TranscriptService {
	return &TranscriptService{store: store}
}

// Save persists one speech-to-text chunk under its own key and returns the
// generated key. A missing session id gets a fresh one so separate unnamed
// recordings don't collapse into a single prefix.
func (s *TranscriptService) Save(ctx context.Context, sessionID, text string) (string, *models.Transcript, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	now := time.Now()
	record := models.Transcript{
		Transcript: text,
		Timestamp:  now.Format(time.RFC3339),
		SessionID:  sessionID,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode transcript: %w", err)
	}

	key := models.TranscriptKey(sessionID, now)
	if err := s.store.Put(ctx, key, data); err != nil {
		recordStoreError("put")
		return "", nil, fmt.Errorf("failed to write transcript: %w", err)
	}

	recordTranscriptSaved()
	return key, &record, nil
}

// List reassembles a session's transcript chunks by enumerating the session
// key prefix. Entries whose value is missing or unparsable are skipped
// rather than failing the whole listing; a stricter mode could fail the
// request here instead.
func (s *TranscriptService) List(ctx context.Context, sessionID string) ([]models.Transcript, error) {
	recordTranscriptListing()

	keys, err := s.store.List(ctx, models.TranscriptPrefix(sessionID))
	if err != nil {
		recordStoreError("list")
		return nil, fmt.Errorf("failed to enumerate transcripts: %w", err)
	}

	sessionLog := logging.WithSession(slog.Default(), sessionID)

	transcripts := make([]models.Transcript, 0, len(keys))
	for _, key := range keys {
		data, err := s.store.Get(ctx, key)
		if err != nil {
			sessionLog.Warn("skipping unreadable transcript entry", "key", key, "error", err)
			recordTranscriptSkipped()
			continue
		}

		var record models.Transcript
		if err := json.Unmarshal(data, &record); err != nil {
			sessionLog.Warn("skipping unparsable transcript entry", "key", key, "error", err)
			recordTranscriptSkipped()
			continue
		}
		transcripts = append(transcripts, record)
	}

	return transcripts, nil
}
