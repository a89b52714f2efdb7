package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"memomate/internal/kvstore"
	"memomate/internal/models"
)

func TestTranscriptService_SaveAndList(t *testing.T) {
	store := kvstore.NewMemory()
	s := NewTranscriptService(store)
	ctx := context.Background()

	key1, rec1, err := s.Save(ctx, "s1", "hello")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(key1, "transcript-s1-") {
		t.Errorf("Unexpected key format: %s", key1)
	}
	if rec1.SessionID != "s1" || rec1.Transcript != "hello" {
		t.Errorf("Unexpected record: %+v", rec1)
	}

	// Second save in the same session gets its own key
	time.Sleep(2 * time.Millisecond)
	key2, _, err := s.Save(ctx, "s1", "world")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if key1 == key2 {
		t.Errorf("Expected unique keys per save, both were %s", key1)
	}

	transcripts, err := s.List(ctx, "s1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(transcripts) != 2 {
		t.Fatalf("Expected 2 transcripts, got %d", len(transcripts))
	}

	// Order is unconstrained; both chunks must be present
	seen := map[string]bool{}
	for _, tr := range transcripts {
		seen[tr.Transcript] = true
	}
	if !seen["hello"] || !seen["world"] {
		t.Errorf("Missing chunks in listing: %+v", transcripts)
	}
}

func TestTranscriptService_ListUnusedSession(t *testing.T) {
	s := NewTranscriptService(kvstore.NewMemory())

	transcripts, err := s.List(context.Background(), "never-used")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if transcripts == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(transcripts) != 0 {
		t.Errorf("Expected empty listing, got %d records", len(transcripts))
	}
}

func TestTranscriptService_GeneratedSessionID(t *testing.T) {
	s := NewTranscriptService(kvstore.NewMemory())

	_, rec, err := s.Save(context.Background(), "", "hello")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.SessionID == "" {
		t.Error("Expected a generated session id")
	}
}

func TestTranscriptService_SkipsUnparsableEntries(t *testing.T) {
	store := kvstore.NewMemory()
	s := NewTranscriptService(store)
	ctx := context.Background()

	if _, _, err := s.Save(ctx, "s1", "good chunk"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Plant a corrupt value under the session prefix
	corruptKey := models.TranscriptKey("s1", time.Now().Add(time.Second))
	if err := store.Put(ctx, corruptKey, []byte("{not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	transcripts, err := s.List(ctx, "s1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(transcripts) != 1 {
		t.Fatalf("Expected corrupt entry to be skipped, got %d records", len(transcripts))
	}
	if transcripts[0].Transcript != "good chunk" {
		t.Errorf("Unexpected surviving record: %+v", transcripts[0])
	}
}
