package handlers

import (
	"log"

	"memomate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TranscriptHandler handles transcript-related API endpoints
type TranscriptHandler struct {
	transcriptService *services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(transcriptService *services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// SaveTranscriptRequest is the POST /api/save-transcript body
type SaveTranscriptRequest struct {
	Transcript string `json:"transcript"`
	SessionID  string `json:"sessionId"`
}

// Save persists one speech-to-text chunk under its own store key
// POST /api/save-transcript
func (h *TranscriptHandler) Save(c *fiber.Ctx) error {
	var req SaveTranscriptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	key, record, err := h.transcriptService.Save(c.Context(), req.SessionID, req.Transcript)
	if err != nil {
		log.Printf("❌ [TRANSCRIPT-API] Failed to save transcript: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"key":       key,
		"sessionId": record.SessionID,
	})
}

// List returns all chunks saved for a session. Ordering follows store key
// enumeration; an unknown session yields an empty array.
// GET /api/get-transcripts?sessionId=...
func (h *TranscriptHandler) List(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")

	transcripts, err := h.transcriptService.List(c.Context(), sessionID)
	if err != nil {
		log.Printf("❌ [TRANSCRIPT-API] Failed to list transcripts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(transcripts)
}
