package handlers

import (
	"memomate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SummaryHandler handles the summarization stub endpoint
type SummaryHandler struct {
	summaryService *services.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummarizeRequest is the POST /api/summarize body
type SummarizeRequest struct {
	Text string `json:"text"`
}

// Summarize returns a word count plus a truncated echo of the input.
// POST /api/summarize
func (h *SummaryHandler) Summarize(c *fiber.Ctx) error {
	var req SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(fiber.Map{
		"summary": h.summaryService.Summarize(req.Text),
	})
}
