package handlers

import (
	"log"

	"memomate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MemoryHandler handles memory-related API endpoints
type MemoryHandler struct {
	memoryService *services.MemoryService
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memoryService *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{memoryService: memoryService}
}

// List returns the whole collection, newest first
// GET /api/memories
func (h *MemoryHandler) List(c *fiber.Ctx) error {
	memories, err := h.memoryService.List(c.Context())
	if err != nil {
		log.Printf("❌ [MEMORY-API] Failed to list memories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(memories)
}

// CreateMemoryRequest is the POST /api/memories body.
// Blank text is accepted as-is; tags and priority default when omitted.
type CreateMemoryRequest struct {
	Text     string   `json:"text"`
	Tags     []string `json:"tags"`
	Priority string   `json:"priority"`
}

// Create adds a new memory and returns the created record
// POST /api/memories
func (h *MemoryHandler) Create(c *fiber.Ctx) error {
	var req CreateMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	memory, err := h.memoryService.Add(c.Context(), req.Text, req.Tags, req.Priority)
	if err != nil {
		log.Printf("❌ [MEMORY-API] Failed to create memory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(memory)
}

// Delete removes a memory by exact id match. The delete is idempotent:
// an id with no matching record still reports success.
// DELETE /api/memories?id=...
func (h *MemoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Memory ID required",
		})
	}

	if err := h.memoryService.Delete(c.Context(), id); err != nil {
		log.Printf("❌ [MEMORY-API] Failed to delete memory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
