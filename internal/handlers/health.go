package handlers

import (
	"context"
	"time"

	"memomate/internal/kvstore"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	store kvstore.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store kvstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Handle responds with server health status including store reachability
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	storeStatus := "ok"
	status := "healthy"
	if err := h.store.Ping(ctx); err != nil {
		storeStatus = err.Error()
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"store":     storeStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
