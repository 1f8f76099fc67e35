package api

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"altboard/internal/db"
	"altboard/internal/email"
	"altboard/internal/metrics"
	"altboard/internal/models"
)

// AdminHandler handles listing and reviewing suggestions.
type AdminHandler struct {
	db       *db.DB
	notifier *email.Notifier
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, notifier *email.Notifier) *AdminHandler {
	return &AdminHandler{db: database, notifier: notifier}
}

// List returns suggestions, optionally filtered by status, newest first.
func (h *AdminHandler) List(c fiber.Ctx) error {
	status := c.Query("status", "all")
	if status != "all" && !models.ValidStatus(status) {
		return adminError(c, fiber.StatusBadRequest, `Invalid status filter. Must be "all", "pending", "approved" or "rejected"`)
	}

	suggestions, err := h.db.ListSuggestions(c.Context(), status)
	if err != nil {
		log.Printf("Failed to list suggestions: %v", err)
		return adminError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// Ensure a non-null array in JSON
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}

	return c.JSON(fiber.Map{
		"suggestions": suggestions,
	})
}

// reviewRequest is the PATCH body for a review decision.
type reviewRequest struct {
	Status     string `json:"status"`
	ReviewedBy string `json:"reviewedBy"`
}

// Review transitions a pending suggestion to approved or rejected. Decided
// suggestions are final; a second decision is refused.
func (h *AdminHandler) Review(c fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return adminError(c, fiber.StatusBadRequest, "Missing suggestion ID")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return adminError(c, fiber.StatusBadRequest, "Invalid suggestion ID")
	}

	var body reviewRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return adminError(c, fiber.StatusBadRequest, `Invalid status. Must be "approved" or "rejected"`)
	}

	if !models.ValidDecision(body.Status) {
		return adminError(c, fiber.StatusBadRequest, `Invalid status. Must be "approved" or "rejected"`)
	}

	var reviewedBy *string
	if name := strings.TrimSpace(body.ReviewedBy); name != "" {
		reviewedBy = &name
	}

	err = h.db.ReviewSuggestion(c.Context(), id, body.Status, reviewedBy)
	if errors.Is(err, db.ErrSuggestionNotFound) {
		return adminError(c, fiber.StatusNotFound, "Suggestion not found")
	}
	if errors.Is(err, db.ErrAlreadyReviewed) {
		return adminError(c, fiber.StatusConflict, "Suggestion has already been reviewed")
	}
	if err != nil {
		log.Printf("Failed to review suggestion %s: %v", id, err)
		return adminError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	metrics.RecordReview(body.Status)

	// Best-effort submitter notification; the decision stands either way.
	if suggestion, err := h.db.GetSuggestionByID(c.Context(), id); err == nil {
		switch body.Status {
		case models.StatusApproved:
			h.notifier.NotifySuggestionApproved(suggestion)
		case models.StatusRejected:
			h.notifier.NotifySuggestionRejected(suggestion)
		}
	} else {
		log.Printf("Failed to load suggestion %s for notification: %v", id, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Suggestion " + body.Status,
	})
}
