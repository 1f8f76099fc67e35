package api

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"altboard/internal/config"
	"altboard/internal/db"
	"altboard/internal/metrics"
	"altboard/internal/models"
	"altboard/internal/validation"
	"altboard/internal/webhook"
)

// SuggestionHandler handles public suggestion submissions.
type SuggestionHandler struct {
	db   *db.DB
	cfg  *config.Config
	hook *webhook.Client
}

// NewSuggestionHandler creates a new suggestion handler.
func NewSuggestionHandler(database *db.DB, cfg *config.Config, hook *webhook.Client) *SuggestionHandler {
	return &SuggestionHandler{db: database, cfg: cfg, hook: hook}
}

// Submit accepts a new suggestion. Validation runs first, then the quota
// check and insert happen atomically in the store. The webhook notice is
// fire-and-forget.
func (h *SuggestionHandler) Submit(c fiber.Ctx) error {
	var payload validation.SuggestionPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		metrics.RecordSubmission("invalid")
		return failure(c, fiber.StatusBadRequest, "Missing required fields")
	}

	if errs := validation.ValidateSuggestion(&payload); len(errs) > 0 {
		metrics.RecordSubmission("invalid")
		// Empty required fields are reported before URL problems; the API
		// keeps the two coarse messages clients already match on.
		if errs[0].Field == "url" {
			return failure(c, fiber.StatusBadRequest, "Invalid URL format")
		}
		return failure(c, fiber.StatusBadRequest, "Missing required fields")
	}

	// The submitter address comes from connection info (or a trusted proxy
	// header), never from the payload.
	ip := c.IP()
	if ip == "" {
		ip = "unknown"
	}

	suggestion := &models.Suggestion{
		EstablishedPlatform: strings.TrimSpace(payload.EstablishedPlatform),
		AlternativeName:     strings.TrimSpace(payload.AlternativeName),
		URL:                 strings.TrimSpace(payload.URL),
		Description:         strings.TrimSpace(payload.Description),
		Tag:                 strings.TrimSpace(payload.Tag),
		SubmitterIP:         ip,
	}
	if email := strings.TrimSpace(payload.SubmitterEmail); email != "" {
		suggestion.SubmitterEmail = &email
	}

	err := h.db.CreateSuggestion(c.Context(), suggestion, h.cfg.SubmissionLimit, h.cfg.SubmissionWindow)
	if errors.Is(err, db.ErrSubmissionLimit) {
		metrics.RecordSubmission("rate_limited")
		return failure(c, fiber.StatusTooManyRequests, "Too many submissions. Please try again tomorrow.")
	}
	if err != nil {
		log.Printf("Failed to insert suggestion: %v", err)
		metrics.RecordSubmission("error")
		return failure(c, fiber.StatusInternalServerError, "Failed to submit suggestion. Please try again.")
	}

	h.hook.NotifySuggestionSubmitted(suggestion)
	metrics.RecordSubmission("accepted")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Thank you! Your suggestion will be reviewed shortly.",
		"suggestionId": suggestion.ID,
	})
}
