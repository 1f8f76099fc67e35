package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"altboard/internal/db"
)

// ProbeHandler serves the liveness and readiness endpoints. Deployments gate
// traffic on readiness, which requires a reachable database; liveness only
// says the process is up.
type ProbeHandler struct {
	db *db.DB
}

func NewProbeHandler(database *db.DB) *ProbeHandler {
	return &ProbeHandler{db: database}
}

// Liveness answers /healthz. It never touches the database, so a stuck pool
// does not get the process restarted.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness answers /readyz with a database ping. A 503 here tells the load
// balancer to stop routing submissions to this instance.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		log.Printf("Readiness probe failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "database unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
