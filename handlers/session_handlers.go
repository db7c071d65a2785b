package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe-jimenez-ai/mentoria/utils"
)

// GetSession returns the caller's current session snapshot so the UI can
// render state, transcript, and material after a reload.
// GET /api/v1/session
func (h *ApplicationHandler) GetSession(c *fiber.Ctx) error {
	sess := h.Sessions.Attach(c)
	return utils.RespondWithJSON(c, fiber.StatusOK, sess.Snapshot())
}
