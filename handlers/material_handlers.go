package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/felipe-jimenez-ai/mentoria/models"
	"github.com/felipe-jimenez-ai/mentoria/utils"
)

// GenerateMaterialRequest is the payload for requesting study material.
type GenerateMaterialRequest struct {
	Kind string `json:"kind" validate:"required,oneof=summary key_points questions"`
}

// GenerateMaterial builds a prompt from the session's transcript and asks
// the AI provider for the requested kind of study material.
// POST /api/v1/materials
func (h *ApplicationHandler) GenerateMaterial(c *fiber.Ctx) error {
	payload := new(GenerateMaterialRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request body: %v", err))
	}

	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Validation failed: "+strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	sess := h.Sessions.Attach(c)

	if _, err := h.Service.GenerateMaterial(c.Context(), sess, models.MaterialKind(payload.Kind)); err != nil {
		return utils.RespondWithError(c, utils.StatusFor(err), models.UserMessage(err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, sess.Snapshot())
}

// DownloadMaterial streams the session's current generated material as a
// plain-text attachment named after the material kind.
// GET /api/v1/materials/download
func (h *ApplicationHandler) DownloadMaterial(c *fiber.Ctx) error {
	sess := h.Sessions.Attach(c)

	material, err := sess.Material()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, "No generated material to download yet.")
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", material.Kind.Filename()))
	return c.SendString(material.Content)
}
