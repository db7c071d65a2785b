package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/felipe-jimenez-ai/mentoria/models"
	"github.com/felipe-jimenez-ai/mentoria/utils"
)

// FetchTranscriptRequest is the payload for submitting a video.
type FetchTranscriptRequest struct {
	VideoURL string `json:"video_url" validate:"required"`
}

// FetchTranscript handles a new video submission: it resets the caller's
// session and fetches the transcript for the referenced video.
// POST /api/v1/transcripts
func (h *ApplicationHandler) FetchTranscript(c *fiber.Ctx) error {
	payload := new(FetchTranscriptRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request body: %v", err))
	}

	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Validation failed: "+strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	sess := h.Sessions.Attach(c)

	if _, err := h.Service.FetchTranscript(c.Context(), sess, payload.VideoURL); err != nil {
		return utils.RespondWithError(c, utils.StatusFor(err), models.UserMessage(err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, sess.Snapshot())
}
