package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/felipe-jimenez-ai/mentoria/internal/session"
	"github.com/felipe-jimenez-ai/mentoria/internal/studyservice"
)

var validate = validator.New()

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Service  *studyservice.Service
	Sessions *session.Manager
	Logger   *logrus.Logger
}

// NewApplicationHandler creates an ApplicationHandler with the given dependencies.
func NewApplicationHandler(service *studyservice.Service, sessions *session.Manager, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Service:  service,
		Sessions: sessions,
		Logger:   logger,
	}
}
