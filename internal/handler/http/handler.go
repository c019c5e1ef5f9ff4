package http

import (
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/service"
)

// Handler serves the diary REST API on top of [service.Services]. Build the
// router with [Handler.Init].
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("diary http handler created")
	return &Handler{services: services, logger: logger}
}
