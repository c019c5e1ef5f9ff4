package handler

import (
	"github.com/pkms-go/diary-keeper/internal/config"
	"github.com/pkms-go/diary-keeper/internal/handler/http"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/service"
)

// Handlers groups the transport handlers enabled by the server configuration.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
