package http

import (
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// loc decides which month is "current" when a report request omits it.
	loc      *time.Location
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, loc *time.Location, logger *logger.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		loc:      loc,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
