package handlers

import (
	"github.com/demanda-dev/demanda/internal/auth"
	"github.com/demanda-dev/demanda/internal/config"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler carries the dependencies every endpoint needs: the database
// handle, the immutable application config and the structured logger.
// Internal failure detail goes to the logger only; clients always get a
// short localized message.
type Handler struct {
	db     *gorm.DB
	cfg    *config.Config
	codec  auth.Codec
	logger zerolog.Logger
}

func New(database *gorm.DB, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		db:     database,
		cfg:    cfg,
		codec:  auth.NewCodec(cfg.JWTSecret),
		logger: logger,
	}
}
