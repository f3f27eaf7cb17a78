package routes

import (
	"github.com/recinall/IrrigoDash/internal/config"
	"github.com/recinall/IrrigoDash/internal/refresh"
	"github.com/recinall/IrrigoDash/internal/worker"
	"github.com/rs/zerolog"
)

type App struct {
	Rebuilder *refresh.Rebuilder
	Refresher *worker.Refresher
	Config    *config.Config
	logger    zerolog.Logger
}

func New(rb *refresh.Rebuilder, rf *worker.Refresher, cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		rb,
		rf,
		cfg,
		logger,
	}
}
