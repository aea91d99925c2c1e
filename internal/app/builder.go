package app

import (
	"go.trai.ch/emforge/internal/adapters/config"
	"go.trai.ch/emforge/internal/core/ports"
)

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Defaults *config.Loader
}
