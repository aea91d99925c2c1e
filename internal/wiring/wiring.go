// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/emforge/internal/adapters/config"
	_ "go.trai.ch/emforge/internal/adapters/emsdk"
	_ "go.trai.ch/emforge/internal/adapters/logger"
	_ "go.trai.ch/emforge/internal/adapters/shell"
	_ "go.trai.ch/emforge/internal/adapters/store"
	_ "go.trai.ch/emforge/internal/adapters/telemetry"
	_ "go.trai.ch/emforge/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/emforge/internal/app"
	_ "go.trai.ch/emforge/internal/engine/invoker"
)
