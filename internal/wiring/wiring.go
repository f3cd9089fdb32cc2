// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cxpack/internal/adapters/archive"
	_ "go.trai.ch/cxpack/internal/adapters/cas"
	_ "go.trai.ch/cxpack/internal/adapters/config"
	_ "go.trai.ch/cxpack/internal/adapters/fs"
	_ "go.trai.ch/cxpack/internal/adapters/logger"
	_ "go.trai.ch/cxpack/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/cxpack/internal/app"
	_ "go.trai.ch/cxpack/internal/engine/composer"
	_ "go.trai.ch/cxpack/internal/engine/page"
)
