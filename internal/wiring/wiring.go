// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strata/internal/adapters/logger"
	_ "go.trai.ch/strata/internal/adapters/manifest"
	_ "go.trai.ch/strata/internal/adapters/registry"
	_ "go.trai.ch/strata/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/strata/internal/app"
)
