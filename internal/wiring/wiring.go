// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ngpack/internal/adapters/cas"
	_ "go.trai.ch/ngpack/internal/adapters/config"
	_ "go.trai.ch/ngpack/internal/adapters/detector"
	_ "go.trai.ch/ngpack/internal/adapters/fs"
	_ "go.trai.ch/ngpack/internal/adapters/linear"
	_ "go.trai.ch/ngpack/internal/adapters/logger"
	_ "go.trai.ch/ngpack/internal/adapters/tui"
	_ "go.trai.ch/ngpack/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ngpack/internal/app"
)
