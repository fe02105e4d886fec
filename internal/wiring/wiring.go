// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/endotarter/internal/adapters/cache"
	_ "go.trai.ch/endotarter/internal/adapters/config"
	_ "go.trai.ch/endotarter/internal/adapters/dump"
	_ "go.trai.ch/endotarter/internal/adapters/logger"
	_ "go.trai.ch/endotarter/internal/adapters/nationstates"
	_ "go.trai.ch/endotarter/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/endotarter/internal/app"
)
