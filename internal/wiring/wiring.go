// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lnms-install/internal/adapters/descriptor"
	_ "go.trai.ch/lnms-install/internal/adapters/hostenv"
	_ "go.trai.ch/lnms-install/internal/adapters/logger"
	_ "go.trai.ch/lnms-install/internal/adapters/probe"
	_ "go.trai.ch/lnms-install/internal/adapters/report"
	_ "go.trai.ch/lnms-install/internal/adapters/systemd"
	// Register app and engine nodes.
	_ "go.trai.ch/lnms-install/internal/app"
	_ "go.trai.ch/lnms-install/internal/engine/planner"
	_ "go.trai.ch/lnms-install/internal/engine/resolver"
)
