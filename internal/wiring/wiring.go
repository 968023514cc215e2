// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pacaudit/internal/adapters/config"
	_ "go.trai.ch/pacaudit/internal/adapters/elf"
	_ "go.trai.ch/pacaudit/internal/adapters/export"
	_ "go.trai.ch/pacaudit/internal/adapters/fs"
	_ "go.trai.ch/pacaudit/internal/adapters/logger"
	_ "go.trai.ch/pacaudit/internal/adapters/pacman"
	_ "go.trai.ch/pacaudit/internal/adapters/progress"
	_ "go.trai.ch/pacaudit/internal/adapters/report"
	_ "go.trai.ch/pacaudit/internal/adapters/shell"
	_ "go.trai.ch/pacaudit/internal/adapters/systemd"
	// Register app and engine nodes.
	_ "go.trai.ch/pacaudit/internal/app"
	_ "go.trai.ch/pacaudit/internal/engine/orphan"
	_ "go.trai.ch/pacaudit/internal/engine/pipeline"
)
