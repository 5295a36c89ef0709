// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/crackingshells/hatch-registry/internal/adapters/clock"
	_ "github.com/crackingshells/hatch-registry/internal/adapters/config"
	_ "github.com/crackingshells/hatch-registry/internal/adapters/fs"
	_ "github.com/crackingshells/hatch-registry/internal/adapters/logger"
	_ "github.com/crackingshells/hatch-registry/internal/adapters/registry"
	_ "github.com/crackingshells/hatch-registry/internal/adapters/validator"
	// Register app and engine nodes.
	_ "github.com/crackingshells/hatch-registry/internal/app"
	_ "github.com/crackingshells/hatch-registry/internal/engine/chain"
	_ "github.com/crackingshells/hatch-registry/internal/engine/writer"
)
