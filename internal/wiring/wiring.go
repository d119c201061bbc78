// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bedrock-fem/bedrock/internal/adapters/config"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/git"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/logger"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/pip"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/shell"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/state"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/sysdeps"
	_ "github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/bedrock-fem/bedrock/internal/app"
	_ "github.com/bedrock-fem/bedrock/internal/engine/fetch"
	_ "github.com/bedrock-fem/bedrock/internal/engine/installer"
	_ "github.com/bedrock-fem/bedrock/internal/engine/provision"
	_ "github.com/bedrock-fem/bedrock/internal/engine/script"
	_ "github.com/bedrock-fem/bedrock/internal/engine/updater"
)
