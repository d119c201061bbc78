package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/config"
	"github.com/bedrock-fem/bedrock/internal/adapters/logger"
	"github.com/bedrock-fem/bedrock/internal/adapters/state"
	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
	"github.com/bedrock-fem/bedrock/internal/engine/fetch"
	"github.com/bedrock-fem/bedrock/internal/engine/installer"
	"github.com/bedrock-fem/bedrock/internal/engine/provision"
	"github.com/bedrock-fem/bedrock/internal/engine/script"
	"github.com/bedrock-fem/bedrock/internal/engine/updater"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			provision.NodeID,
			fetch.NodeID,
			installer.NodeID,
			updater.NodeID,
			script.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			profile, err := graft.Dep[*config.Profile](ctx)
			if err != nil {
				return nil, err
			}
			provisioner, err := graft.Dep[*provision.Provisioner](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[*fetch.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			inst, err := graft.Dep[*installer.Installer](ctx)
			if err != nil {
				return nil, err
			}
			upd, err := graft.Dep[*updater.Updater](ctx)
			if err != nil {
				return nil, err
			}
			generator, err := graft.Dep[*script.Generator](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(profile, provisioner, fetcher, inst, upd, generator, store, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Telemetry: tel}, nil
		},
	})
}
