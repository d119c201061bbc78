package updater

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/git"
	"github.com/bedrock-fem/bedrock/internal/adapters/logger"
	"github.com/bedrock-fem/bedrock/internal/adapters/state"
	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
	"github.com/bedrock-fem/bedrock/internal/engine/installer"
)

// NodeID is the unique identifier for the updater Graft node.
const NodeID graft.ID = "engine.updater"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, state.NodeID, installer.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Updater, error) {
			scm, err := graft.Dep[ports.SourceControl](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			inst, err := graft.Dep[*installer.Installer](ctx)
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
			return NewUpdater(scm, store, inst, log, tel), nil
		},
	})
}
