package installer

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/git"
	"github.com/bedrock-fem/bedrock/internal/adapters/logger"
	"github.com/bedrock-fem/bedrock/internal/adapters/pip"
	"github.com/bedrock-fem/bedrock/internal/adapters/shell"
	"github.com/bedrock-fem/bedrock/internal/adapters/state"
	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pip.NodeID, shell.NodeID, git.NodeID, state.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Installer, error) {
			installer, err := graft.Dep[ports.PackageInstaller](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			scm, err := graft.Dep[ports.SourceControl](ctx)
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
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(installer, executor, scm, store, log, tel), nil
		},
	})
}
