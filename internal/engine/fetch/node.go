package fetch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/git"
	"github.com/bedrock-fem/bedrock/internal/adapters/logger"
	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetch"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Fetcher, error) {
			scm, err := graft.Dep[ports.SourceControl](ctx)
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
			return NewFetcher(scm, log, tel), nil
		},
	})
}
