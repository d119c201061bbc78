package git

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/shell"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the source control Graft node.
const NodeID graft.ID = "adapter.source_control"

func init() {
	graft.Register(graft.Node[ports.SourceControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceControl, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(exec), nil
		},
	})
}
