package sysdeps

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/shell"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the system package manager Graft node.
const NodeID graft.ID = "adapter.system_packages"

func init() {
	graft.Register(graft.Node[*Detection]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Detection, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			// The wrapper stays non-nil even when no manager was found;
			// the provisioner handles the nil Manager inside.
			return &Detection{Manager: Detect(executor)}, nil
		},
	})
}
