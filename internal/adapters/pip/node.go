package pip

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/shell"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the pip installer Graft node.
const NodeID graft.ID = "adapter.package_installer"

func init() {
	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor), nil
		},
	})
}
