package provision

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bedrock-fem/bedrock/internal/adapters/logger"
	"github.com/bedrock-fem/bedrock/internal/adapters/sysdeps"
	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner Graft node.
const NodeID graft.ID = "engine.provision"

func init() {
	graft.Register(graft.Node[*Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{sysdeps.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Provisioner, error) {
			detection, err := graft.Dep[*sysdeps.Detection](ctx)
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
			return NewProvisioner(detection.Manager, log, tel), nil
		},
	})
}
