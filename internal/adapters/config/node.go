package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the profile loader Graft node.
const NodeID graft.ID = "adapter.profile"

func init() {
	graft.Register(graft.Node[*Profile]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Profile, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return Load(cwd)
		},
	})
}
