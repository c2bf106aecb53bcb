package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/adapters/config"
	"go.trai.ch/ngpack/internal/adapters/fs"
)

// NodeID is the unique identifier for the package record store Graft node.
const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FsNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Store, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fsys, settings.StateDir), nil
		},
	})
}
