package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/core/ports"
)

const (
	// FsNodeID is the unique identifier for the underlying file system Graft node.
	FsNodeID graft.ID = "adapter.fs.afero"
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// StorageNodeID is the unique identifier for the storage Graft node.
	StorageNodeID graft.ID = "adapter.fs.storage"
	// HasherNodeID is the unique identifier for the digester Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        FsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	// Walker Node (Concrete implementation needed by Storage and the watcher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FsNodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.Storage]{
		ID:        StorageNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FsNodeID, WalkerNodeID},
		Run: func(ctx context.Context) (ports.Storage, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewStorage(fsys, walker), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FsNodeID},
		Run: func(ctx context.Context) (ports.Digester, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(fsys), nil
		},
	})
}
