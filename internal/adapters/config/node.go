package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/adapters/fs"
	"go.trai.ch/ngpack/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the manifest loader Graft node.
	LoaderNodeID graft.ID = "adapter.config.loader"
	// SettingsNodeID is the unique identifier for the environment settings Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FsNodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys), nil
		},
	})

	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings()
		},
	})
}
