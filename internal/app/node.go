package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ngpack/internal/adapters/cas"
	"go.trai.ch/ngpack/internal/adapters/config"
	"go.trai.ch/ngpack/internal/adapters/detector"
	"go.trai.ch/ngpack/internal/adapters/fs"
	"go.trai.ch/ngpack/internal/adapters/linear"
	"go.trai.ch/ngpack/internal/adapters/logger"
	"go.trai.ch/ngpack/internal/adapters/tui"
	"go.trai.ch/ngpack/internal/adapters/watcher"
	"go.trai.ch/ngpack/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components is everything main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.StorageNodeID,
			fs.HasherNodeID,
			config.LoaderNodeID,
			config.SettingsNodeID,
			logger.NodeID,
			cas.NodeID,
			linear.NodeID,
			tui.NodeID,
			detector.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			storage, err := graft.Dep[ports.Storage](ctx)
			if err != nil {
				return nil, err
			}
			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cas.Store](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			live, err := graft.Dep[tui.Factory](ctx)
			if err != nil {
				return nil, err
			}
			mode, err := graft.Dep[detector.OutputMode](ctx)
			if err != nil {
				return nil, err
			}
			watchers, err := graft.Dep[watcher.Factory](ctx)
			if err != nil {
				return nil, err
			}

			a := New(storage, loader, log, store, digester, renderer, settings).
				WithOutputMode(mode).
				WithLiveRenderer(live).
				WithWatcherFactory(watchers)
			return &Components{App: a, Logger: log}, nil
		},
	})
}
