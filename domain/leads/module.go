package leads

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flexxoo/website/internal/config"
)

// Module provides the lead submission pipeline
var Module = fx.Module("leads",
	fx.Provide(
		NewStore,
		NewMetrics,
		NewService,
	),
)

// NewStore opens the store selected by LEADS_STORE and closes it on shutdown.
func NewStore(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (Store, error) {
	var store Store
	switch cfg.Storage.Driver {
	case config.StoreMemory:
		store = NewMemoryStore()
	default:
		bs, err := OpenBadgerStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		store = bs
	}
	log.Info("lead store ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("dir", cfg.Storage.DataDir))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
