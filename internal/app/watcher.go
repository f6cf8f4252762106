package app

import (
	"context"
	"fmt"
	"time"

	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/config"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/logger"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/storage"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/watcher"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/httpclient"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/publishers"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/storefront"
)

// Watcher represents the featured-items watcher runtime. It wires the
// storefront client, the seen-item store, and the publisher fanout, and runs
// the poll loop.
type Watcher struct {
	cfg          *config.Config
	fanout       *publishers.Fanout
	watchService *watcher.Service
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
}

// NewWatcher builds a watcher runtime from config files.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		ItemTTL:         cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"item_ttl_seconds":         int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	client := storefront.New(
		storefront.WithHTTPClient(httpclient.NewRestyClient(cfg.RequestTimeout)),
		storefront.WithBaseURL(cfg.StoreBaseURL),
		storefront.WithLogger(log),
	)

	watchService := watcher.NewService(client, fanout, store, log, cfg.CountryCode)

	return &Watcher{
		cfg:          cfg,
		fanout:       fanout,
		watchService: watchService,
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.watchService == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.closeStore()

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"publishers_count": w.fanout.Size(),
		"country_code":     w.cfg.CountryCode,
		"poll_interval":    w.pollInterval.String(),
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial watch pass failed", "error", err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled watch pass failed", "error", err)
			}
		}
	}
}

// runOnce performs a single poll pass.
func (w *Watcher) runOnce(ctx context.Context) error {
	start := time.Now()
	if err := w.watchService.RunOnce(ctx); err != nil {
		return err
	}
	w.log.DebugObj("watch pass timing", "watch_meta", map[string]any{
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (w *Watcher) closeStore() {
	if w == nil || w.store == nil {
		return
	}
	if err := w.store.Close(); err != nil {
		w.log.ErrorObj("storage close failed", "error", err)
	}
}
