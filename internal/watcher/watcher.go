package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/logger"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/internal/storage"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/publishers"
	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/storefront"
)

// CategoryLister is the slice of the storefront client the watcher needs.
type CategoryLister interface {
	GetFeaturedCategories(ctx context.Context, country string) ([]storefront.FeaturedCategory, error)
}

// EventPublisher fans out featured-item events downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Service polls the storefront's featured categories and announces items it
// has not published before.
type Service struct {
	client  CategoryLister
	sink    EventPublisher
	store   storage.Store
	log     logger.Logger
	country string
}

// NewService wires a watcher service.
func NewService(client CategoryLister, sink EventPublisher, store storage.Store, log logger.Logger, country string) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		client:  client,
		sink:    sink,
		store:   store,
		log:     log,
		country: country,
	}
}

// RunOnce performs one poll pass: fetch categories, publish unseen items,
// mark published items as seen. Items are marked only after every sink
// accepted them, so partially failed items are retried on the next pass.
func (s *Service) RunOnce(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("watcher service is not initialized")
	}

	categories, err := s.client.GetFeaturedCategories(ctx, s.country)
	if err != nil {
		return fmt.Errorf("fetch featured categories: %w", err)
	}

	var errs []error
	published := 0
	skipped := 0

	for _, cat := range categories {
		for _, item := range cat.Items {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			key := itemKey(cat.ID, item.ID)
			seen, err := s.store.SeenItem(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("check item %s: %w", key, err))
				continue
			}
			if seen {
				skipped++
				continue
			}

			evt := publishers.NewEvent(cat.ID, cat.Name, s.country, item)
			count, err := s.sink.Publish(ctx, evt)
			if err != nil {
				errs = append(errs, fmt.Errorf("publish item %s: %w", key, err))
				continue
			}
			if count > 0 {
				published++
			}

			if err := s.store.MarkItem(key); err != nil {
				errs = append(errs, fmt.Errorf("mark item %s: %w", key, err))
			}
		}
	}

	s.log.InfoObj("watch pass completed", "watch_result", map[string]any{
		"categories": len(categories),
		"published":  published,
		"skipped":    skipped,
		"errors":     len(errs),
	})

	return errors.Join(errs...)
}

func itemKey(categoryID string, appID int) string {
	return fmt.Sprintf("%s/%d", categoryID, appID)
}
