package services

import (
	"context"
	"fmt"

	"github.com/lvtran/mindbrew/internal/client/client"
	"github.com/lvtran/mindbrew/internal/client/models"
	"github.com/lvtran/mindbrew/internal/logging"
)

// CatalogService fetches stores and drinks from the storefront API.
type CatalogService struct {
	api client.Client
	log logging.Logger
}

func NewCatalogService(api client.Client, log logging.Logger) *CatalogService {
	return &CatalogService{api: api, log: log}
}

// Stores returns every cafe known to the storefront.
func (s *CatalogService) Stores(ctx context.Context) ([]models.Store, error) {
	stores, err := s.api.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list stores: %w", err)
	}
	return stores, nil
}

// Items returns the full drink list.
func (s *CatalogService) Items(ctx context.Context) ([]models.Item, error) {
	items, err := s.api.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list items: %w", err)
	}
	return items, nil
}

// ItemsForStore filters the drink list down to one store's menu.
func (s *CatalogService) ItemsForStore(ctx context.Context, storeID string) ([]models.Item, error) {
	items, err := s.api.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list items: %w", err)
	}
	menu := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.StoreID == storeID {
			menu = append(menu, it)
		}
	}
	return menu, nil
}
