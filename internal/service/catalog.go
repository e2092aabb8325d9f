package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/repo"
)

type DrinkSearcher interface {
	SearchDrinks(ctx context.Context, query string, from, size int) (int64, []models.Drink, error)
}

// CatalogService is read-only; the catalog is filled by the seeder.
type CatalogService struct {
	Repo   *repo.GormRepo
	Search DrinkSearcher
}

func (s *CatalogService) ListDrinks(ctx context.Context, offset, limit int) (int64, []models.Drink, error) {
	total, items, err := s.Repo.ListDrinks(ctx, offset, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("list drinks: %w: %w", ErrPersistence, err)
	}
	return total, items, nil
}

func (s *CatalogService) GetDrink(ctx context.Context, id uint) (*models.Drink, error) {
	d, err := s.Repo.GetDrink(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("drink %d: %w", id, ErrDrinkNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get drink %d: %w: %w", id, ErrPersistence, err)
	}
	return d, nil
}

func (s *CatalogService) ListSupplements(ctx context.Context, typeID uint) ([]models.Supplement, error) {
	if typeID != 0 {
		ok, err := s.Repo.SupplementTypeExists(ctx, typeID)
		if err != nil {
			return nil, fmt.Errorf("check supplement type %d: %w: %w", typeID, ErrPersistence, err)
		}
		if !ok {
			return nil, fmt.Errorf("supplement type %d: %w", typeID, ErrNotFound)
		}
	}

	items, err := s.Repo.ListSupplements(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("list supplements: %w: %w", ErrPersistence, err)
	}
	return items, nil
}

func (s *CatalogService) ListSupplementTypes(ctx context.Context) ([]models.SupplementType, error) {
	items, err := s.Repo.ListSupplementTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supplement types: %w: %w", ErrPersistence, err)
	}
	return items, nil
}

func (s *CatalogService) SearchDrinks(ctx context.Context, query string, from, size int) (int64, []models.Drink, error) {
	if s.Search == nil {
		return 0, nil, ErrSearchUnavailable
	}
	if strings.TrimSpace(query) == "" {
		return 0, nil, fmt.Errorf("empty search query: %w", ErrInvalidInput)
	}

	total, items, err := s.Search.SearchDrinks(ctx, query, from, size)
	if err != nil {
		return 0, nil, fmt.Errorf("search drinks: %w: %w", ErrPersistence, err)
	}
	return total, items, nil
}
