package repo

import (
	"context"

	"github.com/AyaAid/Stayabucks/internal/models"
)

func (r *GormRepo) CreateDrink(ctx context.Context, d *models.CreatedDrink) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *GormRepo) CreatedDrinkExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.CreatedDrink{}, id)
}

func (r *GormRepo) ListCreatedDrinks(ctx context.Context, userID uint) ([]models.CreatedDrink, error) {
	var items []models.CreatedDrink
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListRecentCreatedDrinks orders by id, which grows with insertion, newest first.
func (r *GormRepo) ListRecentCreatedDrinks(ctx context.Context, userID uint, limit int) ([]models.CreatedDrink, error) {
	var items []models.CreatedDrink
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
