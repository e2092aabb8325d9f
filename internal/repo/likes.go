package repo

import (
	"context"

	"github.com/AyaAid/Stayabucks/internal/models"
)

func (r *GormRepo) AddLike(ctx context.Context, like *models.Like) error {
	return r.DB.WithContext(ctx).Create(like).Error
}

func (r *GormRepo) CountLikes(ctx context.Context, drinkCreatedID uint) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Like{}).
		Where("drink_created_id = ?", drinkCreatedID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
