package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AyaAid/Stayabucks/internal/models"
)

var ErrNotFound = errors.New("record not found")

// GormRepo is the persistence gateway. Every call scopes its work to ctx and
// hands the connection back to the pool before returning.
type GormRepo struct {
	DB *gorm.DB
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(models.All()...)
}

func (r *GormRepo) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
