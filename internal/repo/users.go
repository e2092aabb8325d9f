package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AyaAid/Stayabucks/internal/models"
)

func (r *GormRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.User{}, id)
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUserIfMissing inserts u unless a user with the same email exists, in which
// case u is filled from the stored row. It reports whether a row was inserted.
func (r *GormRepo) CreateUserIfMissing(ctx context.Context, u *models.User) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			*u = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
