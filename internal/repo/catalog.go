package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AyaAid/Stayabucks/internal/models"
)

func (r *GormRepo) DrinkPrice(ctx context.Context, drinkID uint) (float64, bool, error) {
	var drink models.Drink
	err := r.DB.WithContext(ctx).Select("id", "price").Where("id = ?", drinkID).Take(&drink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return drink.Price, true, nil
}

func (r *GormRepo) SupplementPrices(ctx context.Context, ids []uint) (map[uint]float64, error) {
	prices := make(map[uint]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	var rows []models.Supplement
	if err := r.DB.WithContext(ctx).Select("id", "price").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		prices[s.ID] = s.Price
	}
	return prices, nil
}

func (r *GormRepo) DrinkExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Drink{}, id)
}

func (r *GormRepo) SupplementTypeExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.SupplementType{}, id)
}

// MissingSupplements returns the ids from the input that have no supplement row, in input order.
func (r *GormRepo) MissingSupplements(ctx context.Context, ids []uint) ([]uint, error) {
	prices, err := r.SupplementPrices(ctx, ids)
	if err != nil {
		return nil, err
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *GormRepo) GetDrink(ctx context.Context, id uint) (*models.Drink, error) {
	var drink models.Drink
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&drink).Error; err != nil {
		return nil, notFound(err)
	}
	return &drink, nil
}

func (r *GormRepo) ListDrinks(ctx context.Context, offset, limit int) (int64, []models.Drink, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Drink{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Drink, 0, limit)
	if err := r.DB.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) ListAllDrinks(ctx context.Context) ([]models.Drink, error) {
	var items []models.Drink
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListSupplements filters by type when typeID is non-zero.
func (r *GormRepo) ListSupplements(ctx context.Context, typeID uint) ([]models.Supplement, error) {
	q := r.DB.WithContext(ctx).Model(&models.Supplement{})
	if typeID != 0 {
		q = q.Where("type_id = ?", typeID)
	}

	items := []models.Supplement{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListSupplementTypes(ctx context.Context) ([]models.SupplementType, error) {
	items := []models.SupplementType{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) UpsertSupplementType(ctx context.Context, st *models.SupplementType) error {
	return r.DB.WithContext(ctx).Where("name = ?", st.Name).FirstOrCreate(st).Error
}

// UpsertDrink matches on name and refreshes description and price of an existing row.
func (r *GormRepo) UpsertDrink(ctx context.Context, d *models.Drink) error {
	return r.DB.WithContext(ctx).
		Where("name = ?", d.Name).
		Assign(map[string]any{"description": d.Description, "price": d.Price}).
		FirstOrCreate(d).Error
}

func (r *GormRepo) UpsertSupplement(ctx context.Context, s *models.Supplement) error {
	return r.DB.WithContext(ctx).
		Where("name = ?", s.Name).
		Assign(map[string]any{"price": s.Price, "type_id": s.TypeID}).
		FirstOrCreate(s).Error
}
