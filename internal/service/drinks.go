package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/mykafka"
	"github.com/AyaAid/Stayabucks/internal/pricing"
	"github.com/AyaAid/Stayabucks/internal/repo"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

type PricedDrink struct {
	DrinkCreatedID uint            `json:"drink_created_id"`
	DrinkID        uint            `json:"drink_id"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

type DrinkService struct {
	Repo    *repo.GormRepo
	Pricing *pricing.Engine
	Events  mykafka.Publisher
}

func NewDrinkService(r *repo.GormRepo, events mykafka.Publisher) *DrinkService {
	if events == nil {
		events = mykafka.NopPublisher{}
	}
	return &DrinkService{Repo: r, Pricing: pricing.NewEngine(r), Events: events}
}

// CreateDrink stores a custom drink for the user. Nothing is written unless the
// user, the base drink and every selected supplement exist.
func (s *DrinkService) CreateDrink(ctx context.Context, userID, drinkID uint, sel pricing.Selection) (*models.CreatedDrink, error) {
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ok, err := s.Repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user %d: %w: %w", userID, ErrPersistence, err)
	}
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}

	ok, err = s.Repo.DrinkExists(ctx, drinkID)
	if err != nil {
		return nil, fmt.Errorf("check drink %d: %w: %w", drinkID, ErrPersistence, err)
	}
	if !ok {
		return nil, fmt.Errorf("drink %d: %w", drinkID, ErrDrinkNotFound)
	}

	if len(sel) > 0 {
		missing, err := s.Repo.MissingSupplements(ctx, sel.IDs())
		if err != nil {
			return nil, fmt.Errorf("check supplements: %w: %w", ErrPersistence, err)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("supplements %v: %w", missing, ErrSupplementNotFound)
		}
	}

	encoded, err := pricing.EncodeSelection(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created := &models.CreatedDrink{UserID: userID, DrinkID: drinkID, SupplementID: encoded}
	if err := s.Repo.CreateDrink(ctx, created); err != nil {
		return nil, fmt.Errorf("insert created drink: %w: %w", ErrPersistence, err)
	}

	ev := mykafka.DrinkCreatedEvent{
		DrinkCreatedID: created.ID,
		UserID:         created.UserID,
		DrinkID:        created.DrinkID,
		Supplements:    sel,
		CreatedAt:      created.CreatedAt,
	}
	if err := s.Events.PublishEvent(ctx, mykafka.TopicDrinkCreated, fmt.Sprint(userID), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_failed", "topic", mykafka.TopicDrinkCreated, "drink_created_id", created.ID, "error", err)
	}

	return created, nil
}

// Quote prices a drink and selection without storing anything.
func (s *DrinkService) Quote(ctx context.Context, drinkID uint, sel pricing.Selection) (decimal.Decimal, error) {
	if err := sel.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	total, err := s.Pricing.TotalPrice(ctx, drinkID, sel)
	switch {
	case err == nil:
		return total, nil
	case errors.Is(err, pricing.ErrUnresolvable):
		return decimal.Zero, fmt.Errorf("drink %d: %w", drinkID, ErrDrinkNotFound)
	default:
		return decimal.Zero, fmt.Errorf("quote: %w: %w", ErrPersistence, err)
	}
}

// ListDrinksWithPrice prices every drink the user created. Records whose base
// drink no longer exists are left out.
func (s *DrinkService) ListDrinksWithPrice(ctx context.Context, userID uint) ([]PricedDrink, error) {
	rows, err := s.Repo.ListCreatedDrinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list created drinks: %w: %w", ErrPersistence, err)
	}

	out := make([]PricedDrink, 0, len(rows))
	for _, row := range rows {
		total, err := s.Pricing.TotalPriceEncoded(ctx, row.DrinkID, row.SupplementID)
		switch {
		case err == nil:
			out = append(out, PricedDrink{DrinkCreatedID: row.ID, DrinkID: row.DrinkID, TotalPrice: total})
		case errors.Is(err, pricing.ErrUnresolvable):
			continue
		case errors.Is(err, pricing.ErrInvalidSelection):
			return nil, fmt.Errorf("created drink %d: %w: %v", row.ID, ErrInvalidInput, err)
		default:
			return nil, fmt.Errorf("price created drink %d: %w: %w", row.ID, ErrPersistence, err)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no drinks for user %d: %w", userID, ErrNotFound)
	}
	return out, nil
}

// ListRecentDrinks returns the user's newest drinks first. A non-positive limit
// means DefaultRecentLimit; anything above MaxRecentLimit is capped.
func (s *DrinkService) ListRecentDrinks(ctx context.Context, userID uint, limit int) ([]models.CreatedDrink, error) {
	limit = ClampLimit(limit)

	rows, err := s.Repo.ListRecentCreatedDrinks(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent drinks: %w: %w", ErrPersistence, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no drinks for user %d: %w", userID, ErrNotFound)
	}
	return rows, nil
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}
