package service

import (
	"context"
	"fmt"

	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/mykafka"
	"github.com/AyaAid/Stayabucks/internal/repo"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

type LikeService struct {
	Repo   *repo.GormRepo
	Events mykafka.Publisher
}

func NewLikeService(r *repo.GormRepo, events mykafka.Publisher) *LikeService {
	if events == nil {
		events = mykafka.NopPublisher{}
	}
	return &LikeService{Repo: r, Events: events}
}

// AddLike records that the user likes a created drink. Repeated likes are kept.
func (s *LikeService) AddLike(ctx context.Context, userID, drinkCreatedID uint) (*models.Like, error) {
	ok, err := s.Repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user %d: %w: %w", userID, ErrPersistence, err)
	}
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}

	ok, err = s.Repo.CreatedDrinkExists(ctx, drinkCreatedID)
	if err != nil {
		return nil, fmt.Errorf("check created drink %d: %w: %w", drinkCreatedID, ErrPersistence, err)
	}
	if !ok {
		return nil, fmt.Errorf("created drink %d: %w", drinkCreatedID, ErrCreatedDrinkNotFound)
	}

	like := &models.Like{UserID: userID, DrinkCreatedID: drinkCreatedID}
	if err := s.Repo.AddLike(ctx, like); err != nil {
		return nil, fmt.Errorf("insert like: %w: %w", ErrPersistence, err)
	}

	ev := mykafka.DrinkLikedEvent{
		LikeID:         like.ID,
		UserID:         like.UserID,
		DrinkCreatedID: like.DrinkCreatedID,
		CreatedAt:      like.CreatedAt,
	}
	if err := s.Events.PublishEvent(ctx, mykafka.TopicDrinkLiked, fmt.Sprint(drinkCreatedID), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_failed", "topic", mykafka.TopicDrinkLiked, "like_id", like.ID, "error", err)
	}

	return like, nil
}

func (s *LikeService) CountLikes(ctx context.Context, drinkCreatedID uint) (int64, error) {
	ok, err := s.Repo.CreatedDrinkExists(ctx, drinkCreatedID)
	if err != nil {
		return 0, fmt.Errorf("check created drink %d: %w: %w", drinkCreatedID, ErrPersistence, err)
	}
	if !ok {
		return 0, fmt.Errorf("created drink %d: %w", drinkCreatedID, ErrCreatedDrinkNotFound)
	}

	n, err := s.Repo.CountLikes(ctx, drinkCreatedID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w: %w", ErrPersistence, err)
	}
	return n, nil
}
