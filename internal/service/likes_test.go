package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/mykafka"
	"github.com/AyaAid/Stayabucks/internal/testdb"
)

func TestLikeService_AddLike(t *testing.T) {
	f := newFixture(t)
	pub := &fakePublisher{}
	svc := NewLikeService(f.repo, pub)
	ctx := context.Background()

	cd := models.CreatedDrink{UserID: f.user.ID, DrinkID: f.drink.ID, SupplementID: "{}"}
	testdb.MustCreate(t, f.db, &cd)

	like, err := svc.AddLike(ctx, f.user.ID, cd.ID)
	require.NoError(t, err)
	assert.NotZero(t, like.ID)

	_, err = svc.AddLike(ctx, f.user.ID, cd.ID)
	require.NoError(t, err)

	n, err := svc.CountLikes(ctx, cd.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.Len(t, pub.events, 2)
	assert.Equal(t, mykafka.TopicDrinkLiked, pub.events[0].Topic)
}

func TestLikeService_AddLike_Preconditions(t *testing.T) {
	f := newFixture(t)
	svc := NewLikeService(f.repo, nil)
	ctx := context.Background()

	cd := models.CreatedDrink{UserID: f.user.ID, DrinkID: f.drink.ID, SupplementID: "{}"}
	testdb.MustCreate(t, f.db, &cd)

	_, err := svc.AddLike(ctx, 99, cd.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.AddLike(ctx, f.user.ID, 99)
	assert.ErrorIs(t, err, ErrCreatedDrinkNotFound)

	_, err = svc.CountLikes(ctx, 99)
	assert.ErrorIs(t, err, ErrCreatedDrinkNotFound)

	var n int64
	require.NoError(t, f.db.Model(&models.Like{}).Count(&n).Error)
	assert.Zero(t, n)
}
