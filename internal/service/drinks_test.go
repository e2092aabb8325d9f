package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/mykafka"
	"github.com/AyaAid/Stayabucks/internal/pricing"
	"github.com/AyaAid/Stayabucks/internal/repo"
	"github.com/AyaAid/Stayabucks/internal/testdb"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return f.err
}

type fixture struct {
	db      *gorm.DB
	repo    *repo.GormRepo
	user    models.User
	drink   models.Drink
	vanilla models.Supplement
	caramel models.Supplement
}

// newFixture seeds user 1, a 4.50 drink and two syrups priced 0.50 and 0.75.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

	f := &fixture{db: db, repo: &repo.GormRepo{DB: db}}
	st := models.SupplementType{Name: "syrup"}
	testdb.MustCreate(t, db, &st)

	f.user = models.User{Username: "aya", Email: "aya@example.com", Password: "x"}
	f.drink = models.Drink{Name: "Latte", Description: "espresso and milk", Price: 4.50}
	f.vanilla = models.Supplement{Name: "Vanilla", Price: 0.50, TypeID: st.ID}
	f.caramel = models.Supplement{Name: "Caramel", Price: 0.75, TypeID: st.ID}
	testdb.MustCreate(t, db, &f.user, &f.drink, &f.vanilla, &f.caramel)
	return f
}

func TestDrinkService_CreateDrink(t *testing.T) {
	f := newFixture(t)
	pub := &fakePublisher{}
	svc := NewDrinkService(f.repo, pub)
	ctx := context.Background()

	created, err := svc.CreateDrink(ctx, f.user.ID, f.drink.ID, pricing.Selection{f.vanilla.ID: 2})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	var stored models.CreatedDrink
	require.NoError(t, f.db.First(&stored, created.ID).Error)
	sel, err := pricing.DecodeSelection(stored.SupplementID)
	require.NoError(t, err)
	assert.Equal(t, pricing.Selection{f.vanilla.ID: 2}, sel)

	require.Len(t, pub.events, 1)
	assert.Equal(t, mykafka.TopicDrinkCreated, pub.events[0].Topic)
	ev := pub.events[0].Event.(mykafka.DrinkCreatedEvent)
	assert.Equal(t, created.ID, ev.DrinkCreatedID)
}

func TestDrinkService_CreateDrink_Preconditions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  uint
		drinkID uint
		sel     pricing.Selection
		wantErr error
	}{
		{"unknown user", 99, f.drink.ID, nil, ErrUserNotFound},
		{"unknown drink", f.user.ID, 99, nil, ErrDrinkNotFound},
		{"user checked before drink", 99, 99, nil, ErrUserNotFound},
		{"unknown supplement", f.user.ID, f.drink.ID, pricing.Selection{f.vanilla.ID: 1, 999: 1}, ErrSupplementNotFound},
		{"quantity above limit", f.user.ID, f.drink.ID, pricing.Selection{f.vanilla.ID: pricing.MaxQuantity + 1}, ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pub := &fakePublisher{}
			svc := NewDrinkService(f.repo, pub)

			_, err := svc.CreateDrink(ctx, tc.userID, tc.drinkID, tc.sel)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, pub.events)

			var n int64
			require.NoError(t, f.db.Model(&models.CreatedDrink{}).Count(&n).Error)
			assert.Zero(t, n)
		})
	}
}

func TestDrinkService_CreateDrink_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, &fakePublisher{err: errors.New("broker down")})

	created, err := svc.CreateDrink(context.Background(), f.user.ID, f.drink.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", created.SupplementID)
}

func TestDrinkService_CreateDrink_PersistenceError(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)

	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.CreateDrink(context.Background(), f.user.ID, f.drink.ID, nil)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestDrinkService_Quote(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)
	ctx := context.Background()

	total, err := svc.Quote(ctx, f.drink.ID, pricing.Selection{f.vanilla.ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "5.5", total.String())

	total, err = svc.Quote(ctx, f.drink.ID, pricing.Selection{999: 3})
	require.NoError(t, err)
	assert.Equal(t, "4.5", total.String())

	_, err = svc.Quote(ctx, 999, nil)
	assert.ErrorIs(t, err, ErrDrinkNotFound)

	_, err = svc.Quote(ctx, f.drink.ID, pricing.Selection{f.vanilla.ID: math.MaxUint64})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDrinkService_ListDrinksWithPrice(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)
	ctx := context.Background()

	gone := models.Drink{Name: "Seasonal", Description: "gone soon", Price: 6}
	testdb.MustCreate(t, f.db, &gone)

	rows := []*models.CreatedDrink{
		{UserID: f.user.ID, DrinkID: f.drink.ID, SupplementID: `{"` + itoa(f.vanilla.ID) + `":2}`},
		{UserID: f.user.ID, DrinkID: gone.ID, SupplementID: `{}`},
		{UserID: f.user.ID, DrinkID: f.drink.ID, SupplementID: `{"` + itoa(f.caramel.ID) + `":1,"999":4}`},
	}
	for _, r := range rows {
		testdb.MustCreate(t, f.db, r)
	}
	require.NoError(t, f.db.Delete(&gone).Error)

	items, err := svc.ListDrinksWithPrice(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, rows[0].ID, items[0].DrinkCreatedID)
	assert.Equal(t, "5.5", items[0].TotalPrice.String())
	assert.Equal(t, rows[2].ID, items[1].DrinkCreatedID)
	assert.Equal(t, "5.25", items[1].TotalPrice.String())
}

func TestDrinkService_ListDrinksWithPrice_Empty(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)

	_, err := svc.ListDrinksWithPrice(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDrinkService_ListDrinksWithPrice_OnlyUnresolvable(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)

	testdb.MustCreate(t, f.db, &models.CreatedDrink{UserID: f.user.ID, DrinkID: 999, SupplementID: "{}"})

	_, err := svc.ListDrinksWithPrice(context.Background(), f.user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDrinkService_ListDrinksWithPrice_MalformedSelection(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)

	testdb.MustCreate(t, f.db, &models.CreatedDrink{UserID: f.user.ID, DrinkID: f.drink.ID, SupplementID: "not json"})

	_, err := svc.ListDrinksWithPrice(context.Background(), f.user.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDrinkService_ListRecentDrinks(t *testing.T) {
	f := newFixture(t)
	svc := NewDrinkService(f.repo, nil)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		testdb.MustCreate(t, f.db, &models.CreatedDrink{UserID: 5, DrinkID: f.drink.ID, SupplementID: "{}"})
	}

	items, err := svc.ListRecentDrinks(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, items, 10)
	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i-1].ID, items[i].ID)
	}

	items, err = svc.ListRecentDrinks(ctx, 5, 0)
	require.NoError(t, err)
	assert.Len(t, items, DefaultRecentLimit)

	items, err = svc.ListRecentDrinks(ctx, 5, 500)
	require.NoError(t, err)
	assert.Len(t, items, 15)

	_, err = svc.ListRecentDrinks(ctx, 6, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClampLimit(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want int }{
		{-1, DefaultRecentLimit},
		{0, DefaultRecentLimit},
		{3, 3},
		{MaxRecentLimit, MaxRecentLimit},
		{MaxRecentLimit + 1, MaxRecentLimit},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClampLimit(tc.in), "limit %d", tc.in)
	}
}
