package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := &domain.TripSession{
		SessionID: "abc",
		Reserves: []*domain.ThemePool{
			{
				Theme:      domain.CategorySightseeing,
				Spots:      []*domain.Spot{{SpotID: "s1", Name: "one", Rating: 4.5}},
				NextCursor: "token",
			},
		},
		EatingSpots: []*domain.Spot{{SpotID: "e1", Categories: []domain.Category{domain.CategoryEating}}},
	}

	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, got.SessionID)
	require.Len(t, got.Reserves, 1)
	assert.Equal(t, "token", got.Reserves[0].NextCursor)
	require.Len(t, got.Reserves[0].Spots, 1)
	assert.Equal(t, "s1", got.Reserves[0].Spots[0].SpotID)
	require.Len(t, got.EatingSpots, 1)
	assert.True(t, got.EatingSpots[0].IsEating())
}

func TestRedisStoreMissingSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.TripSession{SessionID: "gone"}))
	require.NoError(t, store.Delete(ctx, "gone"))

	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
