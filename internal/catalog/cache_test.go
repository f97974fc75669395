package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/itinerary/itinerarytest"
	"ITINERARY_BACK-END/internal/models"
)

func TestGetActivityReadThrough(t *testing.T) {
	store := itinerarytest.NewStore()
	price := 40.0
	act := store.AddActivity(models.ActivityPackage{Title: "Colosseum", DestinationCity: "Rome", BasePrice: &price})

	rdb, mock := redismock.NewClientMock()
	cache := NewCached(store, rdb, time.Minute)

	encoded, err := json.Marshal(act)
	require.NoError(t, err)

	mock.ExpectGet(activityKey(act.ID)).RedisNil()
	mock.ExpectSet(activityKey(act.ID), string(encoded), time.Minute).SetVal("OK")

	got, err := cache.GetActivity(context.Background(), act.ID)
	require.NoError(t, err)
	assert.Equal(t, "Colosseum", got.Title)
	assert.Equal(t, 1, store.Calls("GetActivity"))

	mock.ExpectGet(activityKey(act.ID)).SetVal(string(encoded))

	got, err = cache.GetActivity(context.Background(), act.ID)
	require.NoError(t, err)
	assert.Equal(t, act.ID, got.ID)
	assert.Equal(t, 1, store.Calls("GetActivity"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchFallsThroughOnRedisError(t *testing.T) {
	store := itinerarytest.NewStore()
	from := "Rome airport"
	store.AddTransfer(models.TransferPackage{Title: "Airport shuttle", FromLocation: &from})

	rdb, mock := redismock.NewClientMock()
	cache := NewCached(store, rdb, 0)

	key := searchKey("transfer", " Rome ", 10)
	assert.Equal(t, "catalog:search:transfer:rome:10", key)
	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	mock.Regexp().ExpectSet(key, `.*Airport shuttle.*`, DefaultTTL).SetErr(errors.New("connection refused"))

	got, err := cache.SearchTransfers(context.Background(), " Rome ", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Airport shuttle", got[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingPackageIsNotCached(t *testing.T) {
	store := itinerarytest.NewStore()
	rdb, mock := redismock.NewClientMock()
	cache := NewCached(store, rdb, time.Minute)

	id := uuid.New()
	mock.ExpectGet(transferKey(id)).RedisNil()

	_, err := cache.GetTransfer(context.Background(), id)
	assert.ErrorIs(t, err, itinerary.ErrUnknownPackage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateDropsCatalogKeys(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCached(itinerarytest.NewStore(), rdb, time.Minute)

	keys := []string{"catalog:activity:a", "catalog:search:hotel:rome:10"}
	mock.ExpectScan(0, "catalog:*", 100).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(2)

	require.NoError(t, cache.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateEmptyCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCached(itinerarytest.NewStore(), rdb, time.Minute)

	mock.ExpectScan(0, "catalog:*", 100).SetVal(nil, 0)

	require.NoError(t, cache.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
