package namecache

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAllMemoizes(t *testing.T) {
	ada := uuid.New()
	grace := uuid.New()
	ghost := uuid.New()

	calls := 0
	var lastBatch []uuid.UUID
	cache := New(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		calls++
		lastBatch = ids
		return map[uuid.UUID]string{
			ada:   "Ada Lovelace",
			grace: "Grace Hopper",
		}, nil
	})

	names, err := cache.ResolveAll(context.Background(), []uuid.UUID{ada, grace, ada, ghost})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, lastBatch, 3, "duplicate ids collapse into one batch entry")

	assert.Equal(t, "Ada Lovelace", names[ada])
	assert.Equal(t, "Grace Hopper", names[grace])
	assert.Equal(t, UnknownUser, names[ghost])

	// everything already cached, no second fetch
	names, err = cache.ResolveAll(context.Background(), []uuid.UUID{ada, ghost})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Ada Lovelace", names[ada])
	assert.Equal(t, UnknownUser, names[ghost])
}

func TestResolveAllFetchesOnlyMissing(t *testing.T) {
	ada := uuid.New()
	grace := uuid.New()

	batches := [][]uuid.UUID{}
	cache := New(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		batches = append(batches, ids)
		out := map[uuid.UUID]string{ada: "Ada Lovelace", grace: "Grace Hopper"}
		result := make(map[uuid.UUID]string, len(ids))
		for _, id := range ids {
			if name, ok := out[id]; ok {
				result[id] = name
			}
		}
		return result, nil
	})

	_, err := cache.ResolveAll(context.Background(), []uuid.UUID{ada})
	require.NoError(t, err)

	_, err = cache.ResolveAll(context.Background(), []uuid.UUID{ada, grace})
	require.NoError(t, err)

	require.Len(t, batches, 2)
	assert.Equal(t, []uuid.UUID{ada}, batches[0])
	assert.Equal(t, []uuid.UUID{grace}, batches[1])
}

func TestResolveSingle(t *testing.T) {
	ada := uuid.New()
	cache := New(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		return map[uuid.UUID]string{ada: "Ada Lovelace"}, nil
	})

	name, err := cache.Resolve(context.Background(), ada)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
}

func TestResolveAllEmptyNameFallsBack(t *testing.T) {
	blank := uuid.New()
	cache := New(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		return map[uuid.UUID]string{blank: ""}, nil
	})

	name, err := cache.Resolve(context.Background(), blank)
	require.NoError(t, err)
	assert.Equal(t, UnknownUser, name)
}

func TestResolveAllLookupError(t *testing.T) {
	lookupErr := errors.New("profiles unavailable")
	cache := New(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		return nil, lookupErr
	})

	_, err := cache.ResolveAll(context.Background(), []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, lookupErr)
}
