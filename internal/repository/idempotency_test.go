package repository

import (
	"context"
	"testing"
	"time"

	"github.com/benx421/moneybox/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idempotencyStores builds a fresh, empty store of each implementation.
// The postgres variant skips when no database is reachable.
var idempotencyStores = map[string]func(t *testing.T) IdempotencyRepository{
	"memory": func(_ *testing.T) IdempotencyRepository {
		return NewMemoryIdempotencyRepository()
	},
	"postgres": func(t *testing.T) IdempotencyRepository {
		database := setupTestDB(t)
		truncateTables(t, database)
		return NewIdempotencyRepository(database)
	},
}

func forEachIdempotencyStore(t *testing.T, fn func(t *testing.T, repo IdempotencyRepository)) {
	for name, newStore := range idempotencyStores {
		t.Run(name, func(t *testing.T) {
			fn(t, newStore(t))
		})
	}
}

// stamp returns a time postgres round-trips exactly
func stamp(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

func TestIdempotencyRepository_GetMissing(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		got, err := repo.Get(context.Background(), "unknown", "/api/v1/withdrawals")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestIdempotencyRepository_FirstResponseWins(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()

		first := &models.IdempotencyKey{
			Key:            "retry-1",
			RequestPath:    "/api/v1/transfers",
			ResponseStatus: 402,
			ResponseBody:   `{"error":"insufficient_funds"}`,
		}
		second := &models.IdempotencyKey{
			Key:            "retry-1",
			RequestPath:    "/api/v1/transfers",
			ResponseStatus: 200,
			ResponseBody:   `{"from_account":{}}`,
		}
		require.NoError(t, repo.Store(ctx, first))
		require.NoError(t, repo.Store(ctx, second), "a duplicate store is not an error")

		got, err := repo.Get(ctx, "retry-1", "/api/v1/transfers")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 402, got.ResponseStatus)
		assert.Equal(t, first.ResponseBody, got.ResponseBody)
	})
}

func TestIdempotencyRepository_KeysScopedByPath(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()

		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key: "shared", RequestPath: "/api/v1/withdrawals", ResponseStatus: 200, ResponseBody: `{"w":1}`,
		}))

		other, err := repo.Get(ctx, "shared", "/api/v1/transfers")
		require.NoError(t, err)
		assert.Nil(t, other)

		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key: "shared", RequestPath: "/api/v1/transfers", ResponseStatus: 200, ResponseBody: `{"t":1}`,
		}))

		withdrawal, err := repo.Get(ctx, "shared", "/api/v1/withdrawals")
		require.NoError(t, err)
		require.NotNil(t, withdrawal)
		assert.Equal(t, `{"w":1}`, withdrawal.ResponseBody)

		transfer, err := repo.Get(ctx, "shared", "/api/v1/transfers")
		require.NoError(t, err)
		require.NotNil(t, transfer)
		assert.Equal(t, `{"t":1}`, transfer.ResponseBody)
	})
}

func TestIdempotencyRepository_StampsMissingCreatedAt(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()

		key := &models.IdempotencyKey{Key: "fresh", RequestPath: "/api/v1/withdrawals", ResponseStatus: 200}
		require.NoError(t, repo.Store(ctx, key))

		got, err := repo.Get(ctx, "fresh", "/api/v1/withdrawals")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)

		// a fresh key survives a prune at the usual ttl
		deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestIdempotencyRepository_KeepsExplicitCreatedAt(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()
		createdAt := stamp(time.Now().Add(-3 * time.Hour))

		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key: "dated", RequestPath: "/p", ResponseStatus: 200, CreatedAt: createdAt,
		}))

		got, err := repo.Get(ctx, "dated", "/p")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, createdAt.Equal(got.CreatedAt), "created_at %v, want %v", got.CreatedAt, createdAt)
	})
}

func TestIdempotencyRepository_DeleteOlderThanCutoff(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()
		cutoff := stamp(time.Now().Add(-24 * time.Hour))

		keys := []struct {
			key       string
			createdAt time.Time
			kept      bool
		}{
			{key: "long-gone", createdAt: cutoff.Add(-72 * time.Hour), kept: false},
			{key: "just-before", createdAt: cutoff.Add(-time.Millisecond), kept: false},
			{key: "at-cutoff", createdAt: cutoff, kept: true},
			{key: "just-after", createdAt: cutoff.Add(time.Millisecond), kept: true},
		}
		for _, k := range keys {
			require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
				Key: k.key, RequestPath: "/p", ResponseStatus: 200, CreatedAt: k.createdAt,
			}))
		}

		deleted, err := repo.DeleteOlderThan(ctx, cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		for _, k := range keys {
			got, err := repo.Get(ctx, k.key, "/p")
			require.NoError(t, err)
			if k.kept {
				assert.NotNil(t, got, "%s should be kept", k.key)
			} else {
				assert.Nil(t, got, "%s should be deleted", k.key)
			}
		}

		again, err := repo.DeleteOlderThan(ctx, cutoff)
		require.NoError(t, err)
		assert.Zero(t, again, "a second pass has nothing left to delete")
	})
}

func TestIdempotencyRepository_DeletedKeyCanBeStoredAgain(t *testing.T) {
	forEachIdempotencyStore(t, func(t *testing.T, repo IdempotencyRepository) {
		ctx := context.Background()

		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key: "reuse", RequestPath: "/p", ResponseStatus: 402, ResponseBody: "old",
			CreatedAt: time.Now().Add(-48 * time.Hour),
		}))

		deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		require.Equal(t, int64(1), deleted)

		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key: "reuse", RequestPath: "/p", ResponseStatus: 200, ResponseBody: "new",
		}))

		got, err := repo.Get(ctx, "reuse", "/p")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "new", got.ResponseBody)
	})
}
