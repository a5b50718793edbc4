package accounts

import (
	"context"
	"sync"
	"testing"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract exercises the behaviour every Repository shares.
// newRepo must return an empty store for the given class.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T, class models.AccountClass) Repository) {
	t.Run("insert then find", func(t *testing.T) {
		repo := newRepo(t, models.ClassUser)
		ctx := context.Background()

		created, err := repo.Insert(ctx, &models.Account{Identifier: "a@b.com", SecretHash: "hash-1"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.ClassUser, created.Class)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		got, err := repo.FindByIdentifier(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "a@b.com", got.Identifier)
		assert.Equal(t, "hash-1", got.SecretHash)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t, models.ClassAdmin)

		_, err := repo.FindByIdentifier(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("duplicate identifier", func(t *testing.T) {
		repo := newRepo(t, models.ClassSuperAdmin)
		ctx := context.Background()

		_, err := repo.Insert(ctx, &models.Account{Identifier: "root@org.com", SecretHash: "h1"})
		require.NoError(t, err)

		_, err = repo.Insert(ctx, &models.Account{Identifier: "root@org.com", SecretHash: "h2"})
		assert.ErrorIs(t, err, common.ErrDuplicateIdentifier)

		got, err := repo.FindByIdentifier(ctx, "root@org.com")
		require.NoError(t, err)
		assert.Equal(t, "h1", got.SecretHash, "first record must survive")
	})

	t.Run("concurrent inserts of one identifier", func(t *testing.T) {
		repo := newRepo(t, models.ClassUser)
		ctx := context.Background()

		const workers = 16
		var (
			wg         sync.WaitGroup
			mu         sync.Mutex
			successes  int
			duplicates int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Insert(ctx, &models.Account{Identifier: "race@b.com", SecretHash: "h"})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case assert.ErrorIs(t, err, common.ErrDuplicateIdentifier):
					duplicates++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, duplicates)
	})
}
