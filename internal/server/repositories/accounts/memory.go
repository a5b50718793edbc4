package accounts

import (
	"context"
	"sync"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in a map. It is used by tests and by the
// "memory" storage backend.
type MemoryRepository struct {
	class models.AccountClass

	mu    sync.Mutex
	items map[string]models.Account
}

func NewMemoryRepository(class models.AccountClass) *MemoryRepository {
	return &MemoryRepository{class: class, items: make(map[string]models.Account)}
}

func (r *MemoryRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[identifier]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[account.Identifier]; ok {
		return nil, common.ErrDuplicateIdentifier
	}

	stored := *account
	stored.ID = uuid.NewString()
	stored.Class = r.class
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt
	r.items[stored.Identifier] = stored

	return &stored, nil
}

// Len returns the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
