package repomanager

import (
	"context"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/repositories/accounts"
)

// MemoryRepositoryManager keeps every class in process memory. Data is lost
// on exit; it backs tests and local experiments.
type MemoryRepositoryManager struct {
	repos map[models.AccountClass]*accounts.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		repos: byClass(func(d models.ClassDescriptor) *accounts.MemoryRepository {
			return accounts.NewMemoryRepository(d.Class)
		}),
	}
}

func (m *MemoryRepositoryManager) Accounts(class models.AccountClass) (accounts.Repository, error) {
	return lookup(m.repos, class)
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close(ctx context.Context) error { return nil }
