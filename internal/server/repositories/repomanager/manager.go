// Package repomanager wires the credential stores of every account class to
// the configured storage backend and owns the backend's lifecycle.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/config"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/repositories/accounts"
)

type RepositoryManager interface {
	// Accounts returns the store of class. Each class has its own store.
	Accounts(class models.AccountClass) (accounts.Repository, error)
	// RunMigrations prepares the backend schema (tables or unique indexes).
	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewRepositoryManager opens the backend named by cfg.StorageBackend.
// Migrations are not run; callers do that explicitly.
func NewRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch strings.ToLower(cfg.StorageBackend) {
	case config.StorageMongo:
		return NewMongoRepositoryManager(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.StoragePostgres:
		return OpenPostgresRepositoryManager(cfg.DatabaseDSN)
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// byClass builds one repository per class with newRepo.
func byClass[R accounts.Repository](newRepo func(models.ClassDescriptor) R) map[models.AccountClass]R {
	repos := make(map[models.AccountClass]R, len(models.Classes()))
	for _, class := range models.Classes() {
		d, _ := models.Descriptor(class)
		repos[class] = newRepo(d)
	}
	return repos
}

func lookup[R accounts.Repository](repos map[models.AccountClass]R, class models.AccountClass) (accounts.Repository, error) {
	r, ok := repos[class]
	if !ok {
		// validates and formats the error
		_, err := models.Descriptor(class)
		if err == nil {
			err = fmt.Errorf("no store for %s", class)
		}
		return nil, err
	}
	return r, nil
}
