package repomanager

import (
	"context"
	"fmt"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/repositories/accounts"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoRepositoryManager stores each class in its own collection of one
// database. "Migrating" means creating the unique identifier indexes.
type MongoRepositoryManager struct {
	client *mongo.Client
	repos  map[models.AccountClass]*accounts.MongoRepository
}

// NewMongoRepositoryManager connects to uri and pings the server.
func NewMongoRepositoryManager(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return newMongoRepositoryManager(client, client.Database(database)), nil
}

func newMongoRepositoryManager(client *mongo.Client, db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		client: client,
		repos: byClass(func(d models.ClassDescriptor) *accounts.MongoRepository {
			return accounts.NewMongoRepository(db, d)
		}),
	}
}

func (m *MongoRepositoryManager) Accounts(class models.AccountClass) (accounts.Repository, error) {
	return lookup(m.repos, class)
}

func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	for _, class := range models.Classes() {
		if err := m.repos[class].EnsureIndex(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
