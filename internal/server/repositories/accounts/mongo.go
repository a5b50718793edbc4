package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo document timestamp fields, named as the web frontend's schema
// layer (timestamps: true) names them.
const (
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// MongoRepository stores one class in its own collection, using the class
// descriptor's field names for the identifier and the secret.
type MongoRepository struct {
	col        *mongo.Collection
	descriptor models.ClassDescriptor
}

func NewMongoRepository(db *mongo.Database, d models.ClassDescriptor) *MongoRepository {
	return &MongoRepository{col: db.Collection(d.Collection), descriptor: d}
}

// EnsureIndex creates the unique index on the identifier field. Insert
// relies on it to reject duplicates.
func (r *MongoRepository) EnsureIndex(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: r.descriptor.IdentifierField, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.col.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index on %s: %w", r.descriptor.Collection, err)
	}
	return nil
}

func (r *MongoRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	stored := *account
	stored.ID = uuid.NewString()
	stored.Class = r.descriptor.Class
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt

	doc := bson.D{
		{Key: "_id", Value: stored.ID},
		{Key: r.descriptor.IdentifierField, Value: stored.Identifier},
		{Key: r.descriptor.SecretField, Value: stored.SecretHash},
		{Key: fieldCreatedAt, Value: stored.CreatedAt},
		{Key: fieldUpdatedAt, Value: stored.UpdatedAt},
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, wrapError(err)
	}
	return &stored, nil
}

func (r *MongoRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.D{{Key: r.descriptor.IdentifierField, Value: identifier}}).Decode(&doc)
	if err != nil {
		return nil, wrapError(err)
	}
	return r.fromDocument(doc)
}

// fromDocument also accepts records written by other tools, whose _id is
// usually an ObjectID rather than a string.
func (r *MongoRepository) fromDocument(doc bson.M) (*models.Account, error) {
	a := &models.Account{Class: r.descriptor.Class}

	switch id := doc["_id"].(type) {
	case string:
		a.ID = id
	case bson.ObjectID:
		a.ID = id.Hex()
	default:
		return nil, fmt.Errorf("%s: unsupported _id type %T", r.descriptor.Collection, id)
	}

	var ok bool
	if a.Identifier, ok = doc[r.descriptor.IdentifierField].(string); !ok {
		return nil, fmt.Errorf("%s: document without %s", r.descriptor.Collection, r.descriptor.IdentifierField)
	}
	if a.SecretHash, ok = doc[r.descriptor.SecretField].(string); !ok {
		return nil, fmt.Errorf("%s: document without %s", r.descriptor.Collection, r.descriptor.SecretField)
	}
	a.CreatedAt = asTime(doc[fieldCreatedAt])
	a.UpdatedAt = asTime(doc[fieldUpdatedAt])

	return a, nil
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case bson.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	}
	return time.Time{}
}

// wrapError converts driver errors into the repository's sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return common.ErrDuplicateIdentifier
	}
	return fmt.Errorf("db error: %w", err)
}
