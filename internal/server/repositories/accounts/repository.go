// Package accounts implements the credential store: one independent,
// identifier-unique store per account class. MongoDB, PostgreSQL and
// in-memory implementations are provided.
package accounts

import (
	"context"
	"time"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
)

// Repository is the store of a single account class.
//
// FindByIdentifier returns common.ErrorNotFound when nothing matches.
// Insert assigns ID and timestamps and returns common.ErrDuplicateIdentifier
// when the identifier is taken; the check is enforced by the storage itself.
type Repository interface {
	FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error)
	Insert(ctx context.Context, account *models.Account) (*models.Account, error)
}

// now is the clock used to stamp records. Stored times are UTC with
// millisecond precision, which every backend can round-trip.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
