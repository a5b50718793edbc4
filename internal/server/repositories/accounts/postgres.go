package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/dbx"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository stores one class in its own table. Column names are
// the snake_case form of the class descriptor fields; the identifier column
// carries a UNIQUE constraint (see the migrations package).
type PostgresRepository struct {
	db         dbx.DBTX
	descriptor models.ClassDescriptor

	insertQuery string
	selectQuery string
}

func NewPostgresRepository(db dbx.DBTX, d models.ClassDescriptor) *PostgresRepository {
	idCol, secretCol := snakeCase(d.IdentifierField), snakeCase(d.SecretField)

	return &PostgresRepository{
		db:         db,
		descriptor: d,
		insertQuery: fmt.Sprintf(
			`INSERT INTO %s (id, %s, %s, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5)`,
			d.Collection, idCol, secretCol),
		selectQuery: fmt.Sprintf(
			`SELECT id, %s, %s, created_at, updated_at FROM %s
		 WHERE %s = $1`,
			idCol, secretCol, d.Collection, idCol),
	}
}

func (r *PostgresRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	stored := *account
	stored.ID = uuid.NewString()
	stored.Class = r.descriptor.Class
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt

	_, err := r.db.ExecContext(ctx, r.insertQuery,
		stored.ID, stored.Identifier, stored.SecretHash, stored.CreatedAt, stored.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &stored, nil
}

func (r *PostgresRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	a := &models.Account{Class: r.descriptor.Class}

	err := r.db.QueryRowContext(ctx, r.selectQuery, identifier).
		Scan(&a.ID, &a.Identifier, &a.SecretHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

// snakeCase turns "superAdminEmail" into "super_admin_email".
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
