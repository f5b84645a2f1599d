package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

// PostgreSQL error codes
const (
	pgUniqueViolation          = "23505"
	pgCheckViolation           = "23514"
	pgNotNullViolation         = "23502"
	pgStringDataRightTruncated = "22001"
)

// constraintFields maps schema constraints and columns to API field names.
var constraintFields = map[string]string{
	"rfid_users_uid_check":           "uid",
	"rfid_users_name_check":          "name",
	"rfid_users_resource_link_check": "resourceLink",
	"uid":                            "uid",
	"name":                           "name",
	"resource_link":                  "resourceLink",
}

const rfidUserColumns = `uid, name, resource_link, created_at, updated_at`

// RFIDUserReadRepository handles directory lookups.
type RFIDUserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRFIDUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RFIDUserReadRepository {
	return &RFIDUserReadRepository{db: db, txGetter: txGetter}
}

// FindByUID returns the record stored under a normalized uid, or nil if there is none.
func (r *RFIDUserReadRepository) FindByUID(ctx context.Context, uid string) (*models.RFIDUser, error) {
	query := `SELECT ` + rfidUserColumns + ` FROM rfid_users WHERE uid = $1`

	var user models.RFIDUser
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, uid)

	logQuery(query, []any{uid}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every record, most recently created first.
func (r *RFIDUserReadRepository) ListAll(ctx context.Context) ([]models.RFIDUser, error) {
	query := `SELECT ` + rfidUserColumns + ` FROM rfid_users ORDER BY created_at DESC, uid ASC`

	users := []models.RFIDUser{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// RFIDUserWriteRepository handles directory mutations.
type RFIDUserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRFIDUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RFIDUserWriteRepository {
	return &RFIDUserWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new record. The unique constraint on uid is authoritative:
// a concurrent duplicate surfaces as models.ErrUserAlreadyExists.
func (r *RFIDUserWriteRepository) Insert(ctx context.Context, user models.RFIDUser) (*models.RFIDUser, error) {
	query := `
		INSERT INTO rfid_users (uid, name, resource_link, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + rfidUserColumns
	args := []any{user.UID, user.Name, user.ResourceLink}

	var created models.RFIDUser
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch to the record stored under uid.
func (r *RFIDUserWriteRepository) Update(ctx context.Context, uid string, patch models.RFIDUserPatch) (*models.RFIDUser, error) {
	query := `
		UPDATE rfid_users
		SET name = COALESCE($2, name),
		    resource_link = COALESCE($3, resource_link),
		    updated_at = NOW()
		WHERE uid = $1
		RETURNING ` + rfidUserColumns
	args := []any{uid, nullable(patch.Name), nullable(patch.ResourceLink)}

	var updated models.RFIDUser
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	return &updated, nil
}

// Delete removes the record stored under uid.
func (r *RFIDUserWriteRepository) Delete(ctx context.Context, uid string) error {
	query := `DELETE FROM rfid_users WHERE uid = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, uid)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(query, []any{uid}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// executor returns the request transaction when one is active.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// mapPgError translates constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return models.ErrUserAlreadyExists
	case pgCheckViolation, pgNotNullViolation:
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field, ok = constraintFields[pgErr.ColumnName]
		}
		if !ok {
			field = "input"
		}
		return models.NewValidationError(field, "must not be empty")
	case pgStringDataRightTruncated:
		return models.NewValidationError("input", "value too long")
	}
	return err
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
