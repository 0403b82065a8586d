package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
	"github.com/RahemShaikh/LoginSimulator/internal/store/migrations"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Open connects to Postgres with the pgx driver, applies the embedded
// migrations, and returns a ready repository together with the underlying
// handle so the caller can close it.
func Open(ctx context.Context, dsn string) (*PostgresRepository, *sql.DB, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return NewPostgresRepository(db), db, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query :=
		`SELECT email, password_hash, two_fa, created_at FROM accounts
		 WHERE email = $1
		 `

	acc := &Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&acc.Email, &acc.PasswordHash, &acc.TwoFactorEnabled, &acc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, email, passwordHash string) error {
	query :=
		`INSERT INTO accounts (email, password_hash)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, email, passwordHash); err != nil {
		return mapDBError(err)
	}

	return nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	query :=
		`UPDATE accounts SET password_hash = $1
		 WHERE email = $2
		 `

	return r.execExpectingRow(ctx, query, passwordHash, email)
}

func (r *PostgresRepository) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	query :=
		`UPDATE accounts SET email = $1
		 WHERE email = $2
		 `

	return r.execExpectingRow(ctx, query, newEmail, oldEmail)
}

func (r *PostgresRepository) UpdateTwoFactor(ctx context.Context, email string, enabled bool) error {
	query :=
		`UPDATE accounts SET two_fa = $1
		 WHERE email = $2
		 `

	return r.execExpectingRow(ctx, query, enabled, email)
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	query :=
		`DELETE FROM accounts
		 WHERE email = $1
		 `

	return r.execExpectingRow(ctx, query, email)
}

// execExpectingRow runs a statement that must touch exactly one account
// and maps a zero-row result to common.ErrorNotFound.
func (r *PostgresRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// mapDBError translates a driver error into the package's error
// contract: unique violations become ErrorAccountExists, everything
// else is wrapped.
func mapDBError(err error) error {
	if isUniqueViolation(err) {
		return common.ErrorAccountExists
	}
	return fmt.Errorf("db error: %w", err)
}

// isUniqueViolation detects a PostgreSQL unique-constraint violation.
func isUniqueViolation(err error) bool {
	type pgError interface{ SQLState() string }
	var pgErr pgError
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
