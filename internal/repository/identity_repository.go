package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/token-service/internal/domain"
)

// ErrAccountNotFound is returned when no account matches the login.
var ErrAccountNotFound = errors.New("account not found")

// IdentityRepository looks up accounts by login within a population.
type IdentityRepository interface {
	FindIdentity(ctx context.Context, population domain.Population, login string) (*domain.Account, error)
}

// rowQuerier is the part of a pgx pool the repository reads through.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type identityRepository struct {
	db rowQuerier
}

// NewIdentityRepository returns a Postgres-backed implementation.
func NewIdentityRepository(pool *pgxpool.Pool) IdentityRepository {
	if pool == nil {
		return &identityRepository{}
	}
	return &identityRepository{db: pool}
}

func (r *identityRepository) FindIdentity(ctx context.Context, population domain.Population, login string) (*domain.Account, error) {
	if r.db == nil {
		return nil, errors.New("identity store not configured")
	}
	table, ok := tableFor(population)
	if !ok {
		return nil, fmt.Errorf("unknown population %q", population)
	}

	query := `
        SELECT id, login, email, name, surname, password_hash, active_flag
        FROM ` + table + ` WHERE login=$1`

	var account domain.Account
	if err := r.db.QueryRow(ctx, query, login).Scan(
		&account.ID,
		&account.Login,
		&account.Email,
		&account.Name,
		&account.Surname,
		&account.PasswordHash,
		&account.Active,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func tableFor(population domain.Population) (string, bool) {
	switch population {
	case domain.PopulationStaff:
		return "staff_members", true
	case domain.PopulationCustomer:
		return "customers", true
	default:
		return "", false
	}
}
