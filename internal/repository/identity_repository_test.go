package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/token-service/internal/domain"
)

var accountColumns = []string{"id", "login", "email", "name", "surname", "password_hash", "active_flag"}

func newRepoWithMock(t *testing.T) (*identityRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &identityRepository{db: mock}, mock
}

func TestFindIdentity_Found(t *testing.T) {
	tests := []struct {
		population domain.Population
		query      string
		active     bool
	}{
		{population: domain.PopulationStaff, query: `FROM staff_members WHERE login=\$1`, active: true},
		{population: domain.PopulationCustomer, query: `FROM customers WHERE login=\$1`, active: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.population), func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			rows := pgxmock.NewRows(accountColumns).
				AddRow(int64(1), "alice", "a@x.com", "Alice", "Smith", "$2a$hash", tt.active)
			mock.ExpectQuery(`(?s)SELECT id, login, email, name, surname, password_hash, active_flag\s+` + tt.query).
				WithArgs("alice").
				WillReturnRows(rows)

			account, err := repo.FindIdentity(context.Background(), tt.population, "alice")
			require.NoError(t, err)
			assert.Equal(t, domain.Identity{ID: 1, Login: "alice", Email: "a@x.com", Name: "Alice", Surname: "Smith"}, account.Identity)
			assert.Equal(t, "$2a$hash", account.PasswordHash)
			assert.Equal(t, tt.active, account.Active)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindIdentity_NoRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM customers WHERE login=\$1`).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(accountColumns))

	account, err := repo.FindIdentity(context.Background(), domain.PopulationCustomer, "ghost")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindIdentity_DriverError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	cause := errors.New("connection reset")

	mock.ExpectQuery(`FROM staff_members WHERE login=\$1`).
		WithArgs("alice").
		WillReturnError(cause)

	account, err := repo.FindIdentity(context.Background(), domain.PopulationStaff, "alice")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindIdentity_UnknownPopulation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	_, err := repo.FindIdentity(context.Background(), domain.Population("ROBOT"), "alice")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindIdentity_WithoutPool(t *testing.T) {
	repo := NewIdentityRepository(nil)

	account, err := repo.FindIdentity(context.Background(), domain.PopulationStaff, "alice")
	assert.Nil(t, account)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestTableFor(t *testing.T) {
	table, ok := tableFor(domain.PopulationStaff)
	assert.True(t, ok)
	assert.Equal(t, "staff_members", table)

	table, ok = tableFor(domain.PopulationCustomer)
	assert.True(t, ok)
	assert.Equal(t, "customers", table)

	_, ok = tableFor(domain.Population("ROBOT"))
	assert.False(t, ok)
}
