package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

func TestStaticEnumerator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		configured := []domain.Tenant{
			{ID: 2, Domain: "b.com"},
			{ID: 1, Domain: "a.com"},
		}

		enumerator := NewStaticEnumerator(configured)
		tenants, err := enumerator.ListAllTenants(context.Background())
		require.NoError(t, err)
		require.Equal(t, configured, tenants)

		tenants[0].Domain = "changed.com"
		require.Equal(t, "b.com", enumerator.Tenants[0].Domain)
	})

	t.Run("empty", func(t *testing.T) {
		tenants, err := NewStaticEnumerator(nil).ListAllTenants(context.Background())
		require.NoError(t, err)
		require.Empty(t, tenants)
	})
}

func TestPostgresEnumerator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, domain FROM tenants ORDER BY id").
			WillReturnRows(sqlmock.NewRows([]string{"id", "domain"}).
				AddRow(1, "a.com").
				AddRow(2, "b.com"))

		tenants, err := NewPostgresEnumerator(db).ListAllTenants(context.Background())
		require.NoError(t, err)
		require.Equal(t, []domain.Tenant{{ID: 1, Domain: "a.com"}, {ID: 2, Domain: "b.com"}}, tenants)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store unreachable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, domain FROM tenants").
			WillReturnError(errors.New("connection refused"))

		tenants, err := NewPostgresEnumerator(db).ListAllTenants(context.Background())
		require.Error(t, err)
		require.Nil(t, tenants)

		var registryErr *domain.RegistryError
		require.ErrorAs(t, err, &registryErr)
		require.Equal(t, "list tenants", registryErr.Op)
	})

	t.Run("row failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, domain FROM tenants").
			WillReturnRows(sqlmock.NewRows([]string{"id", "domain"}).
				AddRow(1, "a.com").
				RowError(0, errors.New("broken row")))

		_, err = NewPostgresEnumerator(db).ListAllTenants(context.Background())
		require.Error(t, err)
	})
}
