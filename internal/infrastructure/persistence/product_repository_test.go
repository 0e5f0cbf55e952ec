package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name_en", "price", "photo"}).
			AddRow(int64(1), "Pure Argan Oil 100ml", decimal.NewFromInt(250), "argan-100.jpg")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Pure Argan Oil 100ml", product.NameEN)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(999), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	t.Run("returns catalog ordered by id", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name_en", "price", "photo"}).
			AddRow(int64(1), "Pure Argan Oil 100ml", decimal.NewFromInt(250), "argan-100.jpg").
			AddRow(int64(2), "Argan Soap", decimal.NewFromInt(45), "soap.jpg")

		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC`).
			WillReturnRows(rows)

		products, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, int64(2), products[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty catalog", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name_en", "price", "photo"}))

		products, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByNamePattern(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name_en", "price", "photo"}).
			AddRow(int64(1), "Pure Argan Oil 100ml", decimal.NewFromInt(250), "argan-100.jpg")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE name_en ILIKE \$1 ORDER BY id ASC,.* LIMIT .*`).
			WithArgs("%argan oil%", 1).
			WillReturnRows(rows)

		product, err := repo.FindByNamePattern(context.Background(), "argan oil")

		require.NoError(t, err)
		assert.Equal(t, "Pure Argan Oil 100ml", product.NameEN)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing matches", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE name_en ILIKE \$1 ORDER BY id ASC,.* LIMIT .*`).
			WithArgs("%rose water%", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByNamePattern(context.Background(), "rose water")

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty pattern without querying", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		product, err := repo.FindByNamePattern(context.Background(), "")

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deletes existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 42)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
