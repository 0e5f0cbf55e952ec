package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arganshop/backend/internal/domain/order"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "checkout_id", "name", "email", "phone", "address",
		"coupon_code", "coupon_value", "status", "total",
		"product_name", "product_price", "quantity", "created_at",
	})
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds existing order row", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		checkoutID := uuid.New()
		rows := orderRows().AddRow(
			int64(7), checkoutID, "Katy", "katy@example.com", "0600000000", "Casablanca",
			"", decimal.Zero, "pending", decimal.NewFromInt(295),
			"Pure Argan Oil 100ml", decimal.NewFromInt(250), 1, time.Now(),
		)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)

		record, err := repo.FindByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), record.ID)
		assert.Equal(t, checkoutID, record.CheckoutID)
		assert.Equal(t, order.StatusPending, record.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing row", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(404), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		record, err := repo.FindByID(context.Background(), 404)

		assert.Nil(t, record)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindByCheckoutID(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	checkoutID := uuid.New()
	now := time.Now()
	rows := orderRows().
		AddRow(int64(1), checkoutID, "Katy", "", "0600000000", "",
			"", decimal.Zero, "pending", decimal.NewFromInt(340),
			"Pure Argan Oil 100ml", decimal.NewFromInt(250), 1, now).
		AddRow(int64(2), checkoutID, "Katy", "", "0600000000", "",
			"", decimal.Zero, "pending", decimal.NewFromInt(340),
			"Argan Soap", decimal.NewFromInt(45), 2, now)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE checkout_id = \$1 ORDER BY id ASC`).
		WithArgs(checkoutID).
		WillReturnRows(rows)

	records, err := repo.FindByCheckoutID(context.Background(), checkoutID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	// every row of one submission carries the shared grand total
	assert.True(t, records[0].Total.Equal(records[1].Total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindSiblings(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	anchorTime := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	anchor := &order.Record{
		BaseEntity: shared.BaseEntity{ID: 5, CreatedAt: anchorTime},
		Name:       "Katy",
		Email:      "katy@example.com",
		Phone:      "0600000000",
		Address:    "Casablanca",
	}

	rows := orderRows().
		AddRow(int64(5), uuid.Nil, "Katy", "katy@example.com", "0600000000", "Casablanca",
			"", decimal.Zero, "pending", decimal.NewFromInt(340),
			"Pure Argan Oil 100ml", decimal.NewFromInt(250), 1, anchorTime).
		AddRow(int64(6), uuid.Nil, "Katy", "katy@example.com", "0600000000", "Casablanca",
			"", decimal.Zero, "pending", decimal.NewFromInt(340),
			"Argan Soap", decimal.NewFromInt(45), 2, anchorTime.Add(2*time.Second))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE \(name = \$1 AND email = \$2 AND phone = \$3 AND address = \$4\) AND \(created_at BETWEEN \$5 AND \$6\) ORDER BY id ASC`).
		WithArgs("Katy", "katy@example.com", "0600000000", "Casablanca",
			anchorTime.Add(-order.SiblingWindow), anchorTime.Add(order.SiblingWindow)).
		WillReturnRows(rows)

	records, err := repo.FindSiblings(context.Background(), anchor)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(5), records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 42)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
