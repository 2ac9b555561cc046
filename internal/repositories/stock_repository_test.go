package repositories

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/migrations"
	"saha-servis/pkg/database/postgresql"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
)

var testPool *pgxpool.Pool

// TestMain поднимает схему в тестовой БД из TEST_DATABASE_URL.
// Без переменной интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := postgresql.RunMigrations(dsn, migrations.FS); err != nil {
			log.Fatalf("Не удалось применить миграции: %v", err)
		}
		pool, err := postgresql.ConnectDB(context.Background(), dsn)
		if err != nil {
			log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
		}
		testPool = pool
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан")
	}
}

// cleanupTables очищает таблицы склада для изоляции тестов.
func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE warehouse_stock, tool_assignments, tools, products, warehouses RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

func seedWarehouseAndProduct(t *testing.T, minLevel string) (warehouseID, productID uint64) {
	t.Helper()
	ctx := context.Background()
	err := testPool.QueryRow(ctx, `INSERT INTO warehouses (name) VALUES ('Test Depo') RETURNING id`).Scan(&warehouseID)
	require.NoError(t, err)
	err = testPool.QueryRow(ctx,
		`INSERT INTO products (name, sku, min_stock_level) VALUES ('Filtre', 'FILTRE', $1::numeric) RETURNING id`,
		minLevel).Scan(&productID)
	require.NoError(t, err)
	return
}

func TestStockRepository_Integration_DecreaseAndIncrease(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewStockRepository(testPool, zap.NewNop())
	warehouseID, productID := seedWarehouseAndProduct(t, "0")

	err := repo.IncreaseProductStock(ctx, nil, warehouseID, productID, decimal.NewFromInt(5))
	require.NoError(t, err)
	err = repo.IncreaseProductStock(ctx, nil, warehouseID, productID, decimal.NewFromInt(3))
	require.NoError(t, err)

	item, err := repo.FindByPair(ctx, nil, warehouseID, null.Int64From(int64(productID)), null.Int64{})
	require.NoError(t, err)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "Test Depo", item.WarehouseName)
	assert.Equal(t, "FILTRE", item.ItemCode.String)

	err = repo.DecreaseProductStock(ctx, nil, warehouseID, productID, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	err = repo.DecreaseProductStock(ctx, nil, warehouseID, productID, decimal.NewFromInt(8))
	require.NoError(t, err)

	item, err = repo.FindStock(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, item.Quantity.IsZero())
}

func TestStockRepository_Integration_DecreaseWithoutRow(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewStockRepository(testPool, zap.NewNop())
	warehouseID, productID := seedWarehouseAndProduct(t, "0")

	err := repo.DecreaseProductStock(context.Background(), nil, warehouseID, productID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestStockRepository_Integration_LowStock(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewStockRepository(testPool, zap.NewNop())
	warehouseID, productID := seedWarehouseAndProduct(t, "10")

	_, err := repo.InsertStock(ctx, nil, entities.StockItem{
		WarehouseID: warehouseID,
		ProductID:   null.Int64From(int64(productID)),
		Quantity:    decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	count, err := repo.CountLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	low, err := repo.GetLowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].IsLow())

	filter := types.Filter{Filter: map[string]interface{}{
		"low_stock":    "true",
		"warehouse_id": strconv.FormatUint(warehouseID, 10),
	}}
	items, total, err := repo.GetStock(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, items, 1)
}

func TestStockRepository_Integration_RollbackOnError(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewStockRepository(testPool, zap.NewNop())
	txManager := NewTxManager(testPool)
	warehouseID, productID := seedWarehouseAndProduct(t, "0")

	boom := errors.New("boom")
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := repo.IncreaseProductStock(ctx, tx, warehouseID, productID, decimal.NewFromInt(7)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.FindByPair(ctx, nil, warehouseID, null.Int64From(int64(productID)), null.Int64{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWarehouseRepository_Integration_CRUD(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewWarehouseRepository(testPool, zap.NewNop())

	id, err := repo.CreateWarehouse(ctx, entities.Warehouse{
		Name:     "Kartal Depo",
		Location: null.StringFrom("İstanbul"),
		IsActive: true,
	})
	require.NoError(t, err)

	w, err := repo.FindWarehouse(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kartal Depo", w.Name)

	w.Name = "Kartal Ana Depo"
	require.NoError(t, repo.UpdateWarehouse(ctx, *w))

	list, total, err := repo.GetWarehouses(ctx, types.Filter{Search: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, "Kartal Ana Depo", list[0].Name)

	require.NoError(t, repo.DeleteWarehouse(ctx, id))
	assert.ErrorIs(t, repo.DeleteWarehouse(ctx, id), apperrors.ErrNotFound)

	_, err = repo.FindWarehouse(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
