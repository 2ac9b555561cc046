package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVehicleRepository_Integration_KaskoWindow(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	_, err := testPool.Exec(ctx, `TRUNCATE TABLE vehicles RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO vehicles (plate, kasko_expiry_date) VALUES
			('34 AA 1', CURRENT_DATE + 10),
			('34 AA 2', CURRENT_DATE - 5),
			('34 AA 3', CURRENT_DATE - 400),
			('34 AA 4', CURRENT_DATE + 90)`)
	require.NoError(t, err)

	repo := NewVehicleRepository(testPool, zap.NewNop())
	today := time.Now()
	list, err := repo.FindKaskoExpiring(ctx, today.AddDate(0, 0, -30), today.AddDate(0, 0, 30))
	require.NoError(t, err)

	plates := make([]string, 0, len(list))
	for _, v := range list {
		plates = append(plates, v.Plate)
	}
	assert.Equal(t, []string{"34 AA 2", "34 AA 1"}, plates)
}
