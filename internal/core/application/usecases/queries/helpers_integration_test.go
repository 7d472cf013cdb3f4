package queries_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/productrepo"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker without a unit of work.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// startTestDatabase boots a disposable PostgreSQL container with the order
// and product tables migrated.
func startTestDatabase(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &productrepo.ProductDTO{})
	if err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// seedProduct inserts a catalog row directly.
func seedProduct(db *gorm.DB, id kernel.UUID, name string, stock int, price float64) error {
	return db.Create(&productrepo.ProductDTO{
		ID:             id.Bytes(),
		Name:           name,
		Stock:          stock,
		QuantityOnHand: stock,
		Price:          price,
	}).Error
}

// buildOrder restores an order in the given status with one line item.
func buildOrder(
	t *testing.T,
	status order.Status,
	userID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	period *kernel.DateRange,
) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), productID, quantity, 10.0, period)
	if err != nil {
		t.Fatal(err)
	}

	id := kernel.NewUUID()
	o, err := order.RestoreOrder(
		id,
		order.GenerateOrderNumber(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), id),
		userID,
		[]*order.Item{item},
		status,
		order.Totals{Untaxed: 100, Total: 100},
		0,
		"",
	)
	if err != nil {
		t.Fatal(err)
	}
	return o
}
