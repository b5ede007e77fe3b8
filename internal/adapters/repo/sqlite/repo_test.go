package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func mustCustomer(t *testing.T, db *gorm.DB, name, email string, city string) *domain.Customer {
	t.Helper()
	c, err := domain.NewCustomer(name, email, "+1 555-0100", city)
	require.NoError(t, err)
	_, err = NewCustomerRepo(db).Create(context.Background(), c)
	require.NoError(t, err)
	return c
}

func mustProduct(t *testing.T, db *gorm.DB, name string, price float64, sku string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(name, price, sku)
	require.NoError(t, err)
	_, err = NewProductRepo(db).Create(context.Background(), p)
	require.NoError(t, err)
	return p
}

func TestMigrateIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestCustomerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns identifier", func(t *testing.T) {
		db := newTestDB(t)
		c, err := domain.NewCustomer("Ann", "ann@example.com", "+1 555-0100", "Riga")
		require.NoError(t, err)
		id, err := NewCustomerRepo(db).Create(ctx, c)
		require.NoError(t, err)
		assert.NotZero(t, id)
		assert.Equal(t, id, c.ID)
	})

	t.Run("duplicate email is a distinguishable constraint error", func(t *testing.T) {
		db := newTestDB(t)
		mustCustomer(t, db, "Ann", "ann@example.com", "Riga")

		dup, err := domain.NewCustomer("Other Ann", "ann@example.com", "7654321", "")
		require.NoError(t, err)
		_, err = NewCustomerRepo(db).Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicate))

		var cerr *domain.ConstraintError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "customers", cerr.Table)
	})

	t.Run("list newest first by id", func(t *testing.T) {
		db := newTestDB(t)
		mustCustomer(t, db, "First", "first@example.com", "")
		mustCustomer(t, db, "Second", "second@example.com", "")

		list, err := NewCustomerRepo(db).List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Second", list[0].Name)
		assert.Equal(t, "First", list[1].Name)
	})

	t.Run("find missing returns ErrNotFound", func(t *testing.T) {
		db := newTestDB(t)
		_, err := NewCustomerRepo(db).FindByID(ctx, 12345)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProductRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate sku rejected", func(t *testing.T) {
		db := newTestDB(t)
		mustProduct(t, db, "Widget", 9.99, "W-1")

		p, err := domain.NewProduct("Widget clone", 5, "W-1")
		require.NoError(t, err)
		_, err = NewProductRepo(db).Create(ctx, p)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("find by sku", func(t *testing.T) {
		db := newTestDB(t)
		mustProduct(t, db, "Widget", 9.99, "W-1")

		got, err := NewProductRepo(db).FindBySKU(ctx, "W-1")
		require.NoError(t, err)
		assert.Equal(t, "Widget", got.Name)

		_, err = NewProductRepo(db).FindBySKU(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("composite read returns line items", func(t *testing.T) {
		db := newTestDB(t)
		cust := mustCustomer(t, db, "Ann", "ann@example.com", "Riga")
		p1 := mustProduct(t, db, "Widget", 10, "W-1")
		p2 := mustProduct(t, db, "Gadget", 2.5, "G-1")

		o := domain.NewOrder(cust.ID, time.Now())
		require.NoError(t, o.AddItem(domain.OrderItem{ProductID: p1.ID, Quantity: 2, UnitPrice: p1.Price}))
		require.NoError(t, o.AddItem(domain.OrderItem{ProductID: p2.ID, Quantity: 1, UnitPrice: p2.Price}))

		id, err := NewOrderRepo(db).Create(ctx, o)
		require.NoError(t, err)

		got, err := NewOrderRepo(db).FindByID(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		assert.Equal(t, 22.5, got.Total())
	})

	t.Run("order for missing customer is a foreign key error", func(t *testing.T) {
		db := newTestDB(t)
		o := domain.NewOrder(999, time.Now())
		_, err := NewOrderRepo(db).Create(ctx, o)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForeignKey))
	})

	t.Run("item for missing product is a foreign key error", func(t *testing.T) {
		db := newTestDB(t)
		cust := mustCustomer(t, db, "Ann", "ann@example.com", "")
		o := domain.NewOrder(cust.ID, time.Now())
		require.NoError(t, o.AddItem(domain.OrderItem{ProductID: 999, Quantity: 1, UnitPrice: 1}))
		_, err := NewOrderRepo(db).Create(ctx, o)
		assert.ErrorIs(t, err, domain.ErrForeignKey)
	})

	t.Run("list newest first by created_at", func(t *testing.T) {
		db := newTestDB(t)
		cust := mustCustomer(t, db, "Ann", "ann@example.com", "")
		repo := NewOrderRepo(db)

		older := domain.NewOrder(cust.ID, time.Now().Add(-time.Hour))
		newer := domain.NewOrder(cust.ID, time.Now())
		_, err := repo.Create(ctx, older)
		require.NoError(t, err)
		_, err = repo.Create(ctx, newer)
		require.NoError(t, err)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
	})

	t.Run("deleting a customer cascades to orders and items", func(t *testing.T) {
		db := newTestDB(t)
		cust := mustCustomer(t, db, "Ann", "ann@example.com", "")
		p := mustProduct(t, db, "Widget", 10, "W-1")

		o := domain.NewOrder(cust.ID, time.Now())
		require.NoError(t, o.AddItem(domain.OrderItem{ProductID: p.ID, Quantity: 1, UnitPrice: p.Price}))
		_, err := NewOrderRepo(db).Create(ctx, o)
		require.NoError(t, err)

		require.NoError(t, NewCustomerRepo(db).Delete(ctx, cust.ID))

		list, err := NewOrderRepo(db).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		var items int64
		require.NoError(t, db.Table("order_items").Count(&items).Error)
		assert.Zero(t, items)
	})
}

func TestReportRepo(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	ann := mustCustomer(t, db, "Ann", "ann@example.com", "Riga")
	bob := mustCustomer(t, db, "Bob", "bob@example.com", "Riga")
	p := mustProduct(t, db, "Widget", 10, "W-1")

	orderRepo := NewOrderRepo(db)
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, cid := range []uint{ann.ID, ann.ID, bob.ID} {
		o := domain.NewOrder(cid, day.Add(time.Duration(i)*time.Hour))
		require.NoError(t, o.AddItem(domain.OrderItem{ProductID: p.ID, Quantity: 1, UnitPrice: p.Price}))
		_, err := orderRepo.Create(ctx, o)
		require.NoError(t, err)
	}

	reports, err := NewReportRepo(db)
	require.NoError(t, err)

	t.Run("orders per customer, busiest first", func(t *testing.T) {
		counts, err := reports.OrdersPerCustomer(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, ann.ID, counts[0].CustomerID)
		assert.Equal(t, 2, counts[0].Orders)
		assert.Equal(t, 1, counts[1].Orders)
	})

	t.Run("orders per day", func(t *testing.T) {
		series, err := reports.OrdersPerDay(ctx)
		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.Equal(t, "2025-03-01", series[0].Day)
		assert.Equal(t, 3, series[0].Orders)
	})

	t.Run("purchases pair customers with products", func(t *testing.T) {
		purchases, err := reports.Purchases(ctx)
		require.NoError(t, err)
		assert.Len(t, purchases, 3)
		for _, pr := range purchases {
			assert.Equal(t, p.ID, pr.ProductID)
		}
	})
}
