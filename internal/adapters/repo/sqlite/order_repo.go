package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts the order and its line items in one transaction. A
// customer_id or product_id that does not exist surfaces as a foreign-key
// constraint error.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (uint, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if o.Status == "" {
		o.Status = domain.OrderStatusNew
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := o.Items
		o.Items = nil
		if err := tx.Create(o).Error; err != nil {
			o.Items = items
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		o.Items = items
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, mapErr(err, "orders")
	}
	return o.ID, nil
}

// List is the composite read: orders newest-first by creation timestamp,
// line items attached.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").Order("created_at desc").Find(&list).Error; err != nil {
		return nil, mapErr(err, "orders")
	}
	return list, nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Order{}, "id = ?", id)
	if res.Error != nil {
		return mapErr(res.Error, "orders")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
