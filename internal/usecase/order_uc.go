package usecase

import (
	"context"
	"time"

	"github.com/phenrril/shopdesk/internal/domain"
)

// OrderLine is one requested line of a new order. The unit price is looked
// up from the catalog at order time and snapshotted on the item.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// ListFilter narrows and orders the order listing. Status "" means all; By
// is "" (newest-first, straight from storage), "total" or "created_at"
// (both ascending, via the partition sort).
type ListFilter struct {
	Status string
	By     string
}

type OrderUC struct {
	Orders   domain.OrderRepo
	Products domain.ProductRepo
}

func (uc *OrderUC) Create(ctx context.Context, customerID uint, lines []OrderLine) (*domain.Order, error) {
	o := domain.NewOrder(customerID, time.Now())
	for _, ln := range lines {
		p, err := uc.Products.FindByID(ctx, ln.ProductID)
		if err != nil {
			return nil, err
		}
		if err := o.AddItem(domain.OrderItem{
			ProductID: p.ID,
			Quantity:  ln.Quantity,
			UnitPrice: p.Price,
		}); err != nil {
			return nil, err
		}
	}
	if _, err := uc.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OrderUC) List(ctx context.Context, f ListFilter) ([]domain.Order, error) {
	orders, err := uc.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.Status != "" {
		kept := orders[:0:0]
		for _, o := range orders {
			if o.Status == f.Status {
				kept = append(kept, o)
			}
		}
		orders = kept
	}
	switch f.By {
	case "total":
		orders = domain.SortOrders(orders, func(o domain.Order) float64 { return o.Total() })
	case "created_at":
		orders = domain.SortOrders(orders, func(o domain.Order) int64 { return o.CreatedAt.UnixNano() })
	}
	return orders, nil
}

func (uc *OrderUC) Get(ctx context.Context, id uint) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) Delete(ctx context.Context, id uint) error {
	return uc.Orders.Delete(ctx, id)
}
