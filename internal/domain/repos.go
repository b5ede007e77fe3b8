package domain

import "context"

// CustomerRepo is the persistence gateway for customers. Create assigns and
// returns the generated identifier; List is newest-first by identifier.
type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) (uint, error)
	List(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Delete(ctx context.Context, id uint) error
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) (uint, error)
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

// OrderRepo persists orders together with their line items. List and
// FindByID are composite reads: line items come back attached. List is
// newest-first by creation timestamp.
type OrderRepo interface {
	Create(ctx context.Context, o *Order) (uint, error)
	List(ctx context.Context) ([]Order, error)
	FindByID(ctx context.Context, id uint) (*Order, error)
	Delete(ctx context.Context, id uint) error
}

type CustomerOrderCount struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Orders     int    `json:"orders"`
}

type DailyOrderCount struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

type CustomerPurchase struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
}

// ReportRepo serves the read-only aggregates consumed by the reporting
// layer. It never writes.
type ReportRepo interface {
	OrdersPerCustomer(ctx context.Context) ([]CustomerOrderCount, error)
	OrdersPerDay(ctx context.Context) ([]DailyOrderCount, error)
	Purchases(ctx context.Context) ([]CustomerPurchase, error)
}
