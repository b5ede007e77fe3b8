package domain

import "time"

const OrderStatusNew = "new"

type OrderItem struct {
	OrderID   uint     `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint     `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	// UnitPrice is a snapshot of the catalog price at order time and does
	// not follow later catalog changes.
	UnitPrice float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
}

func (it OrderItem) Subtotal() float64 {
	return Round2(float64(it.Quantity) * it.UnitPrice)
}

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time   `gorm:"index" json:"created_at"`
	Status     string      `gorm:"size:30;not null;default:new" json:"status"`
	Items      []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

func NewOrder(customerID uint, createdAt time.Time) *Order {
	return &Order{CustomerID: customerID, CreatedAt: createdAt, Status: OrderStatusNew}
}

// AddItem appends a line item. Non-positive quantity is rejected and the
// item list is left unchanged; insertion order is line order.
func (o *Order) AddItem(it OrderItem) error {
	if it.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "quantity must be positive"}
	}
	o.Items = append(o.Items, it)
	return nil
}

func (o *Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Subtotal()
	}
	return Round2(sum)
}

func (o *Order) Record() map[string]any {
	return map[string]any{
		"id":          o.ID,
		"customer_id": o.CustomerID,
		"created_at":  o.CreatedAt,
		"status":      o.Status,
		"total":       o.Total(),
	}
}
