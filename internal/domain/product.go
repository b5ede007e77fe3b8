package domain

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:180;not null" json:"name"`
	Price     float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	SKU       string    `gorm:"size:100;not null;uniqueIndex" json:"sku"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProduct(name string, price float64, sku string) (*Product, error) {
	if price < 0 {
		return nil, &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	return &Product{Name: name, Price: price, SKU: sku}, nil
}

func (p *Product) Record() map[string]any {
	return map[string]any{
		"id":    p.ID,
		"name":  p.Name,
		"price": p.Price,
		"sku":   p.SKU,
	}
}

// DiscountedProduct is a pricing-time variant of Product. The discount is not
// persisted; the catalog table stores the base price only.
type DiscountedProduct struct {
	Product
	DiscountPct float64 `json:"discount_pct"`
}

func NewDiscountedProduct(name string, price float64, sku string, pct float64) (*DiscountedProduct, error) {
	p, err := NewProduct(name, price, sku)
	if err != nil {
		return nil, err
	}
	return &DiscountedProduct{Product: *p, DiscountPct: pct}, nil
}

// FinalPrice applies the discount with the percentage clamped to [0,100].
func (p *DiscountedProduct) FinalPrice() float64 {
	pct := p.DiscountPct
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return Round2(p.Price * (1 - pct/100))
}

func (p *DiscountedProduct) Record() map[string]any {
	d := p.Product.Record()
	d["discount_pct"] = p.DiscountPct
	d["final_price"] = p.FinalPrice()
	return d
}
