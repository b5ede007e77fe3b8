package usecase

import (
	"context"

	"github.com/phenrril/shopdesk/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
}

func (uc *CatalogUC) Create(ctx context.Context, name string, price float64, sku string) (*domain.Product, error) {
	p, err := domain.NewProduct(name, price, sku)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}

func (uc *CatalogUC) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return uc.Products.FindBySKU(ctx, sku)
}

func (uc *CatalogUC) Delete(ctx context.Context, id uint) error {
	return uc.Products.Delete(ctx, id)
}

// Discounted wraps a catalog product with a price-adjustment percentage for
// quoting; the discount is not persisted.
func (uc *CatalogUC) Discounted(ctx context.Context, id uint, pct float64) (*domain.DiscountedProduct, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.DiscountedProduct{Product: *p, DiscountPct: pct}, nil
}
