package usecase

import (
	"context"

	"github.com/phenrril/shopdesk/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

// Create validates eagerly and persists only valid customers; a malformed
// email or phone never reaches storage.
func (uc *CustomerUC) Create(ctx context.Context, name, email, phone, city string) (*domain.Customer, error) {
	c, err := domain.NewCustomer(name, email, phone, city)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}

func (uc *CustomerUC) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	return uc.Customers.FindByID(ctx, id)
}

// Delete cascades to the customer's orders and their items at the storage
// layer.
func (uc *CustomerUC) Delete(ctx context.Context, id uint) error {
	return uc.Customers.Delete(ctx, id)
}
