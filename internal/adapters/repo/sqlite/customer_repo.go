package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) (uint, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, mapErr(err, "customers")
	}
	return c.ID, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var list []domain.Customer
	if err := r.db.WithContext(ctx).Order("id desc").Find(&list).Error; err != nil {
		return nil, mapErr(err, "customers")
	}
	return list, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the customer; orders and their items go with it via the
// ON DELETE CASCADE foreign keys.
func (r *CustomerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id)
	if res.Error != nil {
		return mapErr(res.Error, "customers")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
