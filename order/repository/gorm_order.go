package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichaelLJp/customer-orders/entity"
	orderpkg "github.com/MichaelLJp/customer-orders/order"
	"gorm.io/gorm"
)

// GormOrderRepo implements order.OrderRepository using GORM.
type GormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) orderpkg.OrderRepository {
	return &GormOrderRepo{db: db}
}

func (r *GormOrderRepo) GetAllOrders(ctx context.Context) ([]entity.Order, error) {
	orders := []entity.Order{}
	if err := r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepo) GetOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// StoreOrder persists a new order. The customer existence check and the
// insert run in one transaction so a concurrent customer delete cannot
// slip between them.
func (r *GormOrderRepo) StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, o.CustomerID); err != nil {
			return err
		}
		return tx.Create(o).Error
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateOrder persists changes to an existing order, re-validating the
// customer reference the same way StoreOrder does.
func (r *GormOrderRepo) UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, o.CustomerID); err != nil {
			return err
		}
		return tx.Save(o).Error
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) DeleteOrder(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Order{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func customerExists(tx *gorm.DB, customerID uint) error {
	var count int64
	if err := tx.Model(&entity.Customer{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("customer with id %d: %w", customerID, entity.ErrInvalidReference)
	}
	return nil
}
