package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Create は注文と明細をネストで保存する。
// GORMのassociation createが同一トランザクションでINSERTするので部分注文は残らない。
func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Omit("User", "Items.Product").Create(order).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (r *OrderGormRepository) ListWithDetails(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_items.id desc")
		}).
		Preload("Items.Product").
		Order("id desc").
		Find(&orders).Error

	if err != nil {
		return []model.Order{}, translateDBError(err)
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByIDWithDetails(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_items.id desc")
		}).
		Preload("Items.Product").
		Where("id = ?", orderID).
		First(&o).Error

	if err != nil {
		return model.Order{}, translateDBError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, orderID)

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
