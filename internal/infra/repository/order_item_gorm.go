package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id desc").
		Find(&items).Error

	if err != nil {
		return []model.OrderItem{}, translateDBError(err)
	}
	return items, nil
}

// 明細が無い注文でも0件削除で成功扱い
func (r *OrderItemGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItem{}).Error

	if err != nil {
		return translateDBError(err)
	}
	return nil
}
