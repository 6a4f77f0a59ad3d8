package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// DeleteByOrderID は明細の無い注文でも0件削除で成功扱い
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
