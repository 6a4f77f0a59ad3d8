package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	// Create は注文と明細をまとめて保存する（全部成功か全部失敗）
	Create(ctx context.Context, order *model.Order) error

	// ListWithDetails はユーザー・明細・商品を結合してid降順で返す。
	// 明細も注文内でid降順。
	ListWithDetails(ctx context.Context) ([]model.Order, error)

	FindByIDWithDetails(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Delete(ctx context.Context, orderID int64) error
}
