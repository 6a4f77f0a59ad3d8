package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartRepository interface {
	// Upsert は (user, product) をキーに作成または数量加算
	Upsert(ctx context.Context, userID int64, productID int64, quantity int64) (model.CartItem, error)

	// ListByUserID は商品を結合して作成日時昇順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)

	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, quantity int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	// DeleteByUserID はユーザーの明細を全削除し、消した件数を返す
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}
