package repository

import (
	"app/internal/domain/model"
	"context"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error

	// List は名前昇順・カテゴリ結合でページングして返す
	List(ctx context.Context, offset int, limit int) ([]model.Product, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Search は商品名の部分一致（大文字小文字を区別しない）
	Search(ctx context.Context, query string) ([]model.Product, error)
}
