package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 1ユーザー×1商品=1行の不変条件はrepository側のupsertが守る。
type CartUsecase struct {
	cartRepo repo.CartRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

type AddToCartInput struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddToCartInput) (model.CartItem, error) {
	if in.UserID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}
	if in.ProductID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}
	if in.Quantity < 1 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}

	item, err := u.cartRepo.Upsert(ctx, in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		// upsertがレースに負けた場合だけ一意制約違反が残る
		if errors.Is(err, repo.ErrConflict) {
			return model.CartItem{}, NewHTTPError(http.StatusConflict, "Item already in cart")
		}
		if errors.Is(err, repo.ErrInvalidReference) {
			return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return item, nil
}

// GetCart は明細を商品結合・作成日時昇順で返す。空でも200（空配列）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if userID <= 0 {
		return []model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}

	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return items, nil
}

// UpdateItem は数量を上書きして更新後の明細を返す。
func (u *CartUsecase) UpdateItem(ctx context.Context, cartItemID int64, quantity int64) (model.CartItem, error) {
	if cartItemID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	if quantity < 1 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, cartItemID, quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	item, err := u.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return item, nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID int64) error {
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.cartRepo.DeleteByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}

// ClearCart はユーザーの明細を全削除して消した件数を返す。
// 0件でもエラーにしない。
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}

	deleted, err := u.cartRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return deleted, nil
}
