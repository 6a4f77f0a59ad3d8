package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orderRepo: orderRepo}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}

type CreateOrderInput struct {
	UserID int64
	Status model.OrderStatus
	Items  []OrderItemInput
}

type OrderUserSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderProductSummary struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type OrderItemOutput struct {
	ID        int64                `json:"id"`
	ProductID int64                `json:"product_id"`
	Quantity  int64                `json:"quantity"`
	Price     decimal.Decimal      `json:"price"`
	Product   *OrderProductSummary `json:"product,omitempty"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Status      model.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	User        *OrderUserSummary `json:"user,omitempty"`
	Items       []OrderItemOutput `json:"order_items"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Create は明細から合計を算出して注文と明細をひとつのトランザクションで保存する。
// 価格は入力の値をそのままスナップショットとして保存する（商品価格と突き合わせない）。
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if in.UserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Order must have at least one item")
	}

	status := in.Status
	if status == "" {
		status = model.OrderStatusCreated
	}
	if !status.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid order status")
	}

	// totalAmount = Σ(price × quantity)
	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(in.Items))

	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid product id")
		}
		if it.Quantity < 1 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid quantity")
		}
		if it.Price.IsNegative() {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid price")
		}

		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))

		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := model.Order{
		UserID:      in.UserID,
		Status:      status,
		TotalAmount: total,
		Items:       items,
	}

	//注文と明細はまとめて保存（部分注文を残さない）
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Orders().Create(ctx, &order)
	})
	if err != nil {
		if errors.Is(err, repo.ErrInvalidReference) {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return toOrderOutput(order), nil
}

// id降順。明細も注文内でid降順。
func (u *OrderUsecase) FindAll(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orderRepo.ListWithDetails(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderOutput(o))
	}
	return out, nil
}

func (u *OrderUsecase) FindOne(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	order, err := u.orderRepo.FindByIDWithDetails(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return toOrderOutput(order), nil
}

// UpdateStatus はstatusだけを上書きする。遷移の妥当性は見ない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	if !status.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid order status")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	order, err := u.orderRepo.FindByIDWithDetails(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return toOrderOutput(order), nil
}

// Remove は明細→注文の順でひとつのトランザクション内で削除する。
// 注文が無い場合、明細削除は0件のno-opで注文削除がNotFoundになる。
func (u *OrderUsecase) Remove(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, orderID)
	})

	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}

func toOrderOutput(o model.Order) OrderOutput {
	out := OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       make([]OrderItemOutput, 0, len(o.Items)),
		CreatedAt:   o.CreatedAt,
	}

	if o.User != nil {
		out.User = &OrderUserSummary{ID: o.User.ID, Name: o.User.Name}
	}

	for _, it := range o.Items {
		itemOut := OrderItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if it.Product != nil {
			itemOut.Product = &OrderProductSummary{
				ID:    it.Product.ID,
				Name:  it.Product.Name,
				Price: it.Product.Price,
			}
		}
		out.Items = append(out.Items, itemOut)
	}

	return out
}
