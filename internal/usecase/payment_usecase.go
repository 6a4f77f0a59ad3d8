package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 1注文に複数Paymentを許す（参照実装どおり一意制約は張らない）。
type PaymentUsecase struct {
	paymentRepo repo.PaymentRepository
}

// DI
func NewPaymentUsecase(paymentRepo repo.PaymentRepository) *PaymentUsecase {
	return &PaymentUsecase{paymentRepo: paymentRepo}
}

type PaymentInput struct {
	Amount   decimal.Decimal
	Currency string
	Status   model.PaymentStatus
	OrderID  int64
}

func (u *PaymentUsecase) validate(in PaymentInput) error {
	if in.Amount.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "Invalid amount")
	}
	if strings.TrimSpace(in.Currency) == "" {
		return NewHTTPError(http.StatusBadRequest, "Invalid currency")
	}
	if !in.Status.Valid() {
		return NewHTTPError(http.StatusBadRequest, "Invalid payment status")
	}
	if in.OrderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid order id")
	}
	return nil
}

func (u *PaymentUsecase) Create(ctx context.Context, in PaymentInput) (model.Payment, error) {
	if err := u.validate(in); err != nil {
		return model.Payment{}, err
	}

	payment := model.Payment{
		Amount:   in.Amount,
		Currency: strings.TrimSpace(in.Currency),
		Status:   in.Status,
		OrderID:  in.OrderID,
	}

	if err := u.paymentRepo.Create(ctx, &payment); err != nil {
		if errors.Is(err, repo.ErrInvalidReference) {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "Order does not exist")
		}
		return model.Payment{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return payment, nil
}

func (u *PaymentUsecase) Get(ctx context.Context, id int64) (model.Payment, error) {
	if id <= 0 {
		return model.Payment{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	payment, err := u.paymentRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Payment{}, NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	if err != nil {
		return model.Payment{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return payment, nil
}

// PUTなので全フィールド上書き
func (u *PaymentUsecase) Update(ctx context.Context, id int64, in PaymentInput) (model.Payment, error) {
	if id <= 0 {
		return model.Payment{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	if err := u.validate(in); err != nil {
		return model.Payment{}, err
	}

	payment := model.Payment{
		ID:       id,
		Amount:   in.Amount,
		Currency: strings.TrimSpace(in.Currency),
		Status:   in.Status,
		OrderID:  in.OrderID,
	}

	if err := u.paymentRepo.Update(ctx, &payment); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Payment{}, NewHTTPError(http.StatusNotFound, "Payment not found")
		}
		if errors.Is(err, repo.ErrInvalidReference) {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "Order does not exist")
		}
		return model.Payment{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return payment, nil
}

func (u *PaymentUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.paymentRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}
