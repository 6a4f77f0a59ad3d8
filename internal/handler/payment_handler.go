package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type PaymentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
	OrderID  int64           `json:"orderId"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments", h.create)
	e.GET("/payments/:id", h.get)
	e.PUT("/payments/:id", h.update)
	e.DELETE("/payments/:id", h.remove)
}

func (h *PaymentHandler) create(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	payment, err := h.uc.Create(c.Request().Context(), usecase.PaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   model.PaymentStatus(req.Status),
		OrderID:  req.OrderID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) get(c echo.Context) error {
	//数値idに矯正してから引く
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	payment, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	payment, err := h.uc.Update(c.Request().Context(), id, usecase.PaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   model.PaymentStatus(req.Status),
		OrderID:  req.OrderID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Payment updated successfully", payment)
}

func (h *PaymentHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Payment deleted successfully", nil)
}
