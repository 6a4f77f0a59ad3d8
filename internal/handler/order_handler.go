package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	UserID     int64              `json:"userId"`
	Status     string             `json:"status"`
	OrderItems []OrderItemRequest `json:"orderItems"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
	e.GET("/orders", h.findAll)
	e.GET("/orders/:id", h.findOne)
	e.PATCH("/orders/:id/status", h.updateStatus)
	e.DELETE("/orders/:id", h.remove)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	items := make([]usecase.OrderItemInput, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		UserID: req.UserID,
		Status: model.OrderStatus(req.Status),
		Items:  items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) findAll(c echo.Context) error {
	orders, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) findOne(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	order, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Order retrieved successfully", order)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Order status updated successfully", order)
}

func (h *OrderHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.uc.Remove(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Order deleted successfully", nil)
}
