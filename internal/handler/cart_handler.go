package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddToCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// 参照はオープン、変更系はガード
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	guard := middleware.AuthJWT(cfg)

	e.POST("/cart", h.addToCart, guard)
	e.GET("/cart/:userId", h.getCart)
	e.PATCH("/cart/:cartId", h.updateItem, guard)
	e.DELETE("/cart/:cartId", h.removeItem, guard)
	e.DELETE("/cart/user/:userId", h.clearCart, guard)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	item, err := h.uc.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Item added to cart successfully", item)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	items, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Cart retrieved successfully", items)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), cartID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Cart item updated successfully", item)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), cartID); err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Cart item removed successfully", nil)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	deleted, err := h.uc.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Cart cleared successfully", map[string]int64{"deleted": deleted})
}
