package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /product の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type CreateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int64           `json:"categoryId"`
}

type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *int64           `json:"categoryId"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/product", h.create)
	e.GET("/product", h.list)
	e.GET("/product/search", h.search)
	e.GET("/product/:id", h.get)
	e.PATCH("/product/:id", h.update)
	e.DELETE("/product/:id", h.remove)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	product, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Record created successfully", product)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "Invalid page")
		}
		page = p
	}

	// limit（default 10）
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "Invalid limit")
		}
		limit = l
	}

	products, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Records retrieved successfully", products)
}

func (h *ProductHandler) search(c echo.Context) error {
	products, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Records retrieved successfully", products)
}

func (h *ProductHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Record retrieved successfully", product)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	product, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Record updated successfully", product)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Record deleted successfully", nil)
}
