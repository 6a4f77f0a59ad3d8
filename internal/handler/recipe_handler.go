package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RecipeHandler struct {
	uc *usecase.RecipeUsecase
}

// DI
func NewRecipeHandler(uc *usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

type CreateRecipeRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

type UpdateRecipeRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

// 一覧はオープン、他はガード
func (h *RecipeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	guard := middleware.AuthJWT(cfg)

	e.POST("/recipe", h.create, guard)
	e.GET("/recipe", h.list)
	e.GET("/recipe/:id", h.get, guard)
	e.PATCH("/recipe/:id", h.update, guard)
	e.DELETE("/recipe/:id", h.remove, guard)
}

func (h *RecipeHandler) create(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	recipe, err := h.uc.Create(c.Request().Context(), usecase.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) list(c echo.Context) error {
	recipes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Recipes retrieved successfully", recipes)
}

func (h *RecipeHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	recipe, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Recipe retrieved successfully", recipe)
}

func (h *RecipeHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid data")
	}

	recipe, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Recipe updated successfully", recipe)
}

func (h *RecipeHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Recipe deleted successfully", nil)
}
