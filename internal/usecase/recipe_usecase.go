package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type RecipeUsecase struct {
	recipeRepo repo.RecipeRepository
}

// DI
func NewRecipeUsecase(recipeRepo repo.RecipeRepository) *RecipeUsecase {
	return &RecipeUsecase{recipeRepo: recipeRepo}
}

type CreateRecipeInput struct {
	Title        string
	Description  string
	Ingredients  string
	Instructions string
}

// 部分更新。nilのフィールドは触らない。
type UpdateRecipeInput struct {
	Title        *string
	Description  *string
	Ingredients  *string
	Instructions *string
}

func (u *RecipeUsecase) Create(ctx context.Context, in CreateRecipeInput) (model.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Ingredients) == "" ||
		strings.TrimSpace(in.Instructions) == "" {
		return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	recipe := model.Recipe{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	}

	if err := u.recipeRepo.Create(ctx, &recipe); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.Recipe{}, NewHTTPError(http.StatusConflict, "Recipe already exists")
		}
		return model.Recipe{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return recipe, nil
}

func (u *RecipeUsecase) List(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := u.recipeRepo.List(ctx)
	if err != nil {
		return []model.Recipe{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return recipes, nil
}

func (u *RecipeUsecase) Get(ctx context.Context, id int64) (model.Recipe, error) {
	if id <= 0 {
		return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	recipe, err := u.recipeRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Recipe{}, NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if err != nil {
		return model.Recipe{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return recipe, nil
}

func (u *RecipeUsecase) Update(ctx context.Context, id int64, in UpdateRecipeInput) (model.Recipe, error) {
	if id <= 0 {
		return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	recipe, err := u.recipeRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Recipe{}, NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if err != nil {
		return model.Recipe{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		recipe.Title = title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Ingredients != nil {
		if strings.TrimSpace(*in.Ingredients) == "" {
			return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		if strings.TrimSpace(*in.Instructions) == "" {
			return model.Recipe{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		recipe.Instructions = *in.Instructions
	}

	if err := u.recipeRepo.Update(ctx, &recipe); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.Recipe{}, NewHTTPError(http.StatusConflict, "Recipe already exists")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return model.Recipe{}, NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return model.Recipe{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return recipe, nil
}

func (u *RecipeUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.recipeRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}
