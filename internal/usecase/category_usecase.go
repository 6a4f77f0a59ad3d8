package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	category := model.Category{Name: name}

	if err := u.categoryRepo.Create(ctx, &category); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.Category{}, NewHTTPError(http.StatusConflict, "Category already exists")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return category, nil
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return categories, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	category, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return category, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, name string) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	category := model.Category{ID: id, Name: name}

	if err := u.categoryRepo.Update(ctx, &category); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.Category{}, NewHTTPError(http.StatusConflict, "Category already exists")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return category, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}
