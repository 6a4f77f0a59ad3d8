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

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type CreateProductInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID int64
}

// 部分更新。nilのフィールドは触らない。
type UpdateProductInput struct {
	Name       *string
	Price      *decimal.Decimal
	CategoryID *int64
}

// GET /product の入力
type ListProductsInput struct {
	Page  int
	Limit int
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}
	// カテゴリはidで解決する
	if in.CategoryID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	product := model.Product{
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		CategoryID: in.CategoryID,
	}

	if err := u.productRepo.Create(ctx, &product); err != nil {
		// 存在しないカテゴリはFK違反で返る
		if errors.Is(err, repo.ErrInvalidReference) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "Category does not exist")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return product, nil
}

// page/limit未指定はpage=1, limit=10
func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	page := in.Page
	if page == 0 {
		page = 1
	}
	limit := in.Limit
	if limit == 0 {
		limit = 10
	}

	if page < 1 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid page")
	}
	if limit < 1 || limit > 100 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid limit")
	}

	offset := (page - 1) * limit

	products, err := u.productRepo.List(ctx, offset, limit)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	product, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Record not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return product, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	product, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Record not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID <= 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		product.CategoryID = *in.CategoryID
		product.Category = nil
	}

	if err := u.productRepo.Update(ctx, &product); err != nil {
		if errors.Is(err, repo.ErrInvalidReference) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "Category does not exist")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "Record not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return product, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Record not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}

func (u *ProductUsecase) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid query")
	}

	products, err := u.productRepo.Search(ctx, query)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return products, nil
}
