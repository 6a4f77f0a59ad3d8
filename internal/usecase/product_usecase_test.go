package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepoMock) List(ctx context.Context, offset int, limit int) ([]model.Product, error) {
	args := m.Called(ctx, offset, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) Search(ctx context.Context, query string) ([]model.Product, error) {
	args := m.Called(ctx, query)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func TestProductUsecase_Create_UnknownCategoryMapsTo400(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	repoMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
		Return(repo.ErrInvalidReference)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:       "Chicken Curry",
		Price:      decimal.NewFromFloat(12.50),
		CategoryID: 999,
	})
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestProductUsecase_Create_RejectsNegativePrice(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:       "Chicken Curry",
		Price:      decimal.NewFromFloat(-1),
		CategoryID: 1,
	})
	assertHTTPError(t, err, http.StatusBadRequest)
	repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_List_DefaultsToPageOneLimitTen(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	repoMock.On("List", mock.Anything, 0, 10).Return([]model.Product{}, nil)

	_, err := uc.List(context.Background(), usecase.ListProductsInput{})
	assert.NoError(t, err)
	repoMock.AssertCalled(t, "List", mock.Anything, 0, 10)
}

func TestProductUsecase_List_OffsetFromPage(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	// page=3, limit=5 → offset=10
	repoMock.On("List", mock.Anything, 10, 5).Return([]model.Product{}, nil)

	_, err := uc.List(context.Background(), usecase.ListProductsInput{Page: 3, Limit: 5})
	assert.NoError(t, err)
	repoMock.AssertCalled(t, "List", mock.Anything, 10, 5)
}

func TestProductUsecase_List_InvalidPaging(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	_, err := uc.List(context.Background(), usecase.ListProductsInput{Page: -1, Limit: 10})
	assertHTTPError(t, err, http.StatusBadRequest)

	_, err = uc.List(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertHTTPError(t, err, http.StatusBadRequest)

	repoMock.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	repoMock.On("FindByID", mock.Anything, int64(42)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 42)
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestProductUsecase_Update_PartialKeepsOtherFields(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	existing := model.Product{
		ID:         2,
		Name:       "Chicken Curry",
		Price:      decimal.NewFromFloat(12.50),
		CategoryID: 1,
	}
	repoMock.On("FindByID", mock.Anything, int64(2)).Return(existing, nil)
	repoMock.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	newPrice := decimal.NewFromFloat(13.00)
	updated, err := uc.Update(context.Background(), 2, usecase.UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, "Chicken Curry", updated.Name)
	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, int64(1), updated.CategoryID)
}

func TestProductUsecase_Search_BlankQuery(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	_, err := uc.Search(context.Background(), "   ")
	assertHTTPError(t, err, http.StatusBadRequest)
	repoMock.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestProductUsecase_Search_NoMatchesIsEmptyList(t *testing.T) {
	repoMock := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(repoMock)

	repoMock.On("Search", mock.Anything, "curry").Return([]model.Product{}, nil)

	products, err := uc.Search(context.Background(), "curry")
	assert.NoError(t, err)
	assert.Empty(t, products)
}
