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

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) ListWithDetails(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByIDWithDetails(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func newOrderUsecaseWithMocks() (*usecase.OrderUsecase, *TxManagerMock, *OrderRepoMock, *OrderItemRepoMock) {
	orders := new(OrderRepoMock)
	orderItems := new(OrderItemRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{orders: orders, orderItems: orderItems}}
	uc := usecase.NewOrderUsecase(tx, orders)

	return uc, tx, orders, orderItems
}

// =====================
// Create
// =====================

func TestOrderUsecase_Create_ComputesTotalAmount(t *testing.T) {
	uc, tx, orders, _ := newOrderUsecaseWithMocks()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*model.Order)
			o.ID = 1
		}).
		Return(nil)

	// (8.50 × 2) + (6.50 × 1) = 23.50
	out, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		UserID: 1,
		Status: model.OrderStatusCreated,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2, Price: decimal.NewFromFloat(8.50)},
			{ProductID: 5, Quantity: 1, Price: decimal.NewFromFloat(6.50)},
		},
	})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(23.50).Equal(out.TotalAmount),
		"total = %s", out.TotalAmount)
	assert.Len(t, out.Items, 2)

	orders.AssertExpectations(t)
}

func TestOrderUsecase_Create_EmptyItems(t *testing.T) {
	uc, _, _, _ := newOrderUsecaseWithMocks()

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		UserID: 1,
		Status: model.OrderStatusCreated,
	})
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Create_UnknownStatus(t *testing.T) {
	uc, _, _, _ := newOrderUsecaseWithMocks()

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		UserID: 1,
		Status: model.OrderStatus("TELEPORTED"),
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)},
		},
	})
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Create_UnknownUserMapsTo400(t *testing.T) {
	uc, tx, orders, _ := newOrderUsecaseWithMocks()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Return(repo.ErrInvalidReference)

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		UserID: 999,
		Status: model.OrderStatusCreated,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)},
		},
	})
	assertHTTPError(t, err, http.StatusBadRequest)
}

// =====================
// FindOne / UpdateStatus
// =====================

func TestOrderUsecase_FindOne_NotFound(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseWithMocks()

	orders.On("FindByIDWithDetails", mock.Anything, int64(42)).
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.FindOne(context.Background(), 42)
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestOrderUsecase_FindOne_MapsUserAndProductSummaries(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseWithMocks()

	order := model.Order{
		ID:          3,
		UserID:      1,
		Status:      model.OrderStatusPaid,
		TotalAmount: decimal.NewFromInt(20),
		User:        &model.User{ID: 1, Name: "Sabin Adams", Email: "sabin@adams.com"},
		Items: []model.OrderItem{
			{
				ID: 8, OrderID: 3, ProductID: 2, Quantity: 2, Price: decimal.NewFromInt(10),
				Product: &model.Product{ID: 2, Name: "Chicken Curry", Price: decimal.NewFromInt(12)},
			},
		},
	}
	orders.On("FindByIDWithDetails", mock.Anything, int64(3)).Return(order, nil)

	out, err := uc.FindOne(context.Background(), 3)
	assert.NoError(t, err)

	if assert.NotNil(t, out.User) {
		assert.Equal(t, "Sabin Adams", out.User.Name)
	}
	if assert.Len(t, out.Items, 1) && assert.NotNil(t, out.Items[0].Product) {
		assert.Equal(t, "Chicken Curry", out.Items[0].Product.Name)
	}
}

func TestOrderUsecase_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseWithMocks()

	// CANCELED→PAIDも通す（遷移表は持たない）
	orders.On("UpdateStatus", mock.Anything, int64(3), model.OrderStatusPaid).Return(nil)
	orders.On("FindByIDWithDetails", mock.Anything, int64(3)).
		Return(model.Order{ID: 3, Status: model.OrderStatusPaid}, nil)

	out, err := uc.UpdateStatus(context.Background(), 3, model.OrderStatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, out.Status)
}

func TestOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseWithMocks()

	orders.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusShipped).
		Return(repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), 42, model.OrderStatusShipped)
	assertHTTPError(t, err, http.StatusNotFound)
}

// =====================
// Remove
// =====================

func TestOrderUsecase_Remove_DeletesItemsThenOrder(t *testing.T) {
	uc, tx, orders, orderItems := newOrderUsecaseWithMocks()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orderItems.On("DeleteByOrderID", mock.Anything, int64(3)).Return(nil)
	orders.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := uc.Remove(context.Background(), 3)
	assert.NoError(t, err)

	orderItems.AssertCalled(t, "DeleteByOrderID", mock.Anything, int64(3))
	orders.AssertCalled(t, "Delete", mock.Anything, int64(3))
}

func TestOrderUsecase_Remove_MissingOrderIsNotFound(t *testing.T) {
	uc, tx, orders, orderItems := newOrderUsecaseWithMocks()

	tx.On("WithinTx", mock.Anything).Return(nil)
	// 明細削除は0件のno-opで成功、注文削除がNotFound
	orderItems.On("DeleteByOrderID", mock.Anything, int64(42)).Return(nil)
	orders.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.Remove(context.Background(), 42)
	assertHTTPError(t, err, http.StatusNotFound)
}
