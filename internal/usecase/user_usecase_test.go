package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func newUserUsecase(repoMock *UserRepoMock, hasher *HasherMock) *usecase.UserUsecase {
	return usecase.NewUserUsecase(repoMock, hasher, validator.NewUserValidator())
}

func TestUserUsecase_Create_StoresHashNotPassword(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	hasher.On("Hash", "super-secret-123").Return("$2a$10$hashed", nil)

	var saved *model.User
	repoMock.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
			saved.ID = 1
		}).
		Return(nil)

	user, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Email:    "sabin@adams.com",
		Name:     "Sabin Adams",
		Password: "super-secret-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "$2a$10$hashed", saved.PasswordHash)
	assert.NotContains(t, saved.PasswordHash, "super-secret-123")

	// json:"-" なので外に出ない
	body, merr := json.Marshal(user)
	assert.NoError(t, merr)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "$2a$10$hashed")
}

func TestUserUsecase_Create_DuplicateEmailMapsTo409(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil)
	repoMock.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(repo.ErrConflict)

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Email:    "sabin@adams.com",
		Name:     "Sabin Adams",
		Password: "super-secret-123",
	})
	assertHTTPError(t, err, http.StatusConflict)
}

func TestUserUsecase_Create_InvalidEmail(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Email:    "not-an-email",
		Name:     "Sabin Adams",
		Password: "super-secret-123",
	})
	assertHTTPError(t, err, http.StatusBadRequest)
	repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUsecase_Create_ShortPassword(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Email:    "sabin@adams.com",
		Name:     "Sabin Adams",
		Password: "short",
	})
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestUserUsecase_Update_PartialKeepsOtherFields(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	existing := model.User{ID: 1, Email: "sabin@adams.com", Name: "Sabin Adams", PasswordHash: "$2a$10$old"}
	repoMock.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	repoMock.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	name := "Sabin A."
	updated, err := uc.Update(context.Background(), 1, usecase.UpdateUserInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Sabin A.", updated.Name)
	assert.Equal(t, "sabin@adams.com", updated.Email)
	assert.Equal(t, "$2a$10$old", updated.PasswordHash)
}

func TestUserUsecase_Get_NotFound(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	repoMock.On("FindByID", mock.Anything, int64(42)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 42)
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestUserUsecase_Delete_NotFound(t *testing.T) {
	repoMock := new(UserRepoMock)
	hasher := new(HasherMock)
	uc := newUserUsecase(repoMock, hasher)

	repoMock.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 42)
	assertHTTPError(t, err, http.StatusNotFound)
}
