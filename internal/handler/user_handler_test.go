package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newUserServer(repoMock *userRepoMock) *echo.Echo {
	e := echo.New()
	uc := usecase.NewUserUsecase(repoMock, auth.NewBcryptPasswordHasher(4), validator.NewUserValidator())
	handler.NewUserHandler(uc).RegisterRoutes(e, config.Config{JWTSecret: "test-secret"})
	return e
}

func TestUserHandler_Create(t *testing.T) {
	repoMock := new(userRepoMock)
	repoMock.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 1
		}).
		Return(nil)

	e := newUserServer(repoMock)

	body := `{"email":"sabin@adams.com","name":"Sabin Adams","password":"super-secret-123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		StatusCode int             `json:"statusCode"`
		Message    string          `json:"message"`
		Data       json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)
	assert.Equal(t, "User created successfully", envelope.Message)

	// passwordもハッシュも外に出ない
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "super-secret-123")

	var data map[string]interface{}
	assert.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "sabin@adams.com", data["email"])
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	repoMock := new(userRepoMock)
	repoMock.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(repo.ErrConflict)

	e := newUserServer(repoMock)

	body := `{"email":"sabin@adams.com","name":"Sabin Adams","password":"super-secret-123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already exists")
	// エラーレスポンスにはdataキーが無い
	assert.NotContains(t, rec.Body.String(), `"data"`)
}

func TestUserHandler_Get_RequiresToken(t *testing.T) {
	repoMock := new(userRepoMock)
	e := newUserServer(repoMock)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	repoMock.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserHandler_List_IsOpen(t *testing.T) {
	repoMock := new(userRepoMock)
	repoMock.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Email: "sabin@adams.com", Name: "Sabin Adams", PasswordHash: "$2a$10$hash"},
	}, nil)

	e := newUserServer(repoMock)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}
