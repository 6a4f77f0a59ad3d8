package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	auth "app/internal/usecase/auth_usecase"
)

// 入力検証はvalidatorパッケージ側が実装する約束
type UserValidator interface {
	ValidateNew(email string, name string, password string) error
	ValidatePassword(password string) error
}

type UserUsecase struct {
	userRepo  repo.UserRepository
	hasher    auth.PasswordHasher
	validator UserValidator
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, hasher auth.PasswordHasher, validator UserValidator) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
	}
}

type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}

// 部分更新。nilのフィールドは触らない。
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
}

// Create はパスワードをbcryptでハッシュ化して保存する。
// 返すUserはPasswordHashがjson:"-"なので外に出ない。
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (model.User, error) {
	if err := u.validator.ValidateNew(in.Email, in.Name, in.Password); err != nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	user := model.User{
		Email:        strings.TrimSpace(in.Email),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hashed,
	}

	if err := u.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.User{}, NewHTTPError(http.StatusConflict, "Email already exists")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return user, nil
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return users, nil
}

func (u *UserUsecase) Get(ctx context.Context, id int64) (model.User, error) {
	if id <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return user, nil
}

func (u *UserUsecase) Update(ctx context.Context, id int64, in UpdateUserInput) (model.User, error) {
	if id <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		user.Email = email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		user.Name = name
	}
	if in.Password != nil {
		if err := u.validator.ValidatePassword(*in.Password); err != nil {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "Invalid data")
		}
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
		}
		user.PasswordHash = hashed
	}

	if err := u.userRepo.Update(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.User{}, NewHTTPError(http.StatusConflict, "Email already exists")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	return user, nil
}

func (u *UserUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	err := u.userRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	return nil
}
