package validator

import (
	"errors"
	"net/mail"
	"strings"

	"app/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

type userValidator struct{}

// Usecaseは interface を依存注入
func NewUserValidator() usecase.UserValidator {
	return &userValidator{}
}

// 新規ユーザーの入力を検証
func (v *userValidator) ValidateNew(email string, name string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || strings.TrimSpace(name) == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	return v.ValidatePassword(password)
}

// パスワード最低文字数（MVP: 8）
func (v *userValidator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidInput
	}
	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
