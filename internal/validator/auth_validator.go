package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"app/internal/usecase"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignup(ctx context.Context, email string, username string, pass string) error {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	// 必須チェック
	if email == "" || username == "" || pass == "" {
		return ErrInvalidInput
	}

	// email形式と長さ
	if len(email) > 40 || !isEmailLike(email) {
		return ErrInvalidInput
	}

	// usernameは最大8文字
	if len(username) > 8 {
		return ErrInvalidInput
	}

	// パスワード最低文字数（6）
	if len(pass) < 6 {
		return ErrInvalidInput
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, pass string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || pass == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
