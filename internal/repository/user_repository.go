package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// emailのunique制約違反
var ErrEmailTaken = errors.New("email already taken")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// UIDからユーザーを1件取得する。
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//メールからユーザーを一件取得する（books/reviews付き）。
	FindByEmailWithRelations(ctx context.Context, email string) (*model.User, error)
}
