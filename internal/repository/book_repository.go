package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrBookNotFound = errors.New("book not found")

// 本の保存・取得・更新・削除
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	//作成日の新しい順で全件
	FindAll(ctx context.Context) ([]model.Book, error)
	//投稿ユーザーで絞り込み
	FindByUserUID(ctx context.Context, userUID string) ([]model.Book, error)
	//レビュー・タグ付きで1件取得
	FindByUID(ctx context.Context, uid string) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, uid string) error
}
