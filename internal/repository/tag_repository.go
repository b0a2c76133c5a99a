package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrTagNotFound = errors.New("tag not found")

// タグの保存・取得・更新・削除
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	//作成日の新しい順で全件
	FindAll(ctx context.Context) ([]model.Tag, error)
	FindByUID(ctx context.Context, uid string) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, uid string) error
	//本にタグを紐付ける（中間テーブルへ追加）
	AttachToBook(ctx context.Context, bookUID string, tagUID string) error
}
