package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrReviewNotFound = errors.New("review not found")

// レビューの保存・取得・削除
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	//作成日の新しい順で全件
	FindAll(ctx context.Context) ([]model.Review, error)
	FindByUID(ctx context.Context, uid string) (*model.Review, error)
	Delete(ctx context.Context, uid string) error
}
