package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type reviewGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewReviewGormRepository(db *gorm.DB) domainrepo.ReviewRepository {
	return &reviewGormRepository{db: db}
}

// レビューを新規作成
func (r *reviewGormRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	return nil
}

// 全件を作成日の新しい順で取得
func (r *reviewGormRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UIDで1件取得
func (r *reviewGormRepository) FindByUID(ctx context.Context, uid string) (*model.Review, error) {
	var review model.Review

	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&review).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

// レビューを削除
func (r *reviewGormRepository) Delete(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.Review{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrReviewNotFound
	}

	return nil
}
