package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type bookGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewBookGormRepository(db *gorm.DB) domainrepo.BookRepository {
	return &bookGormRepository{db: db}
}

// 本を新規作成
func (r *bookGormRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return err
	}
	return nil
}

// 全件を作成日の新しい順で取得
func (r *bookGormRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&books).Error

	if err != nil {
		return nil, err
	}
	return books, nil
}

// 投稿ユーザーのUIDで絞り込み
func (r *bookGormRepository) FindByUserUID(ctx context.Context, userUID string) ([]model.Book, error) {
	var books []model.Book

	err := r.db.WithContext(ctx).
		Where("user_uid = ?", userUID).
		Order("created_at DESC").
		Find(&books).Error

	if err != nil {
		return nil, err
	}
	return books, nil
}

// UIDで1件取得（レビュー・タグ付き）
func (r *bookGormRepository) FindByUID(ctx context.Context, uid string) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).
		Preload("Reviews").
		Preload("Tags").
		Where("uid = ?", uid).
		First(&book).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrBookNotFound
		}
		return nil, err
	}

	return &book, nil
}

// 本を更新
func (r *bookGormRepository) Update(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return err
	}
	return nil
}

// 本を削除
func (r *bookGormRepository) Delete(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.Book{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrBookNotFound
	}

	return nil
}
