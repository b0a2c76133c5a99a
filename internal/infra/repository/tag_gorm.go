package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tagGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewTagGormRepository(db *gorm.DB) domainrepo.TagRepository {
	return &tagGormRepository{db: db}
}

// タグを新規作成
func (r *tagGormRepository) Create(ctx context.Context, tag *model.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return err
	}
	return nil
}

// 全件を作成日の新しい順で取得
func (r *tagGormRepository) FindAll(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tags).Error

	if err != nil {
		return nil, err
	}
	return tags, nil
}

// UIDで1件取得
func (r *tagGormRepository) FindByUID(ctx context.Context, uid string) (*model.Tag, error) {
	var tag model.Tag

	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&tag).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrTagNotFound
		}
		return nil, err
	}

	return &tag, nil
}

// 名前で1件取得
func (r *tagGormRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tag).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrTagNotFound
		}
		return nil, err
	}

	return &tag, nil
}

// タグを更新
func (r *tagGormRepository) Update(ctx context.Context, tag *model.Tag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		return err
	}
	return nil
}

// タグを削除
func (r *tagGormRepository) Delete(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.Tag{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrTagNotFound
	}

	return nil
}

// 本にタグを紐付ける。既に付いていれば何もしない
func (r *tagGormRepository) AttachToBook(ctx context.Context, bookUID string, tagUID string) error {
	link := model.BookTag{
		BookUID: bookUID,
		TagUID:  tagUID,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}
