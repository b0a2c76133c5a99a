package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type TagUsecase struct {
	tagRepo  repo.TagRepository
	bookRepo repo.BookRepository
	tx       repo.TransactionManager
}

// DI
func NewTagUsecase(
	tagRepo repo.TagRepository,
	bookRepo repo.BookRepository,
	tx repo.TransactionManager,
) *TagUsecase {
	return &TagUsecase{
		tagRepo:  tagRepo,
		bookRepo: bookRepo,
		tx:       tx,
	}
}

// POST /tags・PUT /tags/:uid の入力DTO
type TagCreateInput struct {
	Name string `json:"name"`
}

// POST /tags/book/:book_uid の入力DTO
type TagAddInput struct {
	Tags []TagCreateInput `json:"tags"`
}

func (u *TagUsecase) ListTags(ctx context.Context) ([]model.Tag, error) {
	tags, err := u.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return tags, nil
}

func (u *TagUsecase) AddTag(ctx context.Context, in TagCreateInput) (*model.Tag, error) {
	if in.Name == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	//同名タグは作れない
	existing, err := u.tagRepo.FindByName(ctx, in.Name)
	if err != nil && !errors.Is(err, repo.ErrTagNotFound) {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if existing != nil {
		return nil, NewHTTPError(http.StatusForbidden, "tag exists")
	}

	tag := &model.Tag{
		UID:  uuid.NewString(),
		Name: in.Name,
	}

	if err := u.tagRepo.Create(ctx, tag); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return tag, nil
}

// 本にタグをまとめて付ける。無いタグはその場で作る。
// 作成と紐付けが半端にならないよう1トランザクションで行う
func (u *TagUsecase) AddTagsToBook(ctx context.Context, bookUID string, in TagAddInput) (*model.Book, error) {
	book, err := u.bookRepo.FindByUID(ctx, bookUID)
	if err != nil {
		if errors.Is(err, repo.ErrBookNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "book not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, item := range in.Tags {
			if item.Name == "" {
				return NewHTTPError(http.StatusBadRequest, "tag name is required")
			}

			tag, err := r.Tags().FindByName(ctx, item.Name)
			if err != nil {
				if !errors.Is(err, repo.ErrTagNotFound) {
					return err
				}
				tag = &model.Tag{
					UID:  uuid.NewString(),
					Name: item.Name,
				}
				if err := r.Tags().Create(ctx, tag); err != nil {
					return err
				}
			}

			if err := r.Tags().AttachToBook(ctx, book.UID, tag.UID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return nil, err
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//タグ付きで取り直して返す
	updated, err := u.bookRepo.FindByUID(ctx, bookUID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return updated, nil
}

func (u *TagUsecase) UpdateTag(ctx context.Context, uid string, in TagCreateInput) (*model.Tag, error) {
	if in.Name == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	tag, err := u.tagRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrTagNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "tag does not exist")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	tag.Name = in.Name

	if err := u.tagRepo.Update(ctx, tag); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return tag, nil
}

func (u *TagUsecase) DeleteTag(ctx context.Context, uid string) error {
	if err := u.tagRepo.Delete(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrTagNotFound) {
			return NewHTTPError(http.StatusNotFound, "tag does not exist")
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}
