package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type BookUsecase struct {
	bookRepo repo.BookRepository
}

// DI
func NewBookUsecase(bookRepo repo.BookRepository) *BookUsecase {
	return &BookUsecase{bookRepo: bookRepo}
}

// POST /books の入力DTO
type BookCreateInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"published_date"`
	PageCount     int    `json:"page_count"`
	Language      string `json:"language"`
}

// PATCH /books/:uid の入力DTO
type BookUpdateInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"page_count"`
	Language  string `json:"language"`
}

func (u *BookUsecase) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := u.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return books, nil
}

func (u *BookUsecase) ListUserBooks(ctx context.Context, userUID string) ([]model.Book, error) {
	books, err := u.bookRepo.FindByUserUID(ctx, userUID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return books, nil
}

func (u *BookUsecase) CreateBook(ctx context.Context, in BookCreateInput, userUID string) (*model.Book, error) {
	if in.Title == "" || in.Author == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "title and author are required")
	}
	if in.PageCount < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "page_count must be >= 0")
	}

	//published_dateは YYYY-MM-DD
	published, err := time.Parse("2006-01-02", in.PublishedDate)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid published_date")
	}

	book := &model.Book{
		UID:           uuid.NewString(),
		Title:         in.Title,
		Author:        in.Author,
		Publisher:     in.Publisher,
		PublishedDate: published,
		PageCount:     in.PageCount,
		Language:      in.Language,
		UserUID:       &userUID,
	}

	if err := u.bookRepo.Create(ctx, book); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return book, nil
}

func (u *BookUsecase) GetBook(ctx context.Context, uid string) (*model.Book, error) {
	book, err := u.bookRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrBookNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "book not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return book, nil
}

func (u *BookUsecase) UpdateBook(ctx context.Context, uid string, in BookUpdateInput) (*model.Book, error) {
	//全項目置き換え。部分的なbodyは受けない
	if in.Title == "" || in.Author == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "title and author are required")
	}
	if in.PageCount < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "page_count must be >= 0")
	}

	book, err := u.bookRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrBookNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "book not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	book.Title = in.Title
	book.Author = in.Author
	book.Publisher = in.Publisher
	book.PageCount = in.PageCount
	book.Language = in.Language

	if err := u.bookRepo.Update(ctx, book); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return book, nil
}

func (u *BookUsecase) DeleteBook(ctx context.Context, uid string) error {
	if err := u.bookRepo.Delete(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrBookNotFound) {
			return NewHTTPError(http.StatusNotFound, "book not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}
