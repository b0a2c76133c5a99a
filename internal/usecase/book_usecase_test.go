package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: BookRepository
// =====================

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *MockBookRepository) FindByUserUID(ctx context.Context, userUID string) ([]model.Book, error) {
	args := m.Called(ctx, userUID)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *MockBookRepository) FindByUID(ctx context.Context, uid string) (*model.Book, error) {
	args := m.Called(ctx, uid)
	book, _ := args.Get(0).(*model.Book)
	return book, args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func TestCreateBookAssignsSubmitter(t *testing.T) {
	books := new(MockBookRepository)
	books.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := usecase.NewBookUsecase(books)

	in := usecase.BookCreateInput{
		Title:         "Deep Work",
		Author:        "Cal Newport",
		Publisher:     "Grand Central",
		PublishedDate: "2016-01-05",
		PageCount:     296,
		Language:      "en",
	}
	book, err := uc.CreateBook(context.Background(), in, "user-uid-1")

	require.NoError(t, err)
	assert.NotEmpty(t, book.UID)
	require.NotNil(t, book.UserUID)
	assert.Equal(t, "user-uid-1", *book.UserUID)
	assert.Equal(t, 2016, book.PublishedDate.Year())
}

func TestCreateBookValidatesInput(t *testing.T) {
	uc := usecase.NewBookUsecase(new(MockBookRepository))

	cases := []struct {
		name string
		in   usecase.BookCreateInput
	}{
		{"missing title", usecase.BookCreateInput{Author: "a", PublishedDate: "2020-01-01"}},
		{"missing author", usecase.BookCreateInput{Title: "t", PublishedDate: "2020-01-01"}},
		{"negative page count", usecase.BookCreateInput{Title: "t", Author: "a", PageCount: -1, PublishedDate: "2020-01-01"}},
		{"bad date", usecase.BookCreateInput{Title: "t", Author: "a", PublishedDate: "01/05/2016"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateBook(context.Background(), tc.in, "user-uid-1")
			require.Error(t, err)
			httpErr, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		})
	}
}

func TestGetBookNotFound(t *testing.T) {
	books := new(MockBookRepository)
	books.On("FindByUID", mock.Anything, "missing").Return(nil, repository.ErrBookNotFound)
	uc := usecase.NewBookUsecase(books)

	_, err := uc.GetBook(context.Background(), "missing")

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestUpdateBookRejectsPartialBody(t *testing.T) {
	existing := &model.Book{UID: "b1", Title: "keep me", Author: "keep me too", Publisher: "pub", PageCount: 100, Language: "en"}
	books := new(MockBookRepository)
	books.On("FindByUID", mock.Anything, "b1").Return(existing, nil)
	uc := usecase.NewBookUsecase(books)

	cases := []struct {
		name string
		in   usecase.BookUpdateInput
	}{
		{"title only", usecase.BookUpdateInput{Title: "x"}},
		{"missing title", usecase.BookUpdateInput{Author: "a", Publisher: "p", PageCount: 1, Language: "en"}},
		{"missing author", usecase.BookUpdateInput{Title: "t", Publisher: "p", PageCount: 1, Language: "en"}},
		{"negative page count", usecase.BookUpdateInput{Title: "t", Author: "a", PageCount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpdateBook(context.Background(), "b1", tc.in)
			require.Error(t, err)
			httpErr, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		})
	}

	//不正なbodyでは保存まで到達しない（既存値が潰れない）
	books.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, "keep me too", existing.Author)
	assert.Equal(t, 100, existing.PageCount)
}

func TestUpdateBookAppliesFields(t *testing.T) {
	existing := &model.Book{UID: "b1", Title: "old", Author: "old", PageCount: 1}
	books := new(MockBookRepository)
	books.On("FindByUID", mock.Anything, "b1").Return(existing, nil)
	books.On("Update", mock.Anything, mock.Anything).Return(nil)
	uc := usecase.NewBookUsecase(books)

	out, err := uc.UpdateBook(context.Background(), "b1", usecase.BookUpdateInput{
		Title:     "new title",
		Author:    "new author",
		Publisher: "pub",
		PageCount: 42,
		Language:  "ja",
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", out.Title)
	assert.Equal(t, 42, out.PageCount)
	books.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteBookNotFound(t *testing.T) {
	books := new(MockBookRepository)
	books.On("Delete", mock.Anything, "missing").Return(repository.ErrBookNotFound)
	uc := usecase.NewBookUsecase(books)

	err := uc.DeleteBook(context.Background(), "missing")

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
