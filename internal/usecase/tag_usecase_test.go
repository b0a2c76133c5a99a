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
// Mock: TagRepository
// =====================

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]model.Tag)
	return tags, args.Error(1)
}

func (m *MockTagRepository) FindByUID(ctx context.Context, uid string) (*model.Tag, error) {
	args := m.Called(ctx, uid)
	tag, _ := args.Get(0).(*model.Tag)
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	tag, _ := args.Get(0).(*model.Tag)
	return tag, args.Error(1)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockTagRepository) AttachToBook(ctx context.Context, bookUID string, tagUID string) error {
	args := m.Called(ctx, bookUID, tagUID)
	return args.Error(0)
}

// WithinTxをそのまま同じrepoで実行するスタブ
type stubTxRepos struct {
	books repository.BookRepository
	tags  repository.TagRepository
}

func (r *stubTxRepos) Books() repository.BookRepository { return r.books }
func (r *stubTxRepos) Tags() repository.TagRepository   { return r.tags }

type stubTxManager struct {
	repos *stubTxRepos
}

func (tm *stubTxManager) WithinTx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	return fn(tm.repos)
}

type tagFixture struct {
	uc    *usecase.TagUsecase
	tags  *MockTagRepository
	books *MockBookRepository
}

func newTagFixture() *tagFixture {
	tags := new(MockTagRepository)
	books := new(MockBookRepository)
	tx := &stubTxManager{repos: &stubTxRepos{books: books, tags: tags}}
	return &tagFixture{
		uc:    usecase.NewTagUsecase(tags, books, tx),
		tags:  tags,
		books: books,
	}
}

func TestAddTagCreatesTag(t *testing.T) {
	f := newTagFixture()
	f.tags.On("FindByName", mock.Anything, "fiction").Return(nil, repository.ErrTagNotFound)
	f.tags.On("Create", mock.Anything, mock.Anything).Return(nil)

	tag, err := f.uc.AddTag(context.Background(), usecase.TagCreateInput{Name: "fiction"})

	require.NoError(t, err)
	assert.NotEmpty(t, tag.UID)
	assert.Equal(t, "fiction", tag.Name)
}

func TestAddTagRejectsDuplicateName(t *testing.T) {
	f := newTagFixture()
	f.tags.On("FindByName", mock.Anything, "fiction").Return(&model.Tag{UID: "t1", Name: "fiction"}, nil)

	_, err := f.uc.AddTag(context.Background(), usecase.TagCreateInput{Name: "fiction"})

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "tag exists", httpErr.Message)
	f.tags.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddTagRequiresName(t *testing.T) {
	f := newTagFixture()

	_, err := f.uc.AddTag(context.Background(), usecase.TagCreateInput{})

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestAddTagsToBookCreatesMissingTags(t *testing.T) {
	f := newTagFixture()
	book := &model.Book{UID: "b1", Title: "t"}
	f.books.On("FindByUID", mock.Anything, "b1").Return(book, nil)

	//"fiction"は既存、"sci-fi"はその場で作られる
	f.tags.On("FindByName", mock.Anything, "fiction").Return(&model.Tag{UID: "t1", Name: "fiction"}, nil)
	f.tags.On("FindByName", mock.Anything, "sci-fi").Return(nil, repository.ErrTagNotFound)
	f.tags.On("Create", mock.Anything, mock.MatchedBy(func(tag *model.Tag) bool {
		return tag.Name == "sci-fi" && tag.UID != ""
	})).Return(nil)
	f.tags.On("AttachToBook", mock.Anything, "b1", mock.Anything).Return(nil)

	updated, err := f.uc.AddTagsToBook(context.Background(), "b1", usecase.TagAddInput{
		Tags: []usecase.TagCreateInput{{Name: "fiction"}, {Name: "sci-fi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", updated.UID)
	f.tags.AssertNumberOfCalls(t, "AttachToBook", 2)
	f.tags.AssertNumberOfCalls(t, "Create", 1)
}

func TestAddTagsToBookBookNotFound(t *testing.T) {
	f := newTagFixture()
	f.books.On("FindByUID", mock.Anything, "missing").Return(nil, repository.ErrBookNotFound)

	_, err := f.uc.AddTagsToBook(context.Background(), "missing", usecase.TagAddInput{
		Tags: []usecase.TagCreateInput{{Name: "fiction"}},
	})

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	f.tags.AssertNotCalled(t, "AttachToBook", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddTagsToBookRejectsEmptyName(t *testing.T) {
	f := newTagFixture()
	f.books.On("FindByUID", mock.Anything, "b1").Return(&model.Book{UID: "b1"}, nil)

	_, err := f.uc.AddTagsToBook(context.Background(), "b1", usecase.TagAddInput{
		Tags: []usecase.TagCreateInput{{Name: ""}},
	})

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestUpdateTagNotFound(t *testing.T) {
	f := newTagFixture()
	f.tags.On("FindByUID", mock.Anything, "missing").Return(nil, repository.ErrTagNotFound)

	_, err := f.uc.UpdateTag(context.Background(), "missing", usecase.TagCreateInput{Name: "renamed"})

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "tag does not exist", httpErr.Message)
}

func TestDeleteTagNotFound(t *testing.T) {
	f := newTagFixture()
	f.tags.On("Delete", mock.Anything, "missing").Return(repository.ErrTagNotFound)

	err := f.uc.DeleteTag(context.Background(), "missing")

	require.Error(t, err)
	httpErr, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
