package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	bookRepo   repo.BookRepository
	userRepo   repo.UserRepository
}

// DI
func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	bookRepo repo.BookRepository,
	userRepo repo.UserRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
	}
}

// POST /reviews/book/:book_uid の入力DTO
type ReviewCreateInput struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (u *ReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, uid string) (*model.Review, error) {
	review, err := u.reviewRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrReviewNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "review not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return review, nil
}

// レビューを本に付ける。投稿者はaccess tokenのemailで決まる
func (u *ReviewUsecase) AddReviewToBook(ctx context.Context, userEmail string, bookUID string, in ReviewCreateInput) (*model.Review, error) {
	if in.Rating < 0 || in.Rating > 5 {
		return nil, NewHTTPError(http.StatusBadRequest, "rating must be between 0 and 5")
	}
	if in.ReviewText == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "review_text is required")
	}

	book, err := u.bookRepo.FindByUID(ctx, bookUID)
	if err != nil {
		if errors.Is(err, repo.ErrBookNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "book not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user, err := u.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	review := &model.Review{
		UID:        uuid.NewString(),
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
		UserUID:    &user.UID,
		BookUID:    &book.UID,
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return review, nil
}

// 自分のレビューだけ削除できる
func (u *ReviewUsecase) DeleteReview(ctx context.Context, uid string, userEmail string) error {
	review, err := u.reviewRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrReviewNotFound) {
			return NewHTTPError(http.StatusNotFound, "review not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user, err := u.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return NewHTTPError(http.StatusForbidden, "cannot delete this review")
	}

	//投稿者チェック
	if review.UserUID == nil || *review.UserUID != user.UID {
		return NewHTTPError(http.StatusForbidden, "cannot delete this review")
	}

	if err := u.reviewRepo.Delete(ctx, uid); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return nil
}
