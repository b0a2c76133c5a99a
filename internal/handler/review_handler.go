package handler

import (
	"net/http"

	"app/internal/domain/model"
	mw "app/internal/middleware"
	"app/internal/repository"
	"app/internal/token"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reviews のAPI
type ReviewHandler struct {
	uc      *usecase.ReviewUsecase
	codec   *token.Codec
	revoked mw.RevocationChecker
	users   repository.UserRepository
}

// DI
func NewReviewHandler(
	uc *usecase.ReviewUsecase,
	codec *token.Codec,
	revoked mw.RevocationChecker,
	users repository.UserRepository,
) *ReviewHandler {
	return &ReviewHandler{
		uc:      uc,
		codec:   codec,
		revoked: revoked,
		users:   users,
	}
}

// レビューのルートを登録
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	accessBearer := mw.TokenBearer(h.codec, h.revoked, mw.AccessToken)
	userRole := mw.RoleGuard(h.users, model.RoleUser, model.RoleAdmin)

	g := e.Group("/reviews", accessBearer)
	g.GET("", h.list, userRole)
	g.GET("/:uid", h.detail, userRole)
	g.POST("/book/:book_uid", h.create)
	g.DELETE("/:uid", h.delete, userRole)
}

func (h *ReviewHandler) list(c echo.Context) error {
	reviews, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) detail(c echo.Context) error {
	review, err := h.uc.GetReview(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) create(c echo.Context) error {
	var in usecase.ReviewCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	//投稿者はtokenのemail
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	review, err := h.uc.AddReviewToBook(c.Request().Context(), claims.User.Email, c.Param("book_uid"), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) delete(c echo.Context) error {
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	if err := h.uc.DeleteReview(c.Request().Context(), c.Param("uid"), claims.User.Email); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
