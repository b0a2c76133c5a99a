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

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /books のAPI
type BookHandler struct {
	uc      *usecase.BookUsecase
	codec   *token.Codec
	revoked mw.RevocationChecker
	users   repository.UserRepository
}

// DI
func NewBookHandler(
	uc *usecase.BookUsecase,
	codec *token.Codec,
	revoked mw.RevocationChecker,
	users repository.UserRepository,
) *BookHandler {
	return &BookHandler{
		uc:      uc,
		codec:   codec,
		revoked: revoked,
		users:   users,
	}
}

// 本のルートを登録。全てaccess token + role（admin/user）が必要
func (h *BookHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/books",
		mw.TokenBearer(h.codec, h.revoked, mw.AccessToken),
		mw.RoleGuard(h.users, model.RoleAdmin, model.RoleUser),
	)

	g.GET("", h.list)
	g.GET("/user/:user_uid", h.listByUser)
	g.POST("", h.create)
	g.GET("/:uid", h.detail)
	g.PATCH("/:uid", h.update)
	g.DELETE("/:uid", h.delete)
}

func (h *BookHandler) list(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) listByUser(c echo.Context) error {
	books, err := h.uc.ListUserBooks(c.Request().Context(), c.Param("user_uid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) create(c echo.Context) error {
	var in usecase.BookCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	//投稿者はtokenのuser_uid
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	book, err := h.uc.CreateBook(c.Request().Context(), in, claims.User.UserUID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, book)
}

func (h *BookHandler) detail(c echo.Context) error {
	book, err := h.uc.GetBook(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) update(c echo.Context) error {
	var in usecase.BookUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), c.Param("uid"), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteBook(c.Request().Context(), c.Param("uid")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
