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

// /tags のAPI
type TagHandler struct {
	uc      *usecase.TagUsecase
	codec   *token.Codec
	revoked mw.RevocationChecker
	users   repository.UserRepository
}

// DI
func NewTagHandler(
	uc *usecase.TagUsecase,
	codec *token.Codec,
	revoked mw.RevocationChecker,
	users repository.UserRepository,
) *TagHandler {
	return &TagHandler{
		uc:      uc,
		codec:   codec,
		revoked: revoked,
		users:   users,
	}
}

// タグのルートを登録。全てaccess token + role（user/admin）が必要
func (h *TagHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/tags",
		mw.TokenBearer(h.codec, h.revoked, mw.AccessToken),
		mw.RoleGuard(h.users, model.RoleUser, model.RoleAdmin),
	)

	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/book/:book_uid", h.addToBook)
	g.PUT("/:uid", h.update)
	g.DELETE("/:uid", h.delete)
}

func (h *TagHandler) list(c echo.Context) error {
	tags, err := h.uc.ListTags(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) create(c echo.Context) error {
	var in usecase.TagCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	tag, err := h.uc.AddTag(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) addToBook(c echo.Context) error {
	var in usecase.TagAddInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	book, err := h.uc.AddTagsToBook(c.Request().Context(), c.Param("book_uid"), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, book)
}

func (h *TagHandler) update(c echo.Context) error {
	var in usecase.TagCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	tag, err := h.uc.UpdateTag(c.Request().Context(), c.Param("uid"), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteTag(c.Request().Context(), c.Param("uid")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
