package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	mw "app/internal/middleware"
	"app/internal/repository"
	"app/internal/token"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc      *usecase.AuthUsecase
	codec   *token.Codec
	revoked mw.RevocationChecker
	users   repository.UserRepository
}

// DIコンストラクタ
func NewAuthHandler(
	uc *usecase.AuthUsecase,
	codec *token.Codec,
	revoked mw.RevocationChecker,
	users repository.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		codec:   codec,
		revoked: revoked,
		users:   users,
	}
}

// 認証ルートを登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	accessBearer := mw.TokenBearer(h.codec, h.revoked, mw.AccessToken)
	refreshBearer := mw.TokenBearer(h.codec, h.revoked, mw.RefreshToken)

	g := e.Group("/auth")
	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.GET("/refresh_token", h.refresh, refreshBearer)
	g.GET("/me", h.me, accessBearer, mw.RoleGuard(h.users, model.RoleAdmin, model.RoleUser))
	g.GET("/logout", h.logout, accessBearer)
}

// POST /auth/signup
func (h *AuthHandler) signup(c echo.Context) error {
	var req usecase.AuthSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	user, err := h.uc.Signup(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, validator.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "user with email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, user)
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, validator.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "invalid email or password"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, out)
}

// GET /auth/refresh_token（RefreshTokenBearer通過後）
func (h *AuthHandler) refresh(c echo.Context) error {
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	out, err := h.uc.Refresh(c.Request().Context(), claims)
	if err != nil {
		if errors.Is(err, usecase.ErrTokenExpired) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid or expired token"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}

// GET /auth/me（AccessTokenBearer + RoleGuard通過後）
func (h *AuthHandler) me(c echo.Context) error {
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	user, err := h.uc.Me(c.Request().Context(), claims.User.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, user)
}

// GET /auth/logout（AccessTokenBearer通過後）
func (h *AuthHandler) logout(c echo.Context) error {
	claims, ok := mw.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authenticated"})
	}

	out, err := h.uc.Logout(c.Request().Context(), claims)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}
