package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Routerは各ハンドラが自分のルートを登録するための約束
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

// Newはechoを組み立てて返す
func New(routers ...Router) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	//開発用に全オリジン許可
	e.Use(middleware.CORS())

	for _, r := range routers {
		r.RegisterRoutes(e)
	}

	return e
}

// Startはサーバを起動する
func Start(addr string, authH *handler.AuthHandler, bookH *handler.BookHandler, reviewH *handler.ReviewHandler, tagH *handler.TagHandler) error {
	e := New(authH, bookH, reviewH, tagH)
	return e.Start(addr)
}
