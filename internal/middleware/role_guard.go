package middleware

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// claimsのemailからユーザーを引いて、roleが許可リストにあるか確認。
// 通過したユーザーはcontextへ入れるので、後段はDBを引き直さなくてよい
func RoleGuard(users repository.UserRepository, allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//TokenBearerが入れたclaimsを取得
			claims, ok := ClaimsFrom(c)
			if !ok {
				return c.JSON(http.StatusForbidden, errorJSON("not authenticated"))
			}

			//DBから最新のuserを取得する
			user, err := users.FindByEmail(c.Request().Context(), claims.User.Email)
			if err != nil || user == nil {
				return c.JSON(http.StatusForbidden, errorJSON("not authenticated"))
			}

			//roleが許可リストに入っているか
			for _, role := range allowed {
				if user.Role == role {
					c.Set(CtxUserKey, user)
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorJSON("you are not allowed to perform this action"))
		}
	}
}

// contextからユーザーを取り出す（RoleGuard通過後に使う）
func UserFrom(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(CtxUserKey).(*model.User)
	return user, ok
}
