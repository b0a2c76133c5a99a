package middleware

import (
	"context"
	"net/http"
	"strings"

	"app/internal/token"

	"github.com/labstack/echo/v4"
)

const (
	CtxClaimsKey = "token_claims" // *token.Claims
	CtxUserKey   = "current_user" // *model.User（RoleGuardが入れる）
)

// 要求するトークン種別
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

// 失効リストの参照だけを約束
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type revokedResponse struct {
	Error      string `json:"error"`
	Resolution string `json:"resolution"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// bearerAuth用のJWT検証ミドルウェア。
// 種別（access/refresh）だけが違うので1本をkindでパラメータ化する
func TokenBearer(codec *token.Codec, revoked RevocationChecker, kind TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusForbidden, errorJSON("not authenticated"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusForbidden, errorJSON("not authenticated"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusForbidden, errorJSON("not authenticated"))
			}

			//JWTをパースして検証する
			claims, err := codec.Parse(rawToken)
			if err != nil {
				return c.JSON(http.StatusForbidden, errorJSON("invalid or expired token"))
			}

			//失効リストを確認。ストア障害はfail-safe（通さない）
			isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, errorJSON("auth store unavailable"))
			}
			if isRevoked {
				return c.JSON(http.StatusForbidden, revokedResponse{
					Error:      "this token is invalid or has been revoked",
					Resolution: "please get a new token",
				})
			}

			//種別チェック
			switch kind {
			case AccessToken:
				if claims.Refresh {
					return c.JSON(http.StatusForbidden, errorJSON("please provide an access token"))
				}
			case RefreshToken:
				if !claims.Refresh {
					return c.JSON(http.StatusForbidden, errorJSON("please provide a refresh token"))
				}
			}

			//contextへ保存
			c.Set(CtxClaimsKey, claims)

			return next(c)
		}
	}
}

// contextからclaimsを取り出す（TokenBearer通過後に使う）
func ClaimsFrom(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(CtxClaimsKey).(*token.Claims)
	return claims, ok
}
