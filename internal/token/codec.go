package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// 署名・期限・形式のどれかが不正。詳細は外に出さない
var ErrTokenInvalid = errors.New("token invalid")

// トークンに載せるユーザー情報
type UserClaims struct {
	Email   string `json:"email"`
	UserUID string `json:"user_uid"`
	Role    string `json:"role,omitempty"`
}

// JWT本体。jtiはRegisteredClaims.ID、expはExpiresAt
type Claims struct {
	User    UserClaims `json:"user"`
	Refresh bool       `json:"refresh"`
	jwt.RegisteredClaims
}

// Codecはアクセス/リフレッシュ両方のトークンを発行・検証する
type Codec struct {
	secret []byte
	method jwt.SigningMethod

	accessTTL  time.Duration
	refreshTTL time.Duration
}

// DI
// algorithmはconfigで許可リスト済みの前提（HS256/HS384/HS512）
func NewCodec(secret string, algorithm string, accessTTL time.Duration, refreshTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("secret is required")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, errors.New("unsupported signing algorithm")
	}

	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 48 * time.Hour
	}

	return &Codec{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Issueは署名済みトークンを1つ発行する。
// jtiは毎回新しいUUID。失効はこのjtiをキーに行う
func (c *Codec) Issue(user UserClaims, ttl time.Duration, refresh bool) (string, error) {
	now := time.Now()

	claims := Claims{
		User:    user,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(c.method, claims)

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// アクセストークン発行（デフォルトTTL）
func (c *Codec) IssueAccess(user UserClaims) (string, error) {
	return c.Issue(user, c.accessTTL, false)
}

// リフレッシュトークン発行（デフォルトTTL）
func (c *Codec) IssueRefresh(user UserClaims) (string, error) {
	return c.Issue(user, c.refreshTTL, true)
}

// Parseは署名とアルゴリズムを検証してclaimsを返す。
// 失敗理由は問わずErrTokenInvalidに畳む（署名不正・期限切れ・形式不正）
func (c *Codec) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}))

	if err != nil || t == nil || !t.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
