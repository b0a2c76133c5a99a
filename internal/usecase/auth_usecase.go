package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/password"
	"app/internal/repository"
	"app/internal/token"

	"github.com/google/uuid"
)

var (
	//403 メールかパスワードが違う（どちらかは区別しない）
	ErrInvalidCredentials = errors.New("invalid email or password")
	//403 email重複
	ErrEmailAlreadyExists = errors.New("user with email already exists")
	//400 リフレッシュトークンの期限切れ
	ErrTokenExpired = errors.New("invalid or expired token")
	//500
	ErrInternal = errors.New("internal error")
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateSignup(ctx context.Context, email string, username string, pass string) error
	ValidateLogin(ctx context.Context, email string, pass string) error
}

// 失効リストへの登録だけを約束
type Revoker interface {
	Revoke(ctx context.Context, jti string) error
}

type AuthSignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginで返す最小限の公開情報
type PublicUser struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
}

type AuthLoginResponse struct {
	Message      string     `json:"message"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         PublicUser `json:"user"`
}

type AuthRefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type AuthUsecase struct {
	users     repository.UserRepository
	hasher    *password.Hasher
	codec     *token.Codec
	revoker   Revoker
	validator AuthValidator
}

func NewAuthUsecase(
	users repository.UserRepository,
	hasher *password.Hasher,
	codec *token.Codec,
	revoker Revoker,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		hasher:    hasher,
		codec:     codec,
		revoker:   revoker,
		validator: validator,
	}
}

func (u *AuthUsecase) Signup(ctx context.Context, req AuthSignupRequest) (*model.User, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateSignup(ctx, req.Email, req.Username, req.Password); err != nil {
		return nil, err
	}

	//email重複チェック
	existing, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, ErrInternal
	}

	//ユーザー作成。初期roleはuser
	user := &model.User{
		UID:          uuid.NewString(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         model.RoleUser,
		IsVerified:   false,
	}

	if err := u.users.Create(ctx, user); err != nil {
		//事前チェックをすり抜けた同時登録だけを重複扱いにする
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrInternal
	}

	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req AuthLoginRequest) (*AuthLoginResponse, error) {
	//入力検証
	if err := u.validator.ValidateLogin(ctx, req.Email, req.Password); err != nil {
		return nil, err
	}

	//ユーザー取得。不在とパスワード違いは同じエラーにする（列挙対策）
	user, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	//パスワード照合
	if ok := u.hasher.Verify(req.Password, user.PasswordHash); !ok {
		return nil, ErrInvalidCredentials
	}

	//access token発行（email・uid・role入り）
	accessToken, err := u.codec.IssueAccess(token.UserClaims{
		Email:   user.Email,
		UserUID: user.UID,
		Role:    string(user.Role),
	})
	if err != nil {
		return nil, ErrInternal
	}

	//refresh token発行（roleは載せない）
	refreshToken, err := u.codec.IssueRefresh(token.UserClaims{
		Email:   user.Email,
		UserUID: user.UID,
	})
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthLoginResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: PublicUser{
			Email: user.Email,
			UID:   user.UID,
		},
	}, nil
}

// Refreshはrefresh tokenのclaimsから新しいaccess tokenを発行する。
// 期限はcodecの検証とは別に、ここでも現在時刻と突き合わせる
func (u *AuthUsecase) Refresh(ctx context.Context, claims *token.Claims) (*AuthRefreshResponse, error) {
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrTokenExpired
	}

	accessToken, err := u.codec.IssueAccess(claims.User)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthRefreshResponse{AccessToken: accessToken}, nil
}

// Logoutは提示されたaccess tokenのjtiを失効リストへ入れる。
// 対になるrefresh tokenはここでは触らない（独立したライフサイクル）
func (u *AuthUsecase) Logout(ctx context.Context, claims *token.Claims) (*SuccessResponse, error) {
	if err := u.revoker.Revoke(ctx, claims.ID); err != nil {
		return nil, ErrInternal
	}

	return &SuccessResponse{Message: "Logged out successfully"}, nil
}

// Meはclaimsのemailからプロフィールを返す（books/reviews付き）
func (u *AuthUsecase) Me(ctx context.Context, email string) (*model.User, error) {
	user, err := u.users.FindByEmailWithRelations(ctx, email)
	if err != nil {
		return nil, err
	}

	return user, nil
}
