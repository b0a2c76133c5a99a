package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8000）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）

	JWTSecret    string // JWT署名シークレット
	JWTAlgorithm string // JWT署名アルゴリズム（HS256/HS384/HS512）

	AccessTokenTTL  time.Duration // アクセストークンの有効期限
	RefreshTokenTTL time.Duration // リフレッシュトークンの有効期限
	BlocklistTTL    time.Duration // 失効リスト（JTI）の保持期間

	RedisHost string // Redisホスト（失効リスト用）
	RedisPort int    // Redisポート
	RedisDB   int    // Redis DB番号
}

// 許可する署名アルゴリズム
var allowedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8000"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),

		RedisHost: getenv("REDIS_HOST", "localhost"),
	}

	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	redisPort, err := atoiDefault("REDIS_PORT", 6379)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisPort = redisPort

	redisDB, err := atoiDefault("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = redisDB

	//アクセストークンは3600秒、リフレッシュは2日がデフォルト
	accessSec, err := atoiDefault("ACCESS_TOKEN_EXPIRY", 3600)
	if err != nil {
		return Config{}, err
	}
	cfg.AccessTokenTTL = time.Duration(accessSec) * time.Second

	refreshHours, err := atoiDefault("REFRESH_TOKEN_EXPIRY_HOURS", 48)
	if err != nil {
		return Config{}, err
	}
	cfg.RefreshTokenTTL = time.Duration(refreshHours) * time.Hour

	//失効リストの保持期間。未指定なら最長のトークン寿命（refresh）に合わせる
	blockSec, err := atoiDefault("JTI_EXPIRY", int(cfg.RefreshTokenTTL.Seconds()))
	if err != nil {
		return Config{}, err
	}
	cfg.BlocklistTTL = time.Duration(blockSec) * time.Second

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if _, ok := allowedAlgorithms[cfg.JWTAlgorithm]; !ok {
		return Config{}, fmt.Errorf("JWT_ALGORITHM %q is not allowed", cfg.JWTAlgorithm)
	}
	if cfg.BlocklistTTL < cfg.RefreshTokenTTL {
		//失効エントリがトークンより先に消えると失効が効かなくなる
		return Config{}, fmt.Errorf("JTI_EXPIRY must be >= refresh token lifetime")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
