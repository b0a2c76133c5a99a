package main

import (
	"fmt"
	"log"

	"app/internal/blocklist"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/password"
	"app/internal/server"
	"app/internal/token"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.Review{},
		&model.Tag{},
		&model.BookTag{},
	); err != nil {
		log.Fatal(err)
	}

	//Redis接続（失効リスト）
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		DB:   cfg.RedisDB,
	})
	revocations := blocklist.NewStore(rdb, cfg.BlocklistTTL)

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	tagRepo := infraRepo.NewTagGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//トークンとパスワードの部品
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatal(err)
	}
	hasher := password.NewHasher(0)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, hasher, codec, revocations, validator.NewAuthValidator())
	bookUC := usecase.NewBookUsecase(bookRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, bookRepo, userRepo)
	tagUC := usecase.NewTagUsecase(tagRepo, bookRepo, txManager)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, codec, revocations, userRepo)
	bookH := handler.NewBookHandler(bookUC, codec, revocations, userRepo)
	reviewH := handler.NewReviewHandler(reviewUC, codec, revocations, userRepo)
	tagH := handler.NewTagHandler(tagUC, codec, revocations, userRepo)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, authH, bookH, reviewH, tagH); err != nil {
		log.Fatal(err)
	}
}
