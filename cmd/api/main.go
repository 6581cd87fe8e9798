package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	proofadp "bbl-backend/internal/adapter/assetproof"
	httpadp "bbl-backend/internal/adapter/http"
	"bbl-backend/internal/adapter/middleware"
	"bbl-backend/internal/adapter/repository/mysql"
	"bbl-backend/internal/config"
	"bbl-backend/internal/infrastructure/cache"
	"bbl-backend/internal/infrastructure/db"
	"bbl-backend/internal/usecase/lending"
	"bbl-backend/internal/usecase/oracle"

	"bbl-backend/internal/domain/loan"
	"bbl-backend/internal/domain/market"
	"bbl-backend/internal/domain/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loan.Loan{}, &user.Profile{}, &market.Data{}); err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	marketRepo := mysql.NewMarketRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := marketRepo.Seed(ctx, cfg.DefaultBTCPrice); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	verifier := proofadp.NewStaticVerifier(cfg.ProofAddress, cfg.ProofNetwork, cfg.ProofBalanceSats)
	lendingUC := lending.NewUsecase(loans, users, marketRepo, guow, verifier)
	oracleUC := oracle.NewUsecase(marketRepo, oracle.AllowList{cfg.OracleIdentity})

	h := httpadp.NewHandler()
	lh := httpadp.NewLendingHandler(lendingUC)
	oh := httpadp.NewOracleHandler(oracleUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/profiles", lh.CreateProfile, idemp)
	e.GET("/profiles/:identity", lh.GetUserProfile)

	e.POST("/loans", lh.RequestLoan, idemp)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/repay", lh.RepayLoan, idemp)
	e.GET("/users/:identity/loans", lh.GetUserLoans)

	e.GET("/market/price", oh.GetPrice)
	e.PUT("/market/price", oh.UpdatePrice, idemp)
	e.GET("/market/max-loan", lh.CalculateMaxLoan)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
