package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bsm/redislock"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/distromate/backoffice-service/config"
	"github.com/distromate/backoffice-service/internal/auth"
	customerhandler "github.com/distromate/backoffice-service/internal/customer/handler"
	customerrepo "github.com/distromate/backoffice-service/internal/customer/repository"
	customerusecase "github.com/distromate/backoffice-service/internal/customer/usecase"
	inventoryhandler "github.com/distromate/backoffice-service/internal/inventory/handler"
	inventoryrepo "github.com/distromate/backoffice-service/internal/inventory/repository"
	inventoryusecase "github.com/distromate/backoffice-service/internal/inventory/usecase"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/notifier"
	orderhandler "github.com/distromate/backoffice-service/internal/order/handler"
	orderrepo "github.com/distromate/backoffice-service/internal/order/repository"
	orderusecase "github.com/distromate/backoffice-service/internal/order/usecase"
	paymenthandler "github.com/distromate/backoffice-service/internal/payment/handler"
	paymentusecase "github.com/distromate/backoffice-service/internal/payment/usecase"
	producthandler "github.com/distromate/backoffice-service/internal/product/handler"
	productrepo "github.com/distromate/backoffice-service/internal/product/repository"
	productusecase "github.com/distromate/backoffice-service/internal/product/usecase"
	"github.com/distromate/backoffice-service/internal/reconciler"
	targethandler "github.com/distromate/backoffice-service/internal/target/handler"
	targetrepo "github.com/distromate/backoffice-service/internal/target/repository"
	targetusecase "github.com/distromate/backoffice-service/internal/target/usecase"
	transactionhandler "github.com/distromate/backoffice-service/internal/transaction/handler"
	transactionrepo "github.com/distromate/backoffice-service/internal/transaction/repository"
	transactionusecase "github.com/distromate/backoffice-service/internal/transaction/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}
	cfg := config.LoadEnv()

	logger := newLogger(cfg.Logger)
	defer logger.Sync()

	db, err := sqlx.Connect("pgx", postgresDSN(cfg.Postgres))
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	locker := redislock.New(redisClient)

	receipts := notifier.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic, cfg.Scheduler.CountryPrefix, logger)
	defer receipts.Close()

	customerRepo := customerrepo.NewPGRepository(db)
	productRepo := productrepo.NewPGRepository(db)
	inventoryRepo := inventoryrepo.NewPGRepository(db)
	orderRepo := orderrepo.NewPGRepository(db)
	transactionRepo := transactionrepo.NewPGRepository(db)
	targetRepo := targetrepo.NewPGRepository(db)

	inventoryUC := inventoryusecase.NewInventoryUseCase(inventoryRepo, locker, logger)
	transactionUC := transactionusecase.NewTransactionUseCase(transactionRepo, logger)
	customerUC := customerusecase.NewCustomerUseCase(customerRepo, transactionRepo, logger)
	productUC := productusecase.NewProductUseCase(productRepo, transactionRepo, redisClient, logger)
	targetUC := targetusecase.NewTargetUseCase(targetRepo, orderRepo, logger)
	orderUC := orderusecase.NewOrderUseCase(orderRepo, customerRepo, productRepo, inventoryUC, targetUC, receipts, logger)
	paymentUC := paymentusecase.NewPaymentUseCase(orderRepo, customerRepo, transactionRepo, logger)

	if cfg.Scheduler.Enabled {
		sweeper := reconciler.New(orderRepo, transactionRepo, locker, cfg.Scheduler.CronSpec, logger)
		if err := sweeper.Start(); err != nil {
			logger.Fatal("failed to start reconciliation scheduler", zap.Error(err))
		}
		defer sweeper.Stop()
	}

	registerValidators()

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Actor-Id"},
	}))
	router.Use(auth.Middleware())

	customerHandler := customerhandler.NewCustomerHandler(customerUC, logger)
	productHandler := producthandler.NewProductHandler(productUC, logger)
	inventoryHandler := inventoryhandler.NewInventoryHandler(inventoryUC, logger)
	orderHandler := orderhandler.NewOrderHandler(orderUC, logger)
	paymentHandler := paymenthandler.NewPaymentHandler(paymentUC, logger)
	transactionHandler := transactionhandler.NewTransactionHandler(transactionUC, logger)
	targetHandler := targethandler.NewTargetHandler(targetUC, logger)

	router.POST("/customers", customerHandler.Create)
	router.GET("/customers", customerHandler.List)
	router.GET("/customers/:id", customerHandler.Get)
	router.PUT("/customers/:id", customerHandler.Update)
	router.DELETE("/customers/:id", customerHandler.Delete)
	router.POST("/customers/:id/return-debt", customerHandler.ReturnDebt)
	router.POST("/customers/:id/cart", orderHandler.FillCart)

	router.GET("/orders", orderHandler.List)
	router.GET("/orders/:id", orderHandler.Get)
	router.DELETE("/orders/:id", orderHandler.Delete)
	router.DELETE("/orders/:id/cart/:index", orderHandler.RemoveCartLine)
	router.POST("/orders/:id/finalize", orderHandler.Finalize)
	router.POST("/orders/:id/payment", paymentHandler.ApplyFirstPayment)
	router.POST("/orders/:id/repayment", paymentHandler.ApplyRepayment)

	router.POST("/products", productHandler.Create)
	router.GET("/products", productHandler.List)
	router.GET("/products/:id", productHandler.Get)
	router.PUT("/products/:id", productHandler.Update)
	router.POST("/products/:id/restock", productHandler.Restock)
	router.DELETE("/products/:id", productHandler.Delete)
	router.GET("/products/:id/movements", inventoryHandler.ListMovements)

	router.POST("/transactions", transactionHandler.Create)
	router.GET("/transactions", transactionHandler.List)
	router.GET("/transactions/today", transactionHandler.ListToday)
	router.GET("/transactions/range", transactionHandler.ListRange)
	router.DELETE("/transactions/:id", transactionHandler.Delete)

	router.GET("/targets", targetHandler.List)
	router.DELETE("/targets/:id", targetHandler.Delete)
	router.POST("/users/:id/targets", targetHandler.Create)
	router.GET("/users/:id/targets", targetHandler.ListByUser)
	router.POST("/users/:id/targets/recompute", targetHandler.Recompute)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Encoding == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zapCfg.Level = level
	}
	zapCfg.DisableCaller = cfg.DisableCaller
	zapCfg.DisableStacktrace = cfg.DisableStacktrace

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

func postgresDSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("targettype", func(fl validator.FieldLevel) bool {
			return model.TargetType(fl.Field().String()).Valid()
		})
	}
}
