// Package main is the entry point for the old-money API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/leviis10/old-money/config"
	"github.com/leviis10/old-money/internal/application/usecase/budget"
	"github.com/leviis10/old-money/internal/application/usecase/budgetconfig"
	"github.com/leviis10/old-money/internal/application/usecase/category"
	"github.com/leviis10/old-money/internal/application/usecase/transaction"
	"github.com/leviis10/old-money/internal/application/usecase/wallet"
	"github.com/leviis10/old-money/internal/infra/db"
	"github.com/leviis10/old-money/internal/infra/server/router"
	"github.com/leviis10/old-money/internal/integration/adapters"
	"github.com/leviis10/old-money/internal/integration/entrypoint/controller"
	"github.com/leviis10/old-money/internal/integration/entrypoint/middleware"
	"github.com/leviis10/old-money/internal/integration/persistence"
	"github.com/leviis10/old-money/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting old-money API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.WalletModel{},
		&model.CategoryModel{},
		&model.BudgetConfigModel{},
		&model.BudgetModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize redis connection for the token revocation list
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create repositories and the unit of work
	repos := persistence.NewRepositories(database.DB())
	uow := persistence.NewUnitOfWork(database.DB())

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, redisClient)

	// Create wallet use cases
	listWalletsUseCase := wallet.NewListWalletsUseCase(repos.Wallets)
	getWalletUseCase := wallet.NewGetWalletUseCase(repos.Wallets)
	createWalletUseCase := wallet.NewCreateWalletUseCase(repos.Wallets)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(repos.Wallets)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(repos.Wallets)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(repos.Categories)
	createCategoryUseCase := category.NewCreateCategoryUseCase(repos.Categories)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(repos.Categories)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(repos.Categories)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(repos.Budgets)
	getBudgetUseCase := budget.NewGetBudgetUseCase(repos.Budgets)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(uow)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(repos.Budgets)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(repos.Budgets)

	// Create budget config use cases
	listBudgetConfigsUseCase := budgetconfig.NewListBudgetConfigsUseCase(repos.BudgetConfigs)
	getBudgetConfigUseCase := budgetconfig.NewGetBudgetConfigUseCase(repos.BudgetConfigs)
	createBudgetConfigUseCase := budgetconfig.NewCreateBudgetConfigUseCase(repos.BudgetConfigs)
	updateBudgetConfigUseCase := budgetconfig.NewUpdateBudgetConfigUseCase(repos.BudgetConfigs)
	deleteBudgetConfigUseCase := budgetconfig.NewDeleteBudgetConfigUseCase(repos.BudgetConfigs)

	// Create ledger engine use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(repos.Transactions)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(repos.Transactions)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	walletController := controller.NewWalletController(
		listWalletsUseCase,
		getWalletUseCase,
		createWalletUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	budgetConfigController := controller.NewBudgetConfigController(
		listBudgetConfigsUseCase,
		getBudgetConfigUseCase,
		createBudgetConfigUseCase,
		updateBudgetConfigUseCase,
		deleteBudgetConfigUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		walletController,
		categoryController,
		budgetController,
		budgetConfigController,
		transactionController,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
