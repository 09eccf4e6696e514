package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/persistence"
	"github.com/leviis10/old-money/internal/integration/persistence/model"
)

// ledgerEnv runs the engine against real repositories on an in-memory
// sqlite database so transactional behavior is exercised for real.
type ledgerEnv struct {
	repos  *adapter.Repositories
	uow    adapter.UnitOfWork
	userID uuid.UUID
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WalletModel{},
		&model.CategoryModel{},
		&model.BudgetConfigModel{},
		&model.BudgetModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	userID := uuid.New()
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:        userID,
		Username:  "tester",
		Email:     "tester@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return &ledgerEnv{
		repos:  persistence.NewRepositories(db),
		uow:    persistence.NewUnitOfWork(db),
		userID: userID,
	}
}

func (e *ledgerEnv) createWallet(t *testing.T) *entity.Wallet {
	t.Helper()

	wallet := entity.NewWallet(e.userID, "wallet-"+uuid.NewString()[:8], nil)
	if err := e.repos.Wallets.Create(context.Background(), wallet); err != nil {
		t.Fatalf("failed to create wallet: %v", err)
	}
	return wallet
}

func (e *ledgerEnv) createCategory(t *testing.T) *entity.Category {
	t.Helper()

	category := entity.NewCategory(e.userID, "category-"+uuid.NewString()[:8])
	if err := e.repos.Categories.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func (e *ledgerEnv) createBudget(t *testing.T, limit string) *entity.Budget {
	t.Helper()

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	budget := entity.NewBudget(e.userID, nil, "budget-"+uuid.NewString()[:8], start, end, decimal.RequireFromString(limit), nil)
	if err := e.repos.Budgets.Create(context.Background(), budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
	return budget
}

func (e *ledgerEnv) walletBalance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()

	wallet, err := e.repos.Wallets.FindByIDAndUser(context.Background(), id, e.userID)
	if err != nil {
		t.Fatalf("failed to reload wallet: %v", err)
	}
	return wallet.Balance
}

func (e *ledgerEnv) budgetAccrual(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()

	budget, err := e.repos.Budgets.FindByIDAndUser(context.Background(), id, e.userID)
	if err != nil {
		t.Fatalf("failed to reload budget: %v", err)
	}
	return budget.CurrentAmount
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("income increases the wallet balance", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		uc := NewCreateTransactionUseCase(env.uow)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "150.25",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "150.25", output.Transaction.Amount)
		assertDecimal(t, "150.25", env.walletBalance(t, wallet.ID))
	})

	t.Run("outcome decreases the wallet balance and may go negative", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "40",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "-40", env.walletBalance(t, wallet.ID))
	})

	t.Run("outcome with a budget accrues against it", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "100")
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budget.ID,
			Amount:        "30",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "-30", env.walletBalance(t, wallet.ID))
		assertDecimal(t, "30", env.budgetAccrual(t, budget.ID))
	})

	t.Run("income with a budget does not accrue", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "100")
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budget.ID,
			Amount:        "30",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "30", env.walletBalance(t, wallet.ID))
		assertDecimal(t, "0", env.budgetAccrual(t, budget.ID))
	})

	t.Run("accrual may exceed the budget limit", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "50")
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budget.ID,
			Amount:        "80",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "80", env.budgetAccrual(t, budget.ID))
	})

	t.Run("unparsable amount is rejected", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "not-a-number",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Fatalf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("unknown flow direction is rejected", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirection("sideways"),
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrInvalidFlowDirection) {
			t.Fatalf("expected ErrInvalidFlowDirection, got %v", err)
		}
	})

	t.Run("missing wallet leaves nothing behind", func(t *testing.T) {
		env := newLedgerEnv(t)
		category := env.createCategory(t)
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      uuid.New(),
			Amount:        "10",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound, got %v", err)
		}

		transactions, err := env.repos.Transactions.FindAllByUser(ctx, env.userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}
	})

	t.Run("deleted budget fails the whole operation", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "100")
		if err := env.repos.Budgets.Delete(ctx, budget.ID); err != nil {
			t.Fatalf("failed to delete budget: %v", err)
		}
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budget.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}

		assertDecimal(t, "0", env.walletBalance(t, wallet.ID))
	})

	t.Run("another user's category is invisible", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		foreign := entity.NewCategory(uuid.New(), "foreign")
		if err := env.repos.Categories.Create(ctx, foreign); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		uc := NewCreateTransactionUseCase(env.uow)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    foreign.ID,
			WalletID:      wallet.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}

		assertDecimal(t, "0", env.walletBalance(t, wallet.ID))
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, env *ledgerEnv, wallet *entity.Wallet, category *entity.Category, budgetID *uuid.UUID, amount string, direction entity.FlowDirection) uuid.UUID {
		t.Helper()

		output, err := NewCreateTransactionUseCase(env.uow).Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      budgetID,
			Amount:        amount,
			FlowDirection: direction,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
		return output.Transaction.ID
	}

	t.Run("amount change on the same wallet recomputes from the reverted base", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		id := seed(t, env, wallet, category, nil, "100", entity.FlowDirectionIncome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "60",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "60", env.walletBalance(t, wallet.ID))
	})

	t.Run("direction flip applies the inverse effect", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		id := seed(t, env, wallet, category, nil, "25", entity.FlowDirectionIncome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "25",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "-25", env.walletBalance(t, wallet.ID))
	})

	t.Run("moving wallets reverts the old one and applies to the new one", func(t *testing.T) {
		env := newLedgerEnv(t)
		walletA := env.createWallet(t)
		walletB := env.createWallet(t)
		category := env.createCategory(t)
		id := seed(t, env, walletA, category, nil, "70", entity.FlowDirectionOutcome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      walletB.ID,
			Amount:        "70",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "0", env.walletBalance(t, walletA.ID))
		assertDecimal(t, "-70", env.walletBalance(t, walletB.ID))
	})

	t.Run("moving budgets reverts the old accrual and applies the new", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budgetA := env.createBudget(t, "100")
		budgetB := env.createBudget(t, "200")
		id := seed(t, env, wallet, category, &budgetA.ID, "45", entity.FlowDirectionOutcome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budgetB.ID,
			Amount:        "45",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "0", env.budgetAccrual(t, budgetA.ID))
		assertDecimal(t, "45", env.budgetAccrual(t, budgetB.ID))
	})

	t.Run("detaching the budget clears its accrual", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "100")
		id := seed(t, env, wallet, category, &budget.ID, "45", entity.FlowDirectionOutcome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "45",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "0", env.budgetAccrual(t, budget.ID))
		assertDecimal(t, "-45", env.walletBalance(t, wallet.ID))
	})

	t.Run("missing target wallet rolls the whole update back", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		id := seed(t, env, wallet, category, nil, "100", entity.FlowDirectionIncome)

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      uuid.New(),
			Amount:        "60",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound, got %v", err)
		}

		// The revert that ran inside the failed unit of work must not stick.
		assertDecimal(t, "100", env.walletBalance(t, wallet.ID))

		reloaded, err := env.repos.Transactions.FindByIDAndUser(ctx, id, env.userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "100", reloaded.Amount)
	})

	t.Run("updating a soft-deleted transaction reports not found", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		id := seed(t, env, wallet, category, nil, "10", entity.FlowDirectionIncome)

		if _, err := NewDeleteTransactionUseCase(env.uow).Execute(ctx, DeleteTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
		}); err != nil {
			t.Fatalf("failed to delete transaction: %v", err)
		}

		_, err := NewUpdateTransactionUseCase(env.uow).Execute(ctx, UpdateTransactionInput{
			TransactionID: id,
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "20",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("delete reverts wallet and budget effects", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)
		budget := env.createBudget(t, "100")

		output, err := NewCreateTransactionUseCase(env.uow).Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			BudgetID:      &budget.ID,
			Amount:        "35",
			FlowDirection: entity.FlowDirectionOutcome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		result, err := NewDeleteTransactionUseCase(env.uow).Execute(ctx, DeleteTransactionInput{
			TransactionID: output.Transaction.ID,
			UserID:        env.userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Error("expected success")
		}

		assertDecimal(t, "0", env.walletBalance(t, wallet.ID))
		assertDecimal(t, "0", env.budgetAccrual(t, budget.ID))
	})

	t.Run("deleted transaction disappears from lookups", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)

		output, err := NewCreateTransactionUseCase(env.uow).Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if _, err := NewDeleteTransactionUseCase(env.uow).Execute(ctx, DeleteTransactionInput{
			TransactionID: output.Transaction.ID,
			UserID:        env.userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := env.repos.Transactions.FindByIDAndUser(ctx, output.Transaction.ID, env.userID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}

		transactions, err := env.repos.Transactions.FindAllByUser(ctx, env.userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected empty list, got %d", len(transactions))
		}
	})

	t.Run("deleting twice reports not found and reverts once", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)

		output, err := NewCreateTransactionUseCase(env.uow).Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		deleteUC := NewDeleteTransactionUseCase(env.uow)
		if _, err := deleteUC.Execute(ctx, DeleteTransactionInput{
			TransactionID: output.Transaction.ID,
			UserID:        env.userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := deleteUC.Execute(ctx, DeleteTransactionInput{
			TransactionID: output.Transaction.ID,
			UserID:        env.userID,
		}); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}

		assertDecimal(t, "0", env.walletBalance(t, wallet.ID))
	})

	t.Run("another user's transaction is invisible", func(t *testing.T) {
		env := newLedgerEnv(t)
		wallet := env.createWallet(t)
		category := env.createCategory(t)

		output, err := NewCreateTransactionUseCase(env.uow).Execute(ctx, CreateTransactionInput{
			UserID:        env.userID,
			CategoryID:    category.ID,
			WalletID:      wallet.ID,
			Amount:        "10",
			FlowDirection: entity.FlowDirectionIncome,
			IssuedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if _, err := NewDeleteTransactionUseCase(env.uow).Execute(ctx, DeleteTransactionInput{
			TransactionID: output.Transaction.ID,
			UserID:        uuid.New(),
		}); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}

		assertDecimal(t, "10", env.walletBalance(t, wallet.ID))
	})
}
