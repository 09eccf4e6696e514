package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/persistence"
	"github.com/leviis10/old-money/internal/integration/persistence/model"
)

func newBudgetEnv(t *testing.T) (*adapter.Repositories, adapter.UnitOfWork, uuid.UUID) {
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.BudgetConfigModel{},
		&model.BudgetModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	userID := uuid.New()
	now := time.Now().UTC()
	if err := db.Create(&model.UserModel{
		ID:        userID,
		Username:  "tester",
		Email:     "tester@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return persistence.NewRepositories(db), persistence.NewUnitOfWork(db), userID
}

func TestCreateBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit date range creates a standalone budget", func(t *testing.T) {
		repos, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:    userID,
			Name:      "groceries",
			Limit:     "400",
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Budget.BudgetConfigID != nil {
			t.Error("expected no budget config reference")
		}
		if !output.Budget.CurrentAmount.IsZero() {
			t.Errorf("expected zero accrual, got %s", output.Budget.CurrentAmount)
		}

		configs, err := repos.BudgetConfigs.FindAllByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(configs) != 0 {
			t.Errorf("expected no configs, got %d", len(configs))
		}
	})

	t.Run("repetition type materializes a config and its first budget", func(t *testing.T) {
		repos, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)
		uc.now = func() time.Time {
			return time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC) // a Friday
		}

		repetition := entity.RepetitionTypeWeekly
		output, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:         userID,
			Name:           "eating out",
			Limit:          "120",
			RepetitionType: &repetition,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Budget.BudgetConfigID == nil {
			t.Fatal("expected a budget config reference")
		}

		wantStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC) // the Monday before
		if !output.Budget.StartDate.Equal(wantStart) {
			t.Errorf("expected start %s, got %s", wantStart, output.Budget.StartDate)
		}
		if !output.Budget.EndDate.Equal(wantStart.AddDate(0, 0, 7)) {
			t.Errorf("expected end %s, got %s", wantStart.AddDate(0, 0, 7), output.Budget.EndDate)
		}

		config, err := repos.BudgetConfigs.FindByIDAndUser(ctx, *output.Budget.BudgetConfigID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.LastCreate == nil {
			t.Fatal("expected last_create to be stamped")
		}
		if !config.LastCreate.Equal(wantStart) {
			t.Errorf("expected last_create %s, got %s", wantStart, *config.LastCreate)
		}
	})

	t.Run("repetition type wins over an explicit date range", func(t *testing.T) {
		_, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)
		uc.now = func() time.Time {
			return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		}

		repetition := entity.RepetitionTypeMonthly
		start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:         userID,
			Name:           "rent",
			Limit:          "900",
			RepetitionType: &repetition,
			StartDate:      &start,
			EndDate:        &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if !output.Budget.StartDate.Equal(wantStart) {
			t.Errorf("expected start %s, got %s", wantStart, output.Budget.StartDate)
		}
	})

	t.Run("neither dates nor repetition type is rejected", func(t *testing.T) {
		_, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID: userID,
			Name:   "vague",
			Limit:  "10",
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
			t.Fatalf("expected ErrInvalidBudgetPeriod, got %v", err)
		}
	})

	t.Run("unknown repetition type creates nothing", func(t *testing.T) {
		repos, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)

		repetition := entity.RepetitionType("fortnightly")
		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:         userID,
			Name:           "odd",
			Limit:          "10",
			RepetitionType: &repetition,
		})
		if !errors.Is(err, domainerror.ErrInvalidRepetitionType) {
			t.Fatalf("expected ErrInvalidRepetitionType, got %v", err)
		}

		budgets, err := repos.Budgets.FindAllByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(budgets))
		}
	})

	t.Run("unparsable limit is rejected", func(t *testing.T) {
		_, uow, userID := newBudgetEnv(t)
		uc := NewCreateBudgetUseCase(uow)

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:    userID,
			Name:      "broken",
			Limit:     "lots",
			StartDate: &start,
			EndDate:   &end,
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetLimit) {
			t.Fatalf("expected ErrInvalidBudgetLimit, got %v", err)
		}
	})
}
