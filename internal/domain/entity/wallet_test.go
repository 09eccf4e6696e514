package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestWallet_ApplyRevert(t *testing.T) {
	amount := decimal.RequireFromString("123.45")

	t.Run("income increases the balance", func(t *testing.T) {
		w := NewWallet(uuid.New(), "Checking", nil)
		w.Apply(amount, FlowDirectionIncome)

		if !w.Balance.Equal(amount) {
			t.Errorf("expected balance %s, got %s", amount, w.Balance)
		}
	})

	t.Run("outcome decreases the balance", func(t *testing.T) {
		w := NewWallet(uuid.New(), "Checking", nil)
		w.Apply(amount, FlowDirectionOutcome)

		if !w.Balance.Equal(amount.Neg()) {
			t.Errorf("expected balance %s, got %s", amount.Neg(), w.Balance)
		}
	})

	t.Run("revert cancels apply exactly", func(t *testing.T) {
		for _, direction := range []FlowDirection{FlowDirectionIncome, FlowDirectionOutcome} {
			w := NewWallet(uuid.New(), "Checking", nil)
			w.Balance = decimal.RequireFromString("17.03")
			before := w.Balance

			w.Apply(amount, direction)
			w.Revert(amount, direction)

			if !w.Balance.Equal(before) {
				t.Errorf("%s: expected balance %s after apply+revert, got %s", direction, before, w.Balance)
			}
		}
	})

	t.Run("balance may go negative", func(t *testing.T) {
		w := NewWallet(uuid.New(), "Checking", nil)
		w.Apply(amount, FlowDirectionOutcome)

		if !w.Balance.IsNegative() {
			t.Errorf("expected negative balance, got %s", w.Balance)
		}
	})

	t.Run("decimal arithmetic is exact", func(t *testing.T) {
		w := NewWallet(uuid.New(), "Checking", nil)
		cent := decimal.RequireFromString("0.01")
		for i := 0; i < 1000; i++ {
			w.Apply(cent, FlowDirectionIncome)
		}

		if want := decimal.RequireFromString("10"); !w.Balance.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, w.Balance)
		}
	})
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestBudget_ApplyRevert(t *testing.T) {
	amount := decimal.RequireFromString("40")
	limit := decimal.RequireFromString("1000")

	t.Run("apply accrues the amount", func(t *testing.T) {
		b := NewBudget(uuid.New(), nil, "Groceries", today(), today(), limit, nil)
		b.Apply(amount)

		if !b.CurrentAmount.Equal(amount) {
			t.Errorf("expected current amount %s, got %s", amount, b.CurrentAmount)
		}
	})

	t.Run("revert cancels apply exactly", func(t *testing.T) {
		b := NewBudget(uuid.New(), nil, "Groceries", today(), today(), limit, nil)
		b.Apply(amount)
		b.Revert(amount)

		if !b.CurrentAmount.IsZero() {
			t.Errorf("expected zero current amount after apply+revert, got %s", b.CurrentAmount)
		}
	})

	t.Run("accrual may exceed the limit", func(t *testing.T) {
		b := NewBudget(uuid.New(), nil, "Groceries", today(), today(), decimal.RequireFromString("10"), nil)
		b.Apply(decimal.RequireFromString("25"))

		if !b.CurrentAmount.GreaterThan(b.Limit) {
			t.Errorf("expected current amount above limit, got %s", b.CurrentAmount)
		}
	})
}
