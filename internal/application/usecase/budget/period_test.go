package budget

import (
	"testing"
	"time"

	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name       string
		repetition entity.RepetitionType
		now        time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "daily is a single day window",
			repetition: entity.RepetitionTypeDaily,
			now:        time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC),
			wantStart:  date(2025, time.March, 14),
			wantEnd:    date(2025, time.March, 14),
		},
		{
			name:       "weekly anchors at the most recent Monday",
			repetition: entity.RepetitionTypeWeekly,
			now:        date(2025, time.March, 14), // a Friday
			wantStart:  date(2025, time.March, 10),
			wantEnd:    date(2025, time.March, 17),
		},
		{
			name:       "weekly on a Monday starts that same day",
			repetition: entity.RepetitionTypeWeekly,
			now:        date(2025, time.March, 10),
			wantStart:  date(2025, time.March, 10),
			wantEnd:    date(2025, time.March, 17),
		},
		{
			name:       "weekly on a Sunday reaches back six days",
			repetition: entity.RepetitionTypeWeekly,
			now:        date(2025, time.March, 16),
			wantStart:  date(2025, time.March, 10),
			wantEnd:    date(2025, time.March, 17),
		},
		{
			name:       "monthly spans the 15th's month in a 30-day month",
			repetition: entity.RepetitionTypeMonthly,
			now:        date(2025, time.April, 15),
			wantStart:  date(2025, time.April, 1),
			wantEnd:    date(2025, time.April, 30),
		},
		{
			name:       "monthly handles February in a leap year",
			repetition: entity.RepetitionTypeMonthly,
			now:        date(2024, time.February, 10),
			wantStart:  date(2024, time.February, 1),
			wantEnd:    date(2024, time.February, 29),
		},
		{
			name:       "yearly spans the whole calendar year",
			repetition: entity.RepetitionTypeYearly,
			now:        date(2025, time.August, 31),
			wantStart:  date(2025, time.January, 1),
			wantEnd:    date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := Period(tt.repetition, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start: expected %s, got %s", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, end)
			}
		})
	}

	t.Run("unknown repetition type is rejected", func(t *testing.T) {
		_, _, err := Period(entity.RepetitionType("fortnightly"), time.Now())
		if err != domainerror.ErrInvalidRepetitionType {
			t.Errorf("expected ErrInvalidRepetitionType, got %v", err)
		}
	})
}
