// Package budget contains budget-related use cases, including the
// materialization of periodic budgets from recurring configs.
package budget

import (
	"time"

	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// Period computes the [start, end] date window for a budget materialized
// from a repetition type, anchored at now:
//
//	daily:   [today, today]
//	weekly:  [most recent Monday on or before today, +7 days]
//	monthly: [first day of current month, last day of current month]
//	yearly:  [Jan 1 of current year, Dec 31 of current year]
//
// Both bounds are dates at midnight UTC.
func Period(repetition entity.RepetitionType, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch repetition {
	case entity.RepetitionTypeDaily:
		return today, today, nil
	case entity.RepetitionTypeWeekly:
		daysSinceMonday := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -daysSinceMonday)
		return start, start.AddDate(0, 0, 7), nil
	case entity.RepetitionTypeMonthly:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	case entity.RepetitionTypeYearly:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil
	}

	return time.Time{}, time.Time{}, domainerror.ErrInvalidRepetitionType
}
