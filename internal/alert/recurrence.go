package alert

import (
	"math"
	"time"

	"github.com/ankitm/fintrack/internal/model"
)

// dueSoonWindowDays is the number of days before a recurring item's next
// date within which a DueSoon event fires.
const dueSoonWindowDays = 2

// DueSoonEvent records a recurring item whose next date falls within the
// due-soon window.
type DueSoonEvent struct {
	Item      model.RecurringItem
	DaysUntil int
}

// DaysUntil computes the whole days remaining until a date, rounding up.
// A value of zero means due today; negative values mean overdue.
func DaysUntil(nextDate, now time.Time) int {
	return int(math.Ceil(nextDate.Sub(now).Hours() / 24))
}

// EvaluateRecurring emits a DueSoon event for every item due within the next
// two days, inclusive of today. Overdue items emit nothing: once the next
// date has passed the item silently stops alerting, and it is never
// materialized into a transaction.
func EvaluateRecurring(items []model.RecurringItem, now time.Time) []DueSoonEvent {
	var events []DueSoonEvent

	for _, item := range items {
		days := DaysUntil(item.NextDate, now)
		if days >= 0 && days <= dueSoonWindowDays {
			events = append(events, DueSoonEvent{Item: item, DaysUntil: days})
		}
	}

	return events
}
