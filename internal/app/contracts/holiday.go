package contracts

import (
	"context"
	"larib-portal/internal/pkg/workdays"
)

// HolidaySource supplies the current French public-holiday snapshot. It never
// fails: on upstream trouble it falls back to stale data, then to an empty
// map. Callers take one snapshot per unit of work and pass it into every
// workdays call so results stay internally consistent.
type HolidaySource interface {
	GetHolidays(ctx context.Context) workdays.HolidayMap
}
