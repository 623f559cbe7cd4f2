// Package period converts calendar references into concrete query windows.
//
// Two month conventions coexist in the surrounding app: budget rows store
// months 1-based (1 = January) while date-range calculations are 0-based
// (0 = January). Every function here takes the convention explicitly; it is
// never inferred from context.
package period

import (
	"time"

	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// Convention declares how a month number is to be read.
type Convention int

const (
	// MonthZeroBased numbers months 0-11 (0 = January).
	MonthZeroBased Convention = iota
	// MonthOneBased numbers months 1-12 (1 = January).
	MonthOneBased
)

// Period identifies a calendar month. Month is always 0-based here; values
// arriving in the 1-based convention are normalized at the boundary.
type Period struct {
	Year  int
	Month int // 0-11
}

// MonthRange returns the query window for a calendar month: start is the
// first instant of the month and end is the first instant of the following
// month. The upper bound is exclusive so a transaction dated exactly at end
// belongs to the next month and is never double-counted. Times are UTC.
func MonthRange(year, month int, convention Convention) (start, end time.Time, err error) {
	zeroBased, err := normalize(month, convention)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = time.Date(year, time.Month(zeroBased+1), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end, nil
}

// LastNMonths returns the n consecutive calendar months ending at now's
// month, oldest first. Year boundaries roll over, so n=3 evaluated in
// February yields December (previous year), January, February.
func LastNMonths(n int, now time.Time) ([]Period, error) {
	if n < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthCount,
			"month count must be at least 1",
			domainerror.ErrInvalidMonthCount,
		)
	}

	periods := make([]Period, 0, n)
	for i := n - 1; i >= 0; i-- {
		// time.Date normalizes out-of-range months, which handles the
		// year rollover.
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		periods = append(periods, Period{Year: d.Year(), Month: int(d.Month()) - 1})
	}
	return periods, nil
}

// Range returns the query window for the period.
func (p Period) Range() (start, end time.Time, err error) {
	return MonthRange(p.Year, p.Month, MonthZeroBased)
}

// normalize converts a month number to the 0-based convention, validating it
// against the bounds of its declared convention.
func normalize(month int, convention Convention) (int, error) {
	switch convention {
	case MonthZeroBased:
		if month < 0 || month > 11 {
			return 0, domainerror.NewReportError(
				domainerror.ErrCodeInvalidMonth,
				"zero-based month must be between 0 and 11",
				domainerror.ErrInvalidMonth,
			)
		}
		return month, nil
	case MonthOneBased:
		if month < 1 || month > 12 {
			return 0, domainerror.NewReportError(
				domainerror.ErrCodeInvalidMonth,
				"one-based month must be between 1 and 12",
				domainerror.ErrInvalidMonth,
			)
		}
		return month - 1, nil
	default:
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthConvention,
			"unknown month convention",
			domainerror.ErrInvalidMonthConvention,
		)
	}
}
