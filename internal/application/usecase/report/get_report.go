package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/period"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// SupportedMonthCounts are the report window lengths the app offers.
var SupportedMonthCounts = []int{1, 3, 6}

// GetReportInput represents the input for building a spending report.
type GetReportInput struct {
	UserID uuid.UUID
	Months int
}

// GetReportOutput represents the output of building a spending report.
type GetReportOutput struct {
	Report    *Report
	FromCache bool
}

// GetReportUseCase builds a user's spending report over the last 1, 3 or 6
// months, serving from the cache when a fresh copy exists. The cache is
// best-effort; any cache failure falls through to a rebuild.
type GetReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
	clock           func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
) *GetReportUseCase {
	return &GetReportUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
		clock:           time.Now,
	}
}

// Execute builds the report for the requested window.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if !isSupportedMonthCount(input.Months) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedReportPeriod,
			"report period must be 1, 3 or 6 months",
			domainerror.ErrUnsupportedReportPeriod,
		)
	}

	// The key carries the current month so a cached report cannot outlive a
	// month rollover: January's 3-month window is not February's.
	now := uc.clock().UTC()
	cacheKey := fmt.Sprintf("%d-%02d:months=%d", now.Year(), int(now.Month()), input.Months)

	if payload, err := uc.reportCache.Get(ctx, input.UserID, cacheKey); err != nil {
		slog.Warn("Report cache read failed", "userID", input.UserID, "error", err)
	} else if payload != nil {
		var cached Report
		if err := json.Unmarshal(payload, &cached); err != nil {
			slog.Warn("Discarding unreadable cached report", "userID", input.UserID, "error", err)
		} else {
			return &GetReportOutput{Report: &cached, FromCache: true}, nil
		}
	}

	periods, err := period.LastNMonths(input.Months, now)
	if err != nil {
		return nil, err
	}

	transactionsByPeriod := make([][]*entity.Transaction, 0, len(periods))
	for _, p := range periods {
		start, end, err := p.Range()
		if err != nil {
			return nil, err
		}
		transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions for %d-%02d: %w", p.Year, p.Month+1, err)
		}
		transactionsByPeriod = append(transactionsByPeriod, transactions)
	}

	report, err := BuildReport(periods, transactionsByPeriod)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := uc.reportCache.Set(ctx, input.UserID, cacheKey, payload); err != nil {
			slog.Warn("Report cache write failed", "userID", input.UserID, "error", err)
		}
	}

	return &GetReportOutput{Report: report}, nil
}

func isSupportedMonthCount(months int) bool {
	for _, supported := range SupportedMonthCounts {
		if months == supported {
			return true
		}
	}
	return false
}
