// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// Totals holds the income and expense sums over a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Balance returns income minus expense.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// CategorySpend is the expense total for one category label.
type CategorySpend struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DayBucket is the expense total for one day of the trailing week.
type DayBucket struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Summarize sums the transactions into income and expense totals. A record
// with a type outside the known set fails the whole aggregation; partial
// totals over bad data are worse than no totals.
func Summarize(transactions []*entity.Transaction) (Totals, error) {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(transaction.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(transaction.Amount)
		default:
			return Totals{}, domainerror.NewTransactionError(
				domainerror.ErrCodeUnknownTransactionType,
				"transaction "+transaction.ID.String()+" has unknown type '"+string(transaction.Type)+"'",
				domainerror.ErrUnknownTransactionType,
			)
		}
	}
	return totals, nil
}

// SpendByCategory groups expense transactions by their exact category label.
// Labels are matched case-sensitively and never trimmed, so "Food" and "food"
// are distinct categories. Income transactions are ignored. The result is
// ordered by first appearance in the input.
func SpendByCategory(transactions []*entity.Transaction) []CategorySpend {
	index := make(map[string]int)
	spend := make([]CategorySpend, 0)

	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		if i, ok := index[transaction.Category]; ok {
			spend[i].Amount = spend[i].Amount.Add(transaction.Amount)
			continue
		}
		index[transaction.Category] = len(spend)
		spend = append(spend, CategorySpend{
			Category: transaction.Category,
			Amount:   transaction.Amount,
		})
	}
	return spend
}

// WeeklyExpenseBuckets distributes expense transactions from the trailing
// seven days into one bucket per whole elapsed day. Elapsed days are counted
// on the raw timestamps: anything less than 24 hours before the reference
// instant lands in the last bucket, 24 to 48 hours in the one before it, and
// so on. Transactions outside the window, including future-dated ones, are
// skipped. Each bucket is labelled with its weekday abbreviation.
func WeeklyExpenseBuckets(transactions []*entity.Transaction, reference time.Time) []DayBucket {
	referenceDay := truncateToDay(reference)

	buckets := make([]DayBucket, 7)
	for i := range buckets {
		day := referenceDay.AddDate(0, 0, i-6)
		buckets[i] = DayBucket{Label: day.Format("Mon"), Total: decimal.Zero}
	}

	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		age := reference.Sub(transaction.CreatedAt)
		if age < 0 {
			continue
		}
		elapsed := int(age.Hours() / 24)
		if elapsed > 6 {
			continue
		}
		bucket := 6 - elapsed
		buckets[bucket].Total = buckets[bucket].Total.Add(transaction.Amount)
	}
	return buckets
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
