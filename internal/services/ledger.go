package services

import (
	"time"

	"arthika/internal/models"
)

// budgetKey identifies the budget rows an expense contributes to.
type budgetKey struct {
	Category string
	Month    int
	Year     int
}

// budgetDelta is one signed adjustment to a budget row's currentSpent.
// Each delta applies to the named category row and, implicitly, to the
// period's synthetic total row as well.
type budgetDelta struct {
	Key   budgetKey
	Delta float64
}

func keyFor(category string, date time.Time) budgetKey {
	return budgetKey{Category: category, Month: int(date.Month()), Year: date.Year()}
}

// createDeltas returns the ledger adjustments for a newly created expense.
func createDeltas(e *models.Expense) []budgetDelta {
	return []budgetDelta{{Key: keyFor(e.Category, e.ExpenseDate), Delta: e.Amount}}
}

// deleteDeltas returns the ledger adjustments for removing an expense,
// derived from the expense's own stored category and date.
func deleteDeltas(e *models.Expense) []budgetDelta {
	return []budgetDelta{{Key: keyFor(e.Category, e.ExpenseDate), Delta: -e.Amount}}
}

// updateDeltas returns the ledger adjustments for changing an expense from
// old to new. When the (category, month, year) key is unchanged this is a
// single signed difference; when the key moves, the old amount is removed
// from the old key and the new amount added to the new one.
func updateDeltas(old, updated *models.Expense) []budgetDelta {
	oldKey := keyFor(old.Category, old.ExpenseDate)
	newKey := keyFor(updated.Category, updated.ExpenseDate)

	if oldKey == newKey {
		diff := updated.Amount - old.Amount
		if diff == 0 {
			return nil
		}
		return []budgetDelta{{Key: oldKey, Delta: diff}}
	}

	return []budgetDelta{
		{Key: oldKey, Delta: -old.Amount},
		{Key: newKey, Delta: updated.Amount},
	}
}
