package records

import "max.ks1230/finances-tracker/internal/entity/finance"

// Categories returns the suggested categories; an empty type returns both lists.
func Categories(t finance.TransactionType) map[finance.TransactionType][]string {
	if t.Valid() {
		return map[finance.TransactionType][]string{t: finance.Categories(t)}
	}
	return map[finance.TransactionType][]string{
		finance.Income:  finance.IncomeCategories,
		finance.Expense: finance.ExpenseCategories,
	}
}
