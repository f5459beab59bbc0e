package analytics

import (
	"max.ks1230/finances-tracker/internal/entity/finance"
)

// FilterTransactions keeps the transactions dated within p.
func FilterTransactions(txs []finance.Transaction, p finance.Period) []finance.Transaction {
	res := make([]finance.Transaction, 0)
	for _, tx := range txs {
		if p.Contains(tx.Date) {
			res = append(res, tx)
		}
	}
	return res
}

func FilterByType(txs []finance.Transaction, t finance.TransactionType) []finance.Transaction {
	res := make([]finance.Transaction, 0)
	for _, tx := range txs {
		if tx.Type == t {
			res = append(res, tx)
		}
	}
	return res
}

// FilterBudgets keeps the budgets set for p. Budgets with a malformed month never match.
func FilterBudgets(budgets []finance.Budget, p finance.Period) []finance.Budget {
	res := make([]finance.Budget, 0)
	for _, b := range budgets {
		if bp, ok := b.Period(); ok && bp == p {
			res = append(res, b)
		}
	}
	return res
}

func sumAmounts(txs []finance.Transaction) float64 {
	total := 0.0
	for _, tx := range txs {
		total += tx.Amount
	}
	return total
}

func totalOf(txs []finance.Transaction, t finance.TransactionType) float64 {
	return sumAmounts(FilterByType(txs, t))
}
