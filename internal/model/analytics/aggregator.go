package analytics

import (
	"sort"

	"max.ks1230/finances-tracker/internal/entity/finance"
)

type CategoryTotal struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// AggregateByCategory sums amounts per category. Callers filter by type and period first.
// Category names are used as is: "Food" and "food" are different buckets.
func AggregateByCategory(txs []finance.Transaction) map[string]CategoryTotal {
	m := make(map[string]CategoryTotal)
	for _, tx := range txs {
		ct := m[tx.Category]
		ct.Total += tx.Amount
		ct.Count++
		m[tx.Category] = ct
	}
	return m
}

// SortByTotal orders the aggregate by total descending, then by name.
func SortByTotal(totals map[string]CategoryTotal) []CategoryAmount {
	records := make([]CategoryAmount, 0, len(totals))
	for cat, ct := range totals {
		records = append(records, CategoryAmount{Category: cat, Amount: ct.Total, Count: ct.Count})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Amount != records[j].Amount {
			return records[i].Amount > records[j].Amount
		}
		return records[i].Category < records[j].Category
	})
	return records
}

func TopCategories(totals map[string]CategoryTotal, n int) []CategoryAmount {
	records := SortByTotal(totals)
	if n >= 0 && len(records) > n {
		records = records[:n]
	}
	return records
}
