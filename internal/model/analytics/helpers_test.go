package analytics

import (
	"time"

	"max.ks1230/finances-tracker/internal/entity/finance"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount float64, category string, date time.Time) finance.Transaction {
	return finance.Transaction{Amount: amount, Category: category, Type: finance.Expense, Date: date}
}

func income(amount float64, category string, date time.Time) finance.Transaction {
	return finance.Transaction{Amount: amount, Category: category, Type: finance.Income, Date: date}
}

func budget(category string, amount float64, p finance.Period) finance.Budget {
	return finance.Budget{Category: category, Amount: amount, Month: p.MonthString(), Year: p.Year}
}
