package finance

import (
	"fmt"
	"strconv"
	"time"
)

type Budget struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Month     string    `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Period returns the budget's (year, month). ok is false when Month is
// not a number in 1..12.
func (b Budget) Period() (p Period, ok bool) {
	m, err := strconv.Atoi(b.Month)
	if err != nil || m < 1 || m > 12 {
		return Period{}, false
	}
	return Period{Year: b.Year, Month: time.Month(m)}, true
}

// MonthString formats a month the way budgets store it: "01".."12".
func MonthString(m time.Month) string {
	return fmt.Sprintf("%02d", int(m))
}
