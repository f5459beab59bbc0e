package finance

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const (
	periodKeyLayout = "2006-01"
	periodLabel     = "Jan 2006"
)

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodKeyLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("period %q must look like YYYY-MM", s)
	}
	return PeriodOf(t), nil
}

func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Contains compares calendar year and month only, in t's own location.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

func (p Period) Start() time.Time {
	return now.With(time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)).BeginningOfMonth()
}

func (p Period) End() time.Time {
	return now.With(time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)).EndOfMonth()
}

func (p Period) MonthString() string {
	return MonthString(p.Month)
}

func (p Period) Key() string {
	return p.Start().Format(periodKeyLayout)
}

func (p Period) Label() string {
	return p.Start().Format(periodLabel)
}

func (p Period) String() string {
	return p.Key()
}
