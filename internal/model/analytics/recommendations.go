package analytics

import (
	"fmt"
)

type RecommendationKind string

const (
	KindSpendingIncrease RecommendationKind = "spending_increase"
	KindLowSavings       RecommendationKind = "low_savings"
	KindBudgetAlerts     RecommendationKind = "budget_alerts"
	KindProjection       RecommendationKind = "projection"
	KindGreatSavings     RecommendationKind = "great_savings"
	KindAutoTransfer     RecommendationKind = "auto_transfer"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

type Recommendation struct {
	Kind     RecommendationKind `json:"kind"`
	Severity Severity           `json:"severity"`
	Text     string             `json:"text"`
}

func Recommendations(ins Insights) []Recommendation {
	res := make([]Recommendation, 0)
	if ins.ExpenseChange > ExpenseIncreaseThreshold {
		res = append(res, Recommendation{
			Kind:     KindSpendingIncrease,
			Severity: SeverityWarning,
			Text: fmt.Sprintf("Your spending increased by %.1f%% this month. "+
				"Consider reviewing your largest expense categories.", ins.ExpenseChange),
		})
	}
	if ins.SavingsRate < SavingsFairThreshold {
		res = append(res, Recommendation{
			Kind:     KindLowSavings,
			Severity: SeverityWarning,
			Text: fmt.Sprintf("Your savings rate is %.1f%%. Aim for at least %.0f%% to build financial security.",
				ins.SavingsRate, SavingsGoodThreshold),
		})
	}
	if n := len(ins.BudgetAlerts); n > 0 {
		res = append(res, Recommendation{
			Kind:     KindBudgetAlerts,
			Severity: SeverityWarning,
			Text: fmt.Sprintf("%d categories are approaching or over budget. "+
				"Consider adjusting your spending or budget limits.", n),
		})
	}
	res = append(res, Recommendation{
		Kind:     KindProjection,
		Severity: SeverityInfo,
		Text: fmt.Sprintf("Based on your daily average of %s, you're projected to spend %s this month.",
			FormatMoney(ins.DailyAverage), FormatMoney(ins.ProjectedMonthly)),
	})
	if ins.SavingsRate >= SavingsGoodThreshold {
		res = append(res, Recommendation{
			Kind:     KindGreatSavings,
			Severity: SeveritySuccess,
			Text: fmt.Sprintf("Great job! Your %.1f%% savings rate is excellent. Keep up the good work!",
				ins.SavingsRate),
		})
	}
	res = append(res, Recommendation{
		Kind:     KindAutoTransfer,
		Severity: SeverityInfo,
		Text:     "Consider setting up automatic transfers to savings to maintain consistent saving habits.",
	})
	return res
}

func FormatMoney(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
