package messages

import (
	"fmt"
	"strings"

	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/analytics"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(text, "/") {
		return stripBotName(split[0]), split[1]
	}
	if strings.HasPrefix(text, "/") {
		return stripBotName(text), ""
	}
	return "", text
}

// stripBotName turns "/report@finances_bot" used in group chats into "/report".
func stripBotName(cmd string) string {
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		return cmd[:i]
	}
	return cmd
}

func parseCategory(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}

func looksLikeDate(raw string) bool {
	return strings.Count(raw, ".") == 2
}

func formatSummary(p finance.Period, s analytics.Summary) string {
	money := analytics.FormatMoney
	res := []string{
		fmt.Sprintf("Summary for %s", p.Label()),
		"",
		fmt.Sprintf("Income: %s", money(s.TotalIncome)),
		fmt.Sprintf("Expenses: %s", money(s.TotalExpenses)),
		fmt.Sprintf("Net: %s", money(s.NetAmount)),
	}
	if s.TotalBudget > 0 {
		res = append(res, fmt.Sprintf("Budget used: %.1f%% of %s", s.BudgetUsed, money(s.TotalBudget)))
	}
	if s.TopCategory != nil {
		res = append(res, fmt.Sprintf("Top category: %s (%s)", s.TopCategory.Category, money(s.TopCategory.Amount)))
	}
	res = append(res, fmt.Sprintf("Transactions: %d", s.TransactionCount))
	return strings.Join(res, "\n")
}

func formatInsights(ins analytics.Insights) string {
	money := analytics.FormatMoney
	res := []string{
		fmt.Sprintf("Spending vs last month: %+.1f%%", ins.ExpenseChange),
		fmt.Sprintf("Daily average: %s", money(ins.DailyAverage)),
		fmt.Sprintf("Projected this month: %s", money(ins.ProjectedMonthly)),
		fmt.Sprintf("Savings rate: %.1f%% (%s)", ins.SavingsRate, ins.SavingsTier),
	}
	if len(ins.TopCategories) > 0 {
		res = append(res, "", "Top categories:")
		for i, c := range ins.TopCategories {
			res = append(res, fmt.Sprintf("%d. %s: %s", i+1, c.Category, money(c.Amount)))
		}
	}
	if len(ins.BudgetAlerts) > 0 {
		res = append(res, "", "Budget alerts:")
		for _, a := range ins.BudgetAlerts {
			res = append(res, fmt.Sprintf("%s: %.0f%% used", a.Category, a.Percentage))
		}
	}
	res = append(res, "", "Recommendations:")
	for _, rec := range analytics.Recommendations(ins) {
		res = append(res, "- "+rec.Text)
	}
	return strings.Join(res, "\n")
}

var knownCommands = map[string]struct{}{
	startCommand: {}, helpCommand: {}, expenseCommand: {}, incomeCommand: {}, budgetCommand: {},
	summaryCommand: {}, insightsCommand: {}, reportCommand: {}, categoriesCommand: {},
}

// commandLabel keeps the metrics label set bounded.
func commandLabel(text string) string {
	cmd, _ := parseCommand(text)
	if cmd == "" {
		return "text"
	}
	if _, ok := knownCommands[cmd]; ok {
		return cmd
	}
	return "unknown"
}
