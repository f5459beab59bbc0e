package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/analytics"
	"max.ks1230/finances-tracker/internal/model/customerr"
	"max.ks1230/finances-tracker/internal/model/records"
	"max.ks1230/finances-tracker/internal/model/reports"
)

const (
	dateLayout   = "02.01.2006"
	periodLayout = "01.2006"
)

const (
	dontUnderstandMessage  = "I don't understand you :( Try /help"
	helloMessage           = "Hello! I am your finances tracker bot 🤖"
	loveToTalkMessage      = "I would love to talk about it more!"
	reportRequestedMessage = "Your report for %s is being prepared, I'll send it shortly"

	incorrectUsageMessage   = "That is an incorrect command usage. Try /help"
	incorrectAmountMessage  = "The amount is incorrect. Should be a positive number"
	incorrectDateMessage    = "The date is incorrect. Should be dd.mm.yyyy"
	incorrectPeriodMessage  = "The month is incorrect. Should be mm.yyyy"
	invalidInputMessage     = "Can't save that: %s"
	cannotGetRecordsMessage = "Can't get your records atm. Try later"
	cannotSaveRecordMessage = "Can't save your record atm. Try later"
	cannotRequestReport     = "Can't request your report atm. Try later"
)

const helpMessage = `Commands:
/expense <category> <amount> [dd.mm.yyyy] [description] - record an expense
/income <category> <amount> [dd.mm.yyyy] [description] - record an income
/budget <category> <amount> [mm.yyyy] - set a monthly budget
/summary - this month at a glance
/insights - trends and recommendations for this month
/report [mm.yyyy] - full monthly report
/categories - suggested categories
Use _ instead of spaces in category names, e.g. Food_&_Dining`

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	expenseCommand    = "/expense"
	incomeCommand     = "/income"
	budgetCommand     = "/budget"
	summaryCommand    = "/summary"
	insightsCommand   = "/insights"
	reportCommand     = "/report"
	categoriesCommand = "/categories"
)

type recordsService interface {
	AddTransaction(ctx context.Context, in records.TransactionInput) (finance.Transaction, error)
	AddBudget(ctx context.Context, in records.BudgetInput) (finance.Budget, error)
	Snapshot(ctx context.Context) ([]finance.Transaction, []finance.Budget, error)
	Now() time.Time
}

type reportRequester interface {
	RequestReport(chatID int64, period string, generation uint64) error
}

type handler func(ctx context.Context, arg string, chatID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	records     recordsService
	requester   reportRequester
	cache       reportCache
}

func newHandler(recordsSvc recordsService, requester reportRequester, cache reportCache) *HandlerService {
	res := &HandlerService{
		records:   recordsSvc,
		requester: requester,
		cache:     cache,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, chatID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[expenseCommand] = s.transactionHandler(finance.Expense)
	m[incomeCommand] = s.transactionHandler(finance.Income)
	m[budgetCommand] = s.handleBudget
	m[summaryCommand] = s.handleSummary
	m[insightsCommand] = s.handleInsights
	m[reportCommand] = s.handleReport
	m[categoriesCommand] = s.handleCategories

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) transactionHandler(typ finance.TransactionType) handler {
	return func(ctx context.Context, arg string, _ int64) (string, error) {
		args := strings.Fields(arg)
		if len(args) < 2 {
			return incorrectUsageMessage, nil
		}
		amount, ok := parseAmount(args[1])
		if !ok {
			return incorrectAmountMessage, nil
		}

		in := records.TransactionInput{
			Amount:   amount,
			Date:     s.records.Now(),
			Type:     typ,
			Category: parseCategory(args[0]),
		}
		rest := args[2:]
		if len(rest) > 0 && looksLikeDate(rest[0]) {
			date, err := time.ParseInLocation(dateLayout, rest[0], s.records.Now().Location())
			if err != nil {
				return incorrectDateMessage, nil
			}
			in.Date = date
			rest = rest[1:]
		}
		in.Description = strings.Join(rest, " ")
		if in.Description == "" {
			in.Description = in.Category
		}

		tx, err := s.records.AddTransaction(ctx, in)
		if customerr.IsValidation(err) {
			return fmt.Sprintf(invalidInputMessage, customerr.Message(err)), nil
		}
		if err != nil {
			return cannotSaveRecordMessage, errors.Wrap(err, "handle "+string(typ))
		}
		return fmt.Sprintf("Gotcha! Recorded %s of %s in %s on %s",
			tx.Type, analytics.FormatMoney(tx.Amount), tx.Category, tx.Date.Format(dateLayout)), nil
	}
}

func (s *HandlerService) handleBudget(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 || len(args) > 3 {
		return incorrectUsageMessage, nil
	}
	amount, ok := parseAmount(args[1])
	if !ok {
		return incorrectAmountMessage, nil
	}
	p := finance.PeriodOf(s.records.Now())
	if len(args) == 3 {
		var err error
		if p, err = parsePeriod(args[2]); err != nil {
			return incorrectPeriodMessage, nil
		}
	}

	b, err := s.records.AddBudget(ctx, records.BudgetInput{
		Category: parseCategory(args[0]),
		Amount:   amount,
		Month:    p.MonthString(),
		Year:     p.Year,
	})
	if customerr.IsValidation(err) {
		return fmt.Sprintf(invalidInputMessage, customerr.Message(err)), nil
	}
	if err != nil {
		return cannotSaveRecordMessage, errors.Wrap(err, "handle budget")
	}
	return fmt.Sprintf("Gotcha! Budget for %s in %s is %s",
		b.Category, p.Label(), analytics.FormatMoney(b.Amount)), nil
}

func (s *HandlerService) handleSummary(ctx context.Context, _ string, _ int64) (string, error) {
	txs, budgets, err := s.records.Snapshot(ctx)
	if err != nil {
		return cannotGetRecordsMessage, errors.Wrap(err, "handle summary")
	}
	p := finance.PeriodOf(s.records.Now())
	return formatSummary(p, analytics.Summarize(txs, budgets, p)), nil
}

func (s *HandlerService) handleInsights(ctx context.Context, _ string, _ int64) (string, error) {
	txs, budgets, err := s.records.Snapshot(ctx)
	if err != nil {
		return cannotGetRecordsMessage, errors.Wrap(err, "handle insights")
	}
	now := s.records.Now()
	return formatInsights(analytics.Analyze(txs, budgets, finance.PeriodOf(now), now)), nil
}

// handleReport answers from the cache when it can. Otherwise the report is
// requested from the reporter, or built in place when no reporter is wired.
func (s *HandlerService) handleReport(ctx context.Context, arg string, chatID int64) (string, error) {
	now := s.records.Now()
	p := finance.PeriodOf(now)
	if arg = strings.TrimSpace(arg); arg != "" {
		var err error
		if p, err = parsePeriod(arg); err != nil {
			return incorrectPeriodMessage, nil
		}
	}

	// The generation is read before the report is built, so a write racing with
	// the build keeps the result out of the cache.
	var generation uint64
	if s.cache != nil {
		text, ok, err := s.cache.GetReport(p.Key())
		if err != nil {
			logger.Warn("report cache unavailable", zap.Error(err))
		}
		if ok {
			return text, nil
		}
		if generation, err = s.cache.ReportGeneration(p.Key()); err != nil {
			logger.Warn("report generation unavailable", zap.Error(err))
		}
	}

	if s.requester == nil {
		txs, budgets, err := s.records.Snapshot(ctx)
		if err != nil {
			return cannotGetRecordsMessage, errors.Wrap(err, "handle report")
		}
		return reports.Format(reports.Build(txs, budgets, p, now)), nil
	}

	if err := s.requester.RequestReport(chatID, p.Key(), generation); err != nil {
		return cannotRequestReport, errors.Wrap(err, "handle report")
	}
	return fmt.Sprintf(reportRequestedMessage, p.Label()), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	cats := records.Categories("")
	return strings.Join([]string{
		"Expense categories:",
		strings.Join(cats[finance.Expense], ", "),
		"",
		"Income categories:",
		strings.Join(cats[finance.Income], ", "),
	}, "\n"), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func parseAmount(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

func parsePeriod(raw string) (finance.Period, error) {
	t, err := time.Parse(periodLayout, raw)
	if err != nil {
		return finance.Period{}, err
	}
	return finance.PeriodOf(t), nil
}
