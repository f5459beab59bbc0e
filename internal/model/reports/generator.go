package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/api/reportpb"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
)

type reportStorage interface {
	TransactionsBetween(ctx context.Context, from, to time.Time) ([]finance.Transaction, error)
	ListBudgets(ctx context.Context) ([]finance.Budget, error)
}

type config interface {
	Location() *time.Location
}

type Generator struct {
	storage reportStorage
	loc     *time.Location
	now     func() time.Time
}

func NewGenerator(config config, storage reportStorage) *Generator {
	return &Generator{
		storage: storage,
		loc:     config.Location(),
		now:     time.Now,
	}
}

// Generate loads p and the month before it and builds the report of p.
func (g *Generator) Generate(ctx context.Context, p finance.Period) (Report, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	start := time.Now()
	report, err := g.generate(ctx, p)
	observeGeneration(time.Since(start), err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return report, err
}

func (g *Generator) generate(ctx context.Context, p finance.Period) (Report, error) {
	txs, err := g.storage.TransactionsBetween(ctx, p.Previous().Start(), p.End())
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}
	budgets, err := g.storage.ListBudgets(ctx)
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}
	return Build(txs, budgets, p, g.now().In(g.loc)), nil
}

// GenerateReport answers a report request. The result always carries the chat and
// period of the request; Error is filled when the report could not be built.
func (g *Generator) GenerateReport(ctx context.Context, chatID int64, period string) (result *reportpb.ReportResult, err error) {
	logger.Info("GenerateReport - start", zap.Int64("chatID", chatID), zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	result = &reportpb.ReportResult{ChatID: chatID, Period: period}
	defer func() {
		if err != nil {
			result.Error = err.Error()
		}
	}()

	p, err := finance.ParsePeriod(period)
	if err != nil {
		return result, errors.Wrap(err, "generate report")
	}
	report, err := g.Generate(ctx, p)
	if err != nil {
		return result, err
	}
	result.Text = Format(report)
	return result, nil
}
