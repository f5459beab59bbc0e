package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/api/reportpb"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
)

const (
	somethingWrongMessage = "Sorry, something wrong happened...\n"
	reportFailedMessage   = "Sorry, your report for %s could not be built: %s"
)

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type reportCache interface {
	GetReport(period string) (string, bool, error)
	ReportGeneration(period string) (uint64, error)
	CacheReport(period string, report string, generation uint64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, chatID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
	cache    reportCache
}

// NewService wires the bot. requester and cache may be nil: reports are then
// built in place and never cached.
func NewService(tgClient messageSender, records recordsService, requester reportRequester, cache reportCache) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(records, requester, cache),
		cache:    cache,
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(commandLabel(msg.Text), elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		_ = s.tgClient.SendMessage(somethingWrongMessage+resp, msg.ChatID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.ChatID)
}

// AcceptReport delivers a report built by the reporter to the chat that asked for it.
func (s *Service) AcceptReport(ctx context.Context, report *reportpb.ReportResult) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "acceptReport")
	defer span.Finish()

	label := report.GetPeriod()
	if p, err := finance.ParsePeriod(report.GetPeriod()); err == nil {
		label = p.Label()
	}
	if !report.Success() {
		ext.Error.Set(span, true)
		return s.tgClient.SendMessage(fmt.Sprintf(reportFailedMessage, label, report.GetError()), report.GetChatID())
	}

	if s.cache != nil {
		if err := s.cache.CacheReport(report.GetPeriod(), report.GetText(), report.GetGeneration()); err != nil {
			logger.Error("failed to cache report", zap.Error(err), zap.String("period", report.GetPeriod()))
		}
	}
	return errors.Wrap(s.tgClient.SendMessage(report.GetText(), report.GetChatID()), "accept report")
}
