package reports

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"max.ks1230/finances-tracker/api/reportpb"
	"max.ks1230/finances-tracker/internal/logger"
)

type Sender struct {
	conn   *grpc.ClientConn
	client *reportpb.ReportAcceptorClient
}

func NewSender(addr string) (*Sender, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	client := reportpb.NewReportAcceptorClient(conn)
	return &Sender{conn, client}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) SendReport(ctx context.Context, report *reportpb.ReportResult) error {
	logger.Info("SendReport - start", zap.Int64("chatID", report.GetChatID()), zap.String("period", report.GetPeriod()))
	defer logger.Info("SendReport - end")

	return errors.Wrap(s.client.AcceptReport(ctx, report), "send report")
}
