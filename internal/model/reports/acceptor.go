package reports

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"max.ks1230/finances-tracker/api/reportpb"
	"max.ks1230/finances-tracker/internal/logger"
)

type reportAcceptor interface {
	AcceptReport(ctx context.Context, report *reportpb.ReportResult) error
}

type AcceptorServer struct {
	acceptor reportAcceptor
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(port int, acceptor reportAcceptor) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return newServer(lis, acceptor), nil
}

func newServer(lis net.Listener, acceptor reportAcceptor) *AcceptorServer {
	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		acceptor: acceptor,
		server:   rpcServer,
		lis:      lis,
	}
	reportpb.RegisterReportAcceptorServer(rpcServer, service)
	return service
}

func (s *AcceptorServer) Serve() {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gRPC", zap.Error(err))
	}
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) AcceptReport(ctx context.Context, in *reportpb.ReportResult) error {
	logger.Info("accepted report", zap.Int64("chatID", in.GetChatID()), zap.String("period", in.GetPeriod()))
	return s.acceptor.AcceptReport(ctx, in)
}
