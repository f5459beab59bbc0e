package reportpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	acceptorServiceName = "finances.reports.ReportAcceptor"
	acceptReportMethod  = "/" + acceptorServiceName + "/AcceptReport"
)

// ReportAcceptorServer receives finished reports.
type ReportAcceptorServer interface {
	AcceptReport(ctx context.Context, in *ReportResult) error
}

var acceptorServiceDesc = grpc.ServiceDesc{
	ServiceName: acceptorServiceName,
	HandlerType: (*ReportAcceptorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AcceptReport",
			Handler:    acceptReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reportpb/acceptor",
}

func RegisterReportAcceptorServer(s grpc.ServiceRegistrar, srv ReportAcceptorServer) {
	s.RegisterService(&acceptorServiceDesc, srv)
}

func acceptReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	handle := func(ctx context.Context, req interface{}) (interface{}, error) {
		result, err := resultFromStruct(req.(*structpb.Struct))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if err = srv.(ReportAcceptorServer).AcceptReport(ctx, result); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &emptypb.Empty{}, nil
	}
	if interceptor == nil {
		return handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: acceptReportMethod,
	}
	return interceptor(ctx, in, info, handle)
}

type ReportAcceptorClient struct {
	cc grpc.ClientConnInterface
}

func NewReportAcceptorClient(cc grpc.ClientConnInterface) *ReportAcceptorClient {
	return &ReportAcceptorClient{cc}
}

func (c *ReportAcceptorClient) AcceptReport(ctx context.Context, in *ReportResult, opts ...grpc.CallOption) error {
	req, err := in.toStruct()
	if err != nil {
		return err
	}
	return c.cc.Invoke(ctx, acceptReportMethod, req, new(emptypb.Empty), opts...)
}
