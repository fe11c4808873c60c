package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "cultivation.v1alpha1.CultivationService"

// RPC method names
const (
	MethodAttemptBreakthrough = "AttemptBreakthrough"
	MethodGetBreakthroughInfo = "GetBreakthroughInfo"
	MethodCultivate           = "Cultivate"
	MethodGetCultivationInfo  = "GetCultivationInfo"
	MethodCreatePlayer        = "CreatePlayer"
	MethodGetPlayer           = "GetPlayer"
	MethodGetTribulation      = "GetTribulation"
	MethodResolveTribulation  = "ResolveTribulation"
)

// CultivationServiceServer is the server API. Requests and responses are
// google.protobuf.Struct messages keyed by snake_case field names.
type CultivationServiceServer interface {
	AttemptBreakthrough(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetBreakthroughInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Cultivate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetCultivationInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CreatePlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetPlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetTribulation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ResolveTribulation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv CultivationServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CultivationServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CultivationServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CultivationServiceDesc describes the service for grpc.Server registration
var CultivationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CultivationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodAttemptBreakthrough, CultivationServiceServer.AttemptBreakthrough),
		unaryMethod(MethodGetBreakthroughInfo, CultivationServiceServer.GetBreakthroughInfo),
		unaryMethod(MethodCultivate, CultivationServiceServer.Cultivate),
		unaryMethod(MethodGetCultivationInfo, CultivationServiceServer.GetCultivationInfo),
		unaryMethod(MethodCreatePlayer, CultivationServiceServer.CreatePlayer),
		unaryMethod(MethodGetPlayer, CultivationServiceServer.GetPlayer),
		unaryMethod(MethodGetTribulation, CultivationServiceServer.GetTribulation),
		unaryMethod(MethodResolveTribulation, CultivationServiceServer.ResolveTribulation),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cultivation/v1alpha1/cultivation.proto",
}

// RegisterCultivationServiceServer registers srv with s
func RegisterCultivationServiceServer(s grpc.ServiceRegistrar, srv CultivationServiceServer) {
	s.RegisterService(&CultivationServiceDesc, srv)
}

// Client calls the cultivation service by method name
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with a request built from fields
func (c *Client) Call(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
