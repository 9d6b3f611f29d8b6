package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "fabula.api.v1alpha1.ActionService"

// Full method names
const (
	RollItemMethod         = "/" + ServiceName + "/RollItem"
	GetRollLogMethod       = "/" + ServiceName + "/GetRollLog"
	ClearRollLogMethod     = "/" + ServiceName + "/ClearRollLog"
	GetWeaponDisplayMethod = "/" + ServiceName + "/GetWeaponDisplay"
	ListActorsMethod       = "/" + ServiceName + "/ListActors"
)

// ActionServiceServer is the server API for ActionService. Requests and
// responses are google.protobuf.Struct documents.
type ActionServiceServer interface {
	RollItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWeaponDisplay(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListActors(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterActionServiceServer registers srv on s
func RegisterActionServiceServer(s grpc.ServiceRegistrar, srv ActionServiceServer) {
	s.RegisterService(&ActionServiceDesc, srv)
}

type structMethod func(ActionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ActionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ActionServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ActionServiceDesc is the grpc.ServiceDesc for ActionService
var ActionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ActionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollItem",
			Handler:    unaryHandler(RollItemMethod, ActionServiceServer.RollItem),
		},
		{
			MethodName: "GetRollLog",
			Handler:    unaryHandler(GetRollLogMethod, ActionServiceServer.GetRollLog),
		},
		{
			MethodName: "ClearRollLog",
			Handler:    unaryHandler(ClearRollLogMethod, ActionServiceServer.ClearRollLog),
		},
		{
			MethodName: "GetWeaponDisplay",
			Handler:    unaryHandler(GetWeaponDisplayMethod, ActionServiceServer.GetWeaponDisplay),
		},
		{
			MethodName: "ListActors",
			Handler:    unaryHandler(ListActorsMethod, ActionServiceServer.ListActors),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

// ActionServiceClient is the client API for ActionService
type ActionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewActionServiceClient creates a client over cc
func NewActionServiceClient(cc grpc.ClientConnInterface) *ActionServiceClient {
	return &ActionServiceClient{cc: cc}
}

func (c *ActionServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RollItem calls ActionService.RollItem
func (c *ActionServiceClient) RollItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RollItemMethod, in, opts...)
}

// GetRollLog calls ActionService.GetRollLog
func (c *ActionServiceClient) GetRollLog(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetRollLogMethod, in, opts...)
}

// ClearRollLog calls ActionService.ClearRollLog
func (c *ActionServiceClient) ClearRollLog(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ClearRollLogMethod, in, opts...)
}

// GetWeaponDisplay calls ActionService.GetWeaponDisplay
func (c *ActionServiceClient) GetWeaponDisplay(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetWeaponDisplayMethod, in, opts...)
}

// ListActors calls ActionService.ListActors
func (c *ActionServiceClient) ListActors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListActorsMethod, in, opts...)
}
