package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/dynamicpb"
)

const ServiceName = "orgmanager.AccountService"

const (
	AccountService_Register_FullMethodName     = "/" + ServiceName + "/Register"
	AccountService_Authenticate_FullMethodName = "/" + ServiceName + "/Authenticate"
	AccountService_Ping_FullMethodName         = "/" + ServiceName + "/Ping"
)

// AccountServiceServer is the server API for AccountService.
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AccountResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*AccountResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// UnimplementedAccountServiceServer answers every method with
// codes.Unimplemented. Embed it to stay compatible with new methods.
type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) Register(context.Context, *RegisterRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAccountServiceServer) Authenticate(context.Context, *AuthenticateRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedAccountServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// wireMessage is implemented by every response type.
type wireMessage interface {
	toProto() *dynamicpb.Message
}

// serveUnary runs handler behind interceptor and encodes its response.
// Interceptors see the plain request and response structs.
func serveUnary(ctx context.Context, srv any, method string, req any, interceptor grpc.UnaryServerInterceptor, handler grpc.UnaryHandler) (any, error) {
	var (
		resp any
		err  error
	)
	if interceptor == nil {
		resp, err = handler(ctx, req)
	} else {
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		resp, err = interceptor(ctx, req, info, handler)
	}
	if err != nil {
		return nil, err
	}

	w, ok := resp.(wireMessage)
	if !ok {
		return nil, status.Errorf(codes.Internal, "unexpected response type %T", resp)
	}
	return w.toProto(), nil
}

func _AccountService_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(registerRequestDesc)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return serveUnary(ctx, srv, AccountService_Register_FullMethodName, registerRequestFromProto(in), interceptor, handler)
}

func _AccountService_Authenticate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(authenticateRequestDesc)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServiceServer).Authenticate(ctx, req.(*AuthenticateRequest))
	}
	return serveUnary(ctx, srv, AccountService_Authenticate_FullMethodName, authenticateRequestFromProto(in), interceptor, handler)
}

func _AccountService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(pingRequestDesc)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return serveUnary(ctx, srv, AccountService_Ping_FullMethodName, &PingRequest{}, interceptor, handler)
}

// AccountService_ServiceDesc is the grpc.ServiceDesc for AccountService.
var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _AccountService_Register_Handler},
		{MethodName: "Authenticate", Handler: _AccountService_Authenticate_Handler},
		{MethodName: "Ping", Handler: _AccountService_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// AccountServiceClient is the client API for AccountService.
type AccountServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc}
}

func (c *accountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	out := dynamicpb.NewMessage(accountResponseDesc)
	if err := c.cc.Invoke(ctx, AccountService_Register_FullMethodName, in.toProto(), out, opts...); err != nil {
		return nil, err
	}
	return accountResponseFromProto(out), nil
}

func (c *accountServiceClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	out := dynamicpb.NewMessage(accountResponseDesc)
	if err := c.cc.Invoke(ctx, AccountService_Authenticate_FullMethodName, in.toProto(), out, opts...); err != nil {
		return nil, err
	}
	return accountResponseFromProto(out), nil
}

func (c *accountServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := dynamicpb.NewMessage(pingResponseDesc)
	if err := c.cc.Invoke(ctx, AccountService_Ping_FullMethodName, in.toProto(), out, opts...); err != nil {
		return nil, err
	}
	return pingResponseFromProto(out), nil
}
