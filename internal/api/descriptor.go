package api

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	protoPackage = "orgmanager"
	protoFile    = "orgmanager/account.proto"
)

// File describes orgmanager/account.proto:
//
//	syntax = "proto3";
//	package orgmanager;
//	import "google/protobuf/timestamp.proto";
//
//	message RegisterRequest { string identifier = 1; string secret = 2; }
//	message AuthenticateRequest { string class = 1; string identifier = 2; string secret = 3; }
//	message Account {
//	  string id = 1;
//	  string class = 2;
//	  string identifier = 3;
//	  google.protobuf.Timestamp created_at = 4;
//	  google.protobuf.Timestamp updated_at = 5;
//	}
//	message AccountResponse { Account account = 1; }
//	message PingRequest {}
//	message PingResponse { string status = 1; }
//
//	service AccountService {
//	  rpc Register(RegisterRequest) returns (AccountResponse);
//	  rpc Authenticate(AuthenticateRequest) returns (AccountResponse);
//	  rpc Ping(PingRequest) returns (PingResponse);
//	}
var File protoreflect.FileDescriptor

var (
	registerRequestDesc     protoreflect.MessageDescriptor
	authenticateRequestDesc protoreflect.MessageDescriptor
	accountDesc             protoreflect.MessageDescriptor
	accountResponseDesc     protoreflect.MessageDescriptor
	pingRequestDesc         protoreflect.MessageDescriptor
	pingResponseDesc        protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("api: build %s: %v", protoFile, err))
	}
	File = fd

	msgs := fd.Messages()
	registerRequestDesc = msgs.ByName("RegisterRequest")
	authenticateRequestDesc = msgs.ByName("AuthenticateRequest")
	accountDesc = msgs.ByName("Account")
	accountResponseDesc = msgs.ByName("AccountResponse")
	pingRequestDesc = msgs.ByName("PingRequest")
	pingResponseDesc = msgs.ByName("PingResponse")
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	field := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   typ.Enum(),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}
	str := func(name string, number int32) *descriptorpb.FieldDescriptorProto {
		return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_STRING, "")
	}
	msg := func(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
		return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, typeName)
	}
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String("." + protoPackage + "." + in),
			OutputType: proto.String("." + protoPackage + "." + out),
		}
	}

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(protoFile),
		Package:    proto.String(protoPackage),
		Syntax:     proto.String("proto3"),
		Dependency: []string{"google/protobuf/timestamp.proto"},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("RegisterRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{str("identifier", 1), str("secret", 2)},
			},
			{
				Name:  proto.String("AuthenticateRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{str("class", 1), str("identifier", 2), str("secret", 3)},
			},
			{
				Name: proto.String("Account"),
				Field: []*descriptorpb.FieldDescriptorProto{
					str("id", 1),
					str("class", 2),
					str("identifier", 3),
					msg("created_at", 4, ".google.protobuf.Timestamp"),
					msg("updated_at", 5, ".google.protobuf.Timestamp"),
				},
			},
			{
				Name:  proto.String("AccountResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{msg("account", 1, "."+protoPackage+".Account")},
			},
			{Name: proto.String("PingRequest")},
			{
				Name:  proto.String("PingResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{str("status", 1)},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("AccountService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("Register", "RegisterRequest", "AccountResponse"),
				method("Authenticate", "AuthenticateRequest", "AccountResponse"),
				method("Ping", "PingRequest", "PingResponse"),
			},
		}},
	}
}
