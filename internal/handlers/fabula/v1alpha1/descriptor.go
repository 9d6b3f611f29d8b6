package v1alpha1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/structpb"
)

// ProtoFile is the registered file name of the ActionService descriptor
const ProtoFile = "fabula/api/v1alpha1/action.proto"

const structType = ".google.protobuf.Struct"

// FileDescriptor describes ActionService for server reflection
var FileDescriptor protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic("v1alpha1: invalid ActionService descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("v1alpha1: failed to register ActionService descriptor: " + err.Error())
	}
	FileDescriptor = fd
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	methods := make([]*descriptorpb.MethodDescriptorProto, 0, len(ActionServiceDesc.Methods))
	for _, m := range ActionServiceDesc.Methods {
		methods = append(methods, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.MethodName),
			InputType:  proto.String(structType),
			OutputType: proto.String(structType),
		})
	}

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(ProtoFile),
		Package:    proto.String("fabula.api.v1alpha1"),
		Dependency: []string{"google/protobuf/struct.proto"},
		Syntax:     proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/KirkDiggler/fabula-api/internal/handlers/fabula/v1alpha1"),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String("ActionService"),
			Method: methods,
		}},
	}
}
