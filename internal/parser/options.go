package parser

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

// OptionsProtoPath is the import path under which schemas find the
// generator's file options.
const OptionsProtoPath = "pb2/options.proto"

const optionsProtoSource = `
syntax = "proto2";

package pb2;

import "google/protobuf/descriptor.proto";

extend google.protobuf.FileOptions {
  optional string namespace = 50200;
  optional bool skip_unknown = 50201;
}
`

var E_Namespace = &protoimpl.ExtensionInfo{
	ExtendedType:  (*descriptorpb.FileOptions)(nil),
	ExtensionType: (*string)(nil),
	Field:         50200,
	Name:          "pb2.namespace",
	Tag:           "bytes,50200,opt,name=namespace",
	Filename:      OptionsProtoPath,
}

var E_SkipUnknown = &protoimpl.ExtensionInfo{
	ExtendedType:  (*descriptorpb.FileOptions)(nil),
	ExtensionType: (*bool)(nil),
	Field:         50201,
	Name:          "pb2.skip_unknown",
	Tag:           "varint,50201,opt,name=skip_unknown",
	Filename:      OptionsProtoPath,
}

func fileOptions(file protoreflect.FileDescriptor) *descriptorpb.FileOptions {
	opts, ok := file.Options().(*descriptorpb.FileOptions)
	if !ok {
		return nil
	}
	return opts
}

func namespaceFromOptions(file protoreflect.FileDescriptor) string {
	opts := fileOptions(file)
	if opts == nil {
		return ""
	}
	if proto.HasExtension(opts, E_Namespace) {
		if str, ok := proto.GetExtension(opts, E_Namespace).(string); ok {
			return str
		}
	}
	// Descriptors built without the extension registered keep the option as
	// an unknown field.
	raw, ok := unknownOption(opts, E_Namespace.Field, protowire.BytesType)
	if !ok {
		return ""
	}
	v, n := protowire.ConsumeBytes(raw)
	if n < 0 {
		return ""
	}
	return string(v)
}

func skipUnknownFromOptions(file protoreflect.FileDescriptor) bool {
	opts := fileOptions(file)
	if opts == nil {
		return false
	}
	if proto.HasExtension(opts, E_SkipUnknown) {
		v, _ := proto.GetExtension(opts, E_SkipUnknown).(bool)
		return v
	}
	raw, ok := unknownOption(opts, E_SkipUnknown.Field, protowire.VarintType)
	if !ok {
		return false
	}
	v, n := protowire.ConsumeVarint(raw)
	return n > 0 && v != 0
}

// unknownOption returns the last occurrence of field num among the unknown
// fields of opts, without its tag.
func unknownOption(opts proto.Message, num int32, typ protowire.Type) ([]byte, bool) {
	b := opts.ProtoReflect().GetUnknown()
	var last []byte
	found := false
	for len(b) > 0 {
		n, t, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return nil, false
		}
		valLen := protowire.ConsumeFieldValue(n, t, b[tagLen:])
		if valLen < 0 {
			return nil, false
		}
		if n == protowire.Number(num) && t == typ {
			last = b[tagLen : tagLen+valLen]
			found = true
		}
		b = b[tagLen+valLen:]
	}
	return last, found
}

func goPackageFromOptions(file protoreflect.FileDescriptor) string {
	opts := fileOptions(file)
	if opts == nil {
		return ""
	}
	return opts.GetGoPackage()
}
