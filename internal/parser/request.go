package parser

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// FromRequest converts the files a protoc plugin request asks for.
func FromRequest(req *pluginpb.CodeGeneratorRequest) ([]*ir.File, error) {
	registry, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return nil, errors.Wrap(err, "build descriptors")
	}
	descs := make([]protoreflect.FileDescriptor, 0, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		fd, err := registry.FindFileByPath(name)
		if err != nil {
			return nil, errors.Wrapf(err, "find %s", name)
		}
		descs = append(descs, fd)
	}
	return Convert(descs)
}
