// Command protoc-gen-pb2 is the protoc plugin form of pb2gen. Parameters
// are passed as --pb2_opt=go_pkg=name,skip_unknown=true.
package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/jptrs93/pb2gen/internal/config"
	gogen "github.com/jptrs93/pb2gen/internal/generate/go"
	"github.com/jptrs93/pb2gen/internal/parser"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if err := serve(os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "plugin failed", "err", err)
		os.Exit(1)
	}
}

// serve answers one CodeGeneratorRequest. Generation problems are reported
// to protoc inside the response; only I/O and encoding failures are
// returned.
func serve(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read request")
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(raw, req); err != nil {
		return errors.Wrap(err, "decode request")
	}
	resp, err := proto.Marshal(generateResponse(req))
	if err != nil {
		return errors.Wrap(err, "encode response")
	}
	_, err = out.Write(resp)
	return errors.Wrap(err, "write response")
}

func generateResponse(req *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	fail := func(err error) *pluginpb.CodeGeneratorResponse {
		resp.Error = proto.String(err.Error())
		return resp
	}

	cfg, err := config.ParseParameter(req.GetParameter())
	if err != nil {
		return fail(err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fail(err)
	}
	files, err := parser.FromRequest(req)
	if err != nil {
		return fail(err)
	}
	outputs, err := gogen.Generator{}.Generate(files, cfg.Options())
	if err != nil {
		return fail(err)
	}
	for _, out := range outputs {
		level.Debug(logger).Log("msg", "generated file", "path", out.Path)
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(out.Path),
			Content: proto.String(string(out.Content)),
		})
	}
	return resp
}
