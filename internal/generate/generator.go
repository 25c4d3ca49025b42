package generate

import "github.com/jptrs93/pb2gen/internal/ir"

type OutputFile struct {
	Path    string
	Content []byte
}

type Options struct {
	// GoPackage overrides the package name derived from each file.
	GoPackage string
	GoOut     string
	// SkipUnknown drops unrecognized fields even where a file asks for
	// them to be preserved.
	SkipUnknown bool
}

type Generator interface {
	Name() string
	Generate(files []*ir.File, options Options) ([]OutputFile, error)
}
