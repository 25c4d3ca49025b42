package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// Run renders every file concurrently. Outputs keep the order of files. The
// first failure cancels the files not yet started and no output is
// returned.
func Run(ctx context.Context, files []*ir.File, render func(*ir.File) (OutputFile, error)) ([]OutputFile, error) {
	outputs := make([]OutputFile, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := render(file)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
