package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/jptrs93/pb2gen/internal/config"
	"github.com/jptrs93/pb2gen/internal/generate"
	gogen "github.com/jptrs93/pb2gen/internal/generate/go"
	"github.com/jptrs93/pb2gen/internal/parser"
)

type flags struct {
	configFile  string
	protoPaths  []string
	goOut       string
	goPkg       string
	skipUnknown bool
	logLevel    string
	files       []string
}

func main() {
	var f flags
	app := kingpin.New(filepath.Base(os.Args[0]), "Generate Go encoders and decoders for protocol buffer messages.")
	app.HelpFlag.Short('h')
	app.Flag("config.file", "YAML config file; flags override its values.").StringVar(&f.configFile)
	app.Flag("proto-path", "Directory to search for imports (repeatable).").Short('I').StringsVar(&f.protoPaths)
	app.Flag("go-out", "Output directory for generated Go files.").StringVar(&f.goOut)
	app.Flag("go-pkg", "Go package name for all generated files.").StringVar(&f.goPkg)
	app.Flag("skip-unknown", "Discard unknown fields instead of preserving them.").BoolVar(&f.skipUnknown)
	app.Flag("log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error]").StringVar(&f.logLevel)
	app.Arg("files", "Schema files to generate.").Required().StringsVar(&f.files)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := f.config()
	if err != nil {
		app.Fatalf("%v", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		app.Fatalf("%v", err)
	}
	if err := run(context.Background(), logger, cfg, f.files); err != nil {
		level.Error(logger).Log("msg", "generation failed", "err", err)
		os.Exit(1)
	}
}

// config merges the config file, if any, with the flags given.
func (f flags) config() (config.Config, error) {
	var cfg config.Config
	if f.configFile != "" {
		var err error
		if cfg, err = config.Load(f.configFile); err != nil {
			return config.Config{}, err
		}
	}
	cfg.ProtoPaths = append(cfg.ProtoPaths, f.protoPaths...)
	if len(cfg.ProtoPaths) == 0 {
		cfg.ProtoPaths = []string{"."}
	}
	if f.goOut != "" {
		cfg.GoOut = f.goOut
	}
	if f.goPkg != "" {
		cfg.GoPackage = f.goPkg
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	cfg.SkipUnknown = cfg.SkipUnknown || f.skipUnknown
	cfg.GoOut = cleanPath(cfg.GoOut)
	return cfg, nil
}

func run(ctx context.Context, logger log.Logger, cfg config.Config, files []string) error {
	p := parser.Parser{ImportPaths: cfg.ProtoPaths}
	irFiles, err := p.Parse(ctx, files)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "parsed schema", "files", len(irFiles))

	generators := []generate.Generator{
		gogen.Generator{},
	}
	for _, gen := range generators {
		outputs, err := gen.Generate(irFiles, cfg.Options())
		if err != nil {
			return err
		}
		if err := generate.WriteFiles(outputs); err != nil {
			return err
		}
		for _, out := range outputs {
			level.Info(logger).Log("msg", "wrote file", "generator", gen.Name(), "path", out.Path)
		}
	}
	return nil
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
