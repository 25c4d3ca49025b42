package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jptrs93/pb2gen/internal/generate"
)

// Config is the generator configuration shared by the command line tool
// and the protoc plugin.
type Config struct {
	ProtoPaths  []string `yaml:"proto_paths"`
	GoOut       string   `yaml:"go_out"`
	GoPackage   string   `yaml:"go_package"`
	SkipUnknown bool     `yaml:"skip_unknown"`
	LogLevel    string   `yaml:"log_level"`
}

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(raw)
}

func Parse(raw []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// ParseParameter reads the comma separated key=value list protoc passes to
// plugins, e.g. "go_pkg=foo,skip_unknown=true".
func ParseParameter(param string) (Config, error) {
	var cfg Config
	for _, kv := range strings.Split(param, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		key, value, _ := strings.Cut(kv, "=")
		switch key {
		case "go_pkg", "go_package":
			cfg.GoPackage = value
		case "skip_unknown":
			if value == "" {
				cfg.SkipUnknown = true
				continue
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Config{}, errors.Wrapf(err, "parameter %s", key)
			}
			cfg.SkipUnknown = b
		case "log_level":
			cfg.LogLevel = value
		default:
			return Config{}, errors.Errorf("unknown parameter %q", key)
		}
	}
	return cfg, nil
}

func (c Config) Options() generate.Options {
	return generate.Options{
		GoPackage:   c.GoPackage,
		GoOut:       c.GoOut,
		SkipUnknown: c.SkipUnknown,
	}
}

// NewLogger returns a logfmt logger on stderr that drops entries below
// the named level. An empty name means info.
func NewLogger(name string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(name) {
	case "debug":
		opt = level.AllowDebug()
	case "", "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", name)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
