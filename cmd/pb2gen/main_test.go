package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointProto = `
syntax = "proto2";
package geo;
message Point {
  optional int32 x = 1;
  optional int32 y = 2;
}
`

func TestRun(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "point.proto"), []byte(pointProto), 0o644))

	f := flags{protoPaths: []string{src}, goOut: out, goPkg: "geopb"}
	cfg, err := f.config()
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), log.NewNopLogger(), cfg, []string{"point.proto"}))

	content, err := os.ReadFile(filepath.Join(out, "point.pb2.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package geopb\n")
	assert.Contains(t, string(content), "type Point struct {")
}

func TestRunReportsSchemaErrors(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.proto"), []byte("syntax = \"proto2\";\nmessage {"), 0o644))

	cfg, err := flags{protoPaths: []string{src}, goOut: t.TempDir()}.config()
	require.NoError(t, err)
	assert.Error(t, run(context.Background(), log.NewNopLogger(), cfg, []string{"bad.proto"}))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pb2gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("go_out: gen/\ngo_package: frompb\nproto_paths: [a]\n"), 0o644))

	cfg, err := flags{configFile: path, goPkg: "flagpb", protoPaths: []string{"b"}}.config()
	require.NoError(t, err)
	assert.Equal(t, "gen", cfg.GoOut)
	assert.Equal(t, "flagpb", cfg.GoPackage)
	assert.Equal(t, []string{"a", "b"}, cfg.ProtoPaths)
	assert.False(t, cfg.SkipUnknown)
}
