package gogen

import (
	"context"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jptrs93/pb2gen/internal/generate"
	"github.com/jptrs93/pb2gen/internal/ir"
	"github.com/jptrs93/pb2gen/internal/parser"
)

const shapesProto = `
syntax = "proto2";

package acme.shapes;

message Point {
  optional int32 x = 1;
  optional int32 y = 2;
}

message Search {
  enum Mode {
    option allow_alias = true;
    FAST = 1;
    QUICK = 1;
    SLOW = 2;
  }
  required string query = 1;
  repeated group Result = 2 {
    required string url = 3;
  }
  optional Mode mode = 4 [default = SLOW];
  optional double ratio = 5 [default = inf];
  optional bytes blob = 6 [default = "\001\002"];
  optional Point origin = 7;
  optional sint32 delta = 8;
  optional int64 size = 9;
}
`

func compile(t *testing.T, sources map[string]string, names ...string) []*ir.File {
	t.Helper()
	p := parser.Parser{Accessor: protocompile.SourceAccessorFromMap(sources)}
	files, err := p.Parse(context.Background(), names)
	require.NoError(t, err)
	return files
}

func generateOne(t *testing.T, src string, options generate.Options) string {
	t.Helper()
	files := compile(t, map[string]string{"shapes.proto": src}, "shapes.proto")
	outputs, err := Generator{}.Generate(files, options)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	return string(outputs[0].Content)
}

func TestGenerateFileLayout(t *testing.T) {
	files := compile(t, map[string]string{"acme/shapes.proto": shapesProto}, "acme/shapes.proto")
	outputs, err := Generator{}.Generate(files, generate.Options{GoOut: "out"})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "out/acme/shapes.pb2.go", outputs[0].Path)

	src := string(outputs[0].Content)
	assert.True(t, strings.HasPrefix(src, "// Code generated by pb2gen. DO NOT EDIT.\n// source: acme/shapes.proto\n"))
	assert.Contains(t, src, "package acme_shapes\n")
	assert.Contains(t, src, `"github.com/jptrs93/pb2gen/wire"`)
}

func TestGeneratePoint(t *testing.T) {
	src := generateOne(t, shapesProto, generate.Options{})

	assert.Contains(t, src, "type Point struct {\n\tX *int32\n\tY *int32\n")
	assert.Contains(t, src, "b = append(b, \"\\x08\"...)\n\t\tb = protowire.AppendVarint(b, uint64(*m.X))")
	assert.Contains(t, src, "n += 1 + protowire.SizeVarint(uint64(*m.Y))")
	assert.Contains(t, src, "func (m *Point) GetX() int32 {")
	assert.Contains(t, src, "func (m *Point) HasX() bool {")
}

func TestGenerateSearch(t *testing.T) {
	src := generateOne(t, shapesProto, generate.Options{})

	// Group body: start tag 0x13, end tag 0x14, closes on number 2 only.
	assert.Contains(t, src, "// Search_Result is the group acme.shapes.Search.Result.")
	assert.Contains(t, src, "if num != 2 {")
	assert.Contains(t, src, `b = append(b, "\x14"...)`)
	assert.Contains(t, src, `b = append(b, "\x13"...)`)
	assert.Contains(t, src, "return false, wire.UnterminatedGroupError(num)")

	// Required validation covers only required fields.
	assert.Contains(t, src, "return m != nil && m.Query != nil\n")

	// Defaults.
	assert.Contains(t, src, "const Default_Search_Mode Search_Mode = Search_Mode_SLOW")
	assert.Contains(t, src, "var Default_Search_Ratio float64 = math.Inf(1)")
	assert.Contains(t, src, `var Default_Search_Blob []byte = []byte("\x01\x02")`)
	assert.Contains(t, src, "return Default_Search_Mode")

	// Zigzag both ways.
	assert.Contains(t, src, "protowire.EncodeZigZag(int64(*m.Delta))")
	assert.Contains(t, src, "int32(protowire.DecodeZigZag(v & math.MaxUint32))")

	// Size collides with a generated method.
	assert.Regexp(t, `\tSize_\s+\*int64\n`, src)
	assert.Contains(t, src, "func (m *Search) GetSize() int64 {")

	// The bytes default is copied before it is handed out.
	assert.Contains(t, src, "return append([]byte(nil), Default_Search_Blob...)")

	// Nil-safe element access.
	assert.Contains(t, src, "func (m *Search) GetResult(i int) *Search_Result {\n\tif m == nil {\n\t\treturn nil\n\t}")

	// Every Decode counts nesting depth.
	assert.Contains(t, src, "if err := r.Enter(); err != nil {\n\t\treturn false, err\n\t}\n\tdefer r.Leave()")

	// Nested messages are length checked.
	assert.Contains(t, src, "return false, wire.NestedLengthError(num, l)")
}

func TestGenerateEnumAliases(t *testing.T) {
	src := generateOne(t, shapesProto, generate.Options{})

	assert.Contains(t, src, "Search_Mode_QUICK Search_Mode = 1")
	assert.Contains(t, src, "var Search_Mode_name = map[int32]string{\n\t1: \"FAST\",\n\t2: \"SLOW\",\n}")
	assert.Contains(t, src, "\"QUICK\": 1,")
	assert.Contains(t, src, `return "UNKNOWN"`)
}

func TestGenerateUnknownFieldPolicy(t *testing.T) {
	preserved := generateOne(t, shapesProto, generate.Options{})
	assert.Contains(t, preserved, "unknownFields wire.UnknownFields")
	assert.Contains(t, preserved, "m.unknownFields = m.unknownFields.Append(num, typ, raw)")
	assert.Contains(t, preserved, "func (m *Point) GetUnknownFields() wire.UnknownFields {")

	skipped := generateOne(t, shapesProto, generate.Options{SkipUnknown: true})
	assert.NotContains(t, skipped, "unknownFields")
	assert.Contains(t, skipped, "n, err := r.SkipField(num, typ)")

	fromOption := generateOne(t, `
syntax = "proto2";
import "pb2/options.proto";
option (pb2.skip_unknown) = true;
message Point { optional int32 x = 1; }
`, generate.Options{GoPackage: "geo"})
	assert.NotContains(t, fromOption, "unknownFields")
	assert.Contains(t, fromOption, "package geo\n")
}

func TestGeneratePackageOverrideIsSanitized(t *testing.T) {
	src := generateOne(t, shapesProto, generate.Options{GoPackage: "acme.geo-v1"})
	assert.Contains(t, src, "package acme_geo_v1\n")
}

func TestGenerateRenamesCollidingFields(t *testing.T) {
	src := generateOne(t, `
syntax = "proto2";
message Listing {
  repeated string item = 1;
  optional int32 item_count = 2;
  optional string name = 3;
  optional bool has_name = 4;
  optional int32 foo_bar = 5;
  optional int32 Foo_bar = 6 [default = 3];
  repeated int32 x = 7;
  optional int32 x_array = 8;
  optional int64 size = 9;
}
`, generate.Options{})

	assertUniqueDeclarations(t, src)

	// Struct fields step aside for sibling accessors.
	assert.Regexp(t, `\tItemCount_\s+\*int32\n`, src)
	assert.Regexp(t, `\tHasName_\s+\*bool\n`, src)
	assert.Regexp(t, `\tSize_\s+\*int64\n`, src)
	assert.Contains(t, src, "func (m *Listing) ItemCount() int {")
	assert.Contains(t, src, "func (m *Listing) GetItemCount() int32 {\n\tif m != nil && m.ItemCount_ != nil {")
	assert.Contains(t, src, "func (m *Listing) HasName() bool {\n\treturn m != nil && m.Name != nil\n}")
	assert.Contains(t, src, "func (m *Listing) HasHasName() bool {\n\treturn m != nil && m.HasName_ != nil\n}")

	// Accessors that would clash get their own suffix.
	assert.Contains(t, src, "func (m *Listing) GetFooBar() int32 {\n\tif m != nil && m.FooBar != nil {")
	assert.Contains(t, src, "func (m *Listing) GetFooBar_() int32 {\n\tif m != nil && m.FooBar_ != nil {")
	assert.Contains(t, src, "const Default_Listing_FooBar_ int32 = 3")
	assert.Contains(t, src, "func (m *Listing) GetXArray() []int32 {")
	assert.Contains(t, src, "func (m *Listing) GetXArray_() int32 {\n\tif m != nil && m.XArray != nil {")
}

func TestGenerateRejectsTypeNameCollisions(t *testing.T) {
	tests := map[string]map[string]string{
		"nested and top level": {
			"shapes.proto": `
syntax = "proto2";
message Outer {
  message Inner { optional int32 v = 1; }
  optional Inner inner = 1;
}
message Outer_Inner { optional int32 v = 1; }
`,
		},
		"across files": {
			"one.proto": "syntax = \"proto2\";\npackage one;\nmessage Shared { optional int32 v = 1; }\n",
			"two.proto": "syntax = \"proto2\";\npackage two;\nmessage Shared { optional int32 v = 1; }\n",
		},
		"enum value and message": {
			"shapes.proto": `
syntax = "proto2";
enum Color { RED = 0; }
message Color_RED { optional int32 v = 1; }
`,
		},
	}
	for name, sources := range tests {
		t.Run(name, func(t *testing.T) {
			var paths []string
			for path := range sources {
				paths = append(paths, path)
			}
			files := compile(t, sources, paths...)
			_, err := Generator{}.Generate(files, generate.Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNameCollision), "got %v", err)
		})
	}
}

func TestGenerateRejectsPacked(t *testing.T) {
	for name, src := range map[string]string{
		"proto2": `
syntax = "proto2";
message Packed { repeated int32 xs = 1 [packed = true]; }
`,
		"proto3": `
syntax = "proto3";
message Packed { repeated int32 xs = 1; }
`,
	} {
		t.Run(name, func(t *testing.T) {
			files := compile(t, map[string]string{"shapes.proto": src}, "shapes.proto")
			_, err := Generator{}.Generate(files, generate.Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPackedUnsupported), "got %v", err)
		})
	}
}

func TestGenerateKeepsFileOrder(t *testing.T) {
	sources := map[string]string{}
	var names []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		path := name + ".proto"
		sources[path] = "syntax = \"proto2\";\npackage shared;\nmessage M" + name + " { optional int32 v = 1; }\n"
		names = append(names, path)
	}
	files := compile(t, sources, names...)
	outputs, err := Generator{}.Generate(files, generate.Options{})
	require.NoError(t, err)
	require.Len(t, outputs, len(names))
	for i, name := range names {
		assert.Equal(t, OutputName(name), outputs[i].Path)
	}
}

func TestResolveWireShape(t *testing.T) {
	tests := []struct {
		kind ir.Kind
		want WireShape
	}{
		{ir.KindBool, WireShape{Type: protowire.VarintType, Framing: FramingVarint}},
		{ir.KindEnum, WireShape{Type: protowire.VarintType, Framing: FramingVarint}},
		{ir.KindSint64, WireShape{Type: protowire.VarintType, Framing: FramingVarint}},
		{ir.KindFloat, WireShape{Type: protowire.Fixed32Type, Framing: FramingFixed, Width: 4}},
		{ir.KindSfixed64, WireShape{Type: protowire.Fixed64Type, Framing: FramingFixed, Width: 8}},
		{ir.KindBytes, WireShape{Type: protowire.BytesType, Framing: FramingBytes}},
		{ir.KindMessage, WireShape{Type: protowire.BytesType, Framing: FramingBytes}},
		{ir.KindGroup, WireShape{Type: protowire.StartGroupType, Framing: FramingGroup}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := ResolveWireShape(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ResolveWireShape(ir.Kind(99))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestTagLiteral(t *testing.T) {
	assert.Equal(t, `"\x08"`, tagLiteral(1, protowire.VarintType))
	assert.Equal(t, `"\x12"`, tagLiteral(2, protowire.BytesType))
	assert.Equal(t, `"\x80\x01"`, tagLiteral(16, protowire.VarintType))
	assert.Equal(t, `"\x14"`, endTagLiteral(2))
}

// assertUniqueDeclarations parses src and fails when a package-level name,
// or a field or method of one type, is declared twice.
func assertUniqueDeclarations(t *testing.T, src string) {
	t.Helper()
	file, err := goparser.ParseFile(token.NewFileSet(), "generated.go", src, 0)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				seen[d.Name.Name]++
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			seen[recv.(*ast.Ident).Name+"."+d.Name.Name]++
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					seen[s.Name.Name]++
					st, ok := s.Type.(*ast.StructType)
					if !ok {
						continue
					}
					for _, field := range st.Fields.List {
						for _, name := range field.Names {
							seen[s.Name.Name+"."+name.Name]++
						}
					}
				case *ast.ValueSpec:
					for _, name := range s.Names {
						if name.Name != "_" {
							seen[name.Name]++
						}
					}
				}
			}
		}
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "%s declared %d times", name, count)
	}
}
