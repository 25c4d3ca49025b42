package examplepb

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jptrs93/pb2gen/wire"
)

func extremeScalars() *Scalars {
	return &Scalars{
		Big:    ptr(int64(math.MinInt64)),
		Port:   ptr(uint32(math.MaxUint32)),
		Total:  ptr(uint64(math.MaxUint64)),
		Delta:  ptr(int32(math.MinInt32)),
		Stamp:  ptr(uint64(math.MaxUint64)),
		Code:   ptr(int32(math.MinInt32)),
		Mark:   ptr(int64(math.MaxInt64)),
		Ratio:  ptr(float32(-math.MaxFloat32)),
		Magic:  []byte{},
		Bigs:   []int64{math.MinInt64, -1, 0, math.MaxInt64},
		Ports:  []uint32{0, math.MaxUint32},
		Totals: []uint64{0, math.MaxUint64},
		Deltas: []int32{math.MinInt32, -1, 0, math.MaxInt32},
		Stamps: []uint64{0, math.MaxUint64},
		Codes:  []int32{math.MinInt32, math.MaxInt32},
		Marks:  []int64{math.MinInt64, math.MaxInt64},
		Ratios: []float32{math.SmallestNonzeroFloat32, float32(math.Inf(-1))},
	}
}

func TestScalarsRoundTrip(t *testing.T) {
	want := extremeScalars()
	b, err := want.Marshal()
	require.NoError(t, err)
	assert.Equal(t, len(b), want.Size())

	got := &Scalars{}
	require.NoError(t, got.Unmarshal(b))
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScalarEncoding(t *testing.T) {
	tests := []struct {
		name string
		msg  *Scalars
		want []byte
	}{
		{"int64 -1", &Scalars{Big: ptr(int64(-1))}, []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{"uint32 max", &Scalars{Port: ptr(uint32(math.MaxUint32))}, []byte{0x10, 0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"uint64 max", &Scalars{Total: ptr(uint64(math.MaxUint64))}, []byte{0x18, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{"sint32 -1", &Scalars{Delta: ptr(int32(-1))}, []byte{0x20, 0x01}},
		{"sint32 min", &Scalars{Delta: ptr(int32(math.MinInt32))}, []byte{0x20, 0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"fixed64 1", &Scalars{Stamp: ptr(uint64(1))}, []byte{0x29, 0x01, 0, 0, 0, 0, 0, 0, 0}},
		{"sfixed32 -2", &Scalars{Code: ptr(int32(-2))}, []byte{0x35, 0xfe, 0xff, 0xff, 0xff}},
		{"sfixed64 -1", &Scalars{Mark: ptr(int64(-1))}, []byte{0x39, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"float 1", &Scalars{Ratio: ptr(float32(1))}, []byte{0x45, 0x00, 0x00, 0x80, 0x3f}},
		{"empty bytes", &Scalars{Magic: []byte{}}, []byte{0x4a, 0x00}},
		{"repeated uint64", &Scalars{Totals: []uint64{1, 2}}, []byte{0x68, 0x01, 0x68, 0x02}},
		{"repeated sfixed32", &Scalars{Codes: []int32{-1}}, []byte{0x85, 0x01, 0xff, 0xff, 0xff, 0xff}},
		{"repeated float", &Scalars{Ratios: []float32{1}}, []byte{0x95, 0x01, 0x00, 0x00, 0x80, 0x3f}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.msg.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
			assert.Equal(t, len(tt.want), tt.msg.Size())

			got := &Scalars{}
			require.NoError(t, got.Unmarshal(b))
			assert.Empty(t, cmp.Diff(tt.msg, got))
		})
	}
}

func TestScalarsBytesDefaultIsCopied(t *testing.T) {
	var none *Scalars
	assert.Equal(t, []byte{1, 2}, none.GetMagic())
	assert.Equal(t, int64(0), none.GetBigs(0))
	assert.Equal(t, 0, none.BigsCount())

	s := &Scalars{}
	assert.False(t, s.HasMagic())
	got := s.GetMagic()
	got[0] = 9
	assert.Equal(t, []byte{1, 2}, Default_Scalars_Magic)
	assert.Equal(t, []byte{1, 2}, s.GetMagic())
}

func TestScalarsSkipUnknownFields(t *testing.T) {
	msg := &Scalars{Port: ptr(uint32(80)), Codes: []int32{-1}}
	known, err := msg.Marshal()
	require.NoError(t, err)

	var unknown []byte
	unknown = protowire.AppendTag(unknown, 99, protowire.VarintType)
	unknown = protowire.AppendVarint(unknown, 300)
	unknown = protowire.AppendTag(unknown, 100, protowire.BytesType)
	unknown = protowire.AppendString(unknown, "junk")
	unknown = protowire.AppendTag(unknown, 101, protowire.StartGroupType)
	unknown = protowire.AppendTag(unknown, 1, protowire.Fixed32Type)
	unknown = protowire.AppendFixed32(unknown, 7)
	unknown = protowire.AppendTag(unknown, 101, protowire.EndGroupType)

	in := append(append([]byte(nil), unknown...), known...)
	got := &Scalars{}
	require.NoError(t, got.Unmarshal(in))
	assert.Empty(t, cmp.Diff(msg, got))
	assert.Equal(t, len(in)-len(unknown), got.Size())

	out, err := got.Marshal()
	require.NoError(t, err)
	assert.Equal(t, known, out)
}

// nestedNodes encodes a Node with depth levels of children below it.
func nestedNodes(depth int) []byte {
	sizes := make([]int, depth+1)
	for i := 1; i <= depth; i++ {
		sizes[i] = 1 + protowire.SizeBytes(sizes[i-1])
	}
	b := make([]byte, 0, sizes[depth])
	for i := depth; i > 0; i-- {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(sizes[i-1]))
	}
	return b
}

func TestNodeRoundTrip(t *testing.T) {
	in := nestedNodes(50)
	n := &Node{}
	require.NoError(t, n.Unmarshal(in))
	assert.Equal(t, len(in), n.Size())

	out, err := n.Marshal()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeDepthLimit(t *testing.T) {
	n := &Node{}
	require.NoError(t, n.Unmarshal(nestedNodes(wire.MaxDepth-1)))
	depth := 0
	for c := n.GetChild(); c != nil; c = c.GetChild() {
		depth++
	}
	assert.Equal(t, wire.MaxDepth-1, depth)

	err := n.Unmarshal(nestedNodes(wire.MaxDepth))
	assert.True(t, errors.Is(err, wire.ErrDepthExceeded), "got %v", err)
}
