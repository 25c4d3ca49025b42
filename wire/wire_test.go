package wire

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestReaderCountsConsumedBytes(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 300)
	b = protowire.AppendTag(b, 2, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, "hi")

	r := NewReader(b)
	num, typ, n, err := r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(1), num)
	assert.Equal(t, protowire.VarintType, typ)
	assert.Equal(t, 1, n)

	v, n, err := r.ReadVarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 2, n)

	_, _, _, err = r.ReadTag()
	require.NoError(t, err)
	f, n, err := r.ReadFixed32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), f)
	assert.Equal(t, 4, n)

	_, _, _, err = r.ReadTag()
	require.NoError(t, err)
	s, n, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.Equal(t, 3, n)

	assert.Equal(t, 0, r.Len())
	_, _, _, err = r.ReadTag()
	assert.Equal(t, io.EOF, err)
}

func TestReadBytesEmptyIsNotNil(t *testing.T) {
	r := NewReader(protowire.AppendBytes(nil, nil))
	v, n, err := r.ReadBytes()
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Len(t, v, 0)
	assert.Equal(t, 1, n)
}

func TestReadLengthRejectsOverrun(t *testing.T) {
	r := NewReader([]byte{0x05, 0x01, 0x02})
	_, _, err := r.ReadLength()
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestTruncatedVarint(t *testing.T) {
	r := NewReader([]byte{0x80})
	_, _, err := r.ReadVarint()
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestUnknownFieldsRoundTrip(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 150)
	b = protowire.AppendTag(b, 10, protowire.StartGroupType)
	b = protowire.AppendTag(b, 1, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 1)
	b = protowire.AppendTag(b, 10, protowire.EndGroupType)

	r := NewReader(b)
	var u UnknownFields
	for r.Len() > 0 {
		num, typ, _, err := r.ReadTag()
		require.NoError(t, err)
		raw, _, err := r.ReadRawField(num, typ)
		require.NoError(t, err)
		u = u.Append(num, typ, raw)
	}
	require.Len(t, u, 2)
	assert.Equal(t, b, u.AppendTo(nil))
	assert.Equal(t, len(b), u.Size())
	assert.Len(t, u.Get(9, protowire.VarintType), 1)
	assert.Empty(t, u.Get(9, protowire.Fixed32Type))
}

func TestErrorsWrapSentinels(t *testing.T) {
	assert.True(t, errors.Is(RequiredFieldsError("Point"), ErrRequiredFieldsMissing))
	assert.True(t, errors.Is(WireTypeError(1, protowire.BytesType, protowire.VarintType), ErrWireType))
	assert.True(t, errors.Is(NestedLengthError(1, -2), ErrNestedLength))
	assert.True(t, errors.Is(EndGroupError(3), ErrUnexpectedEndGroup))
	assert.True(t, errors.Is(UnterminatedGroupError(3), ErrUnterminatedGroup))
}

func TestFieldsString(t *testing.T) {
	var f Fields
	f.Add("name", "a b")
	f.Add("n", 3)
	f.Add("raw", []byte("x"))
	assert.Equal(t, `{name:"a b" n:3 raw:"x"}`, f.String())
}

func TestReaderDepth(t *testing.T) {
	r := NewReader(nil)
	for i := 0; i < MaxDepth; i++ {
		require.NoError(t, r.Enter())
	}
	err := r.Enter()
	assert.True(t, errors.Is(err, ErrDepthExceeded), "got %v", err)

	r.Leave()
	assert.NoError(t, r.Enter())
}
