// Package wire is the runtime support imported by code that pb2gen generates.
// Varint, zigzag and fixed-width arithmetic come from protowire; this package
// adds a consuming byte source that reports how many bytes every read used, so
// that generated decoders can keep a byte budget per nesting level.
package wire

import (
	"io"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxDepth is how many messages and groups may be open at once while
// decoding.
const MaxDepth = 10000

// Reader consumes an in-memory wire encoding front to back.
type Reader struct {
	buf   []byte
	off   int
	depth int
}

// NewReader returns a Reader over b. The Reader does not copy b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Enter records that a message or group starts decoding. It fails once
// MaxDepth messages are already open.
func (r *Reader) Enter() error {
	if r.depth >= MaxDepth {
		return errors.Wrapf(ErrDepthExceeded, "more than %d levels", MaxDepth)
	}
	r.depth++
	return nil
}

// Leave undoes a successful Enter.
func (r *Reader) Leave() {
	r.depth--
}

func (r *Reader) rest() []byte {
	return r.buf[r.off:]
}

// ReadTag reads a field tag. It returns io.EOF when no bytes remain.
func (r *Reader) ReadTag() (protowire.Number, protowire.Type, int, error) {
	if r.Len() == 0 {
		return 0, 0, 0, io.EOF
	}
	num, typ, n := protowire.ConsumeTag(r.rest())
	if n < 0 {
		return 0, 0, 0, parseError(n)
	}
	r.off += n
	return num, typ, n, nil
}

// ReadVarint reads a base-128 varint.
func (r *Reader) ReadVarint() (uint64, int, error) {
	v, n := protowire.ConsumeVarint(r.rest())
	if n < 0 {
		return 0, 0, parseError(n)
	}
	r.off += n
	return v, n, nil
}

// ReadFixed32 reads four little-endian bytes.
func (r *Reader) ReadFixed32() (uint32, int, error) {
	v, n := protowire.ConsumeFixed32(r.rest())
	if n < 0 {
		return 0, 0, parseError(n)
	}
	r.off += n
	return v, n, nil
}

// ReadFixed64 reads eight little-endian bytes.
func (r *Reader) ReadFixed64() (uint64, int, error) {
	v, n := protowire.ConsumeFixed64(r.rest())
	if n < 0 {
		return 0, 0, parseError(n)
	}
	r.off += n
	return v, n, nil
}

// ReadLength reads the length prefix of a length-delimited value and checks
// that the value fits in the remaining input. Only the prefix is consumed.
func (r *Reader) ReadLength() (int, int, error) {
	v, n, err := r.ReadVarint()
	if err != nil {
		return 0, 0, err
	}
	if v > uint64(r.Len()) {
		r.off -= n
		return 0, 0, errors.Wrapf(ErrTruncated, "length %d exceeds %d remaining bytes", v, r.Len())
	}
	return int(v), n, nil
}

// ReadBytes reads a length-delimited value and returns a copy of it. A zero
// length value is returned as a non-nil empty slice.
func (r *Reader) ReadBytes() ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(r.rest())
	if n < 0 {
		return nil, 0, parseError(n)
	}
	r.off += n
	return append(make([]byte, 0, len(v)), v...), n, nil
}

// ReadString reads a length-delimited value as a string.
func (r *Reader) ReadString() (string, int, error) {
	v, n := protowire.ConsumeBytes(r.rest())
	if n < 0 {
		return "", 0, parseError(n)
	}
	r.off += n
	return string(v), n, nil
}

// SkipField discards the value of a field whose tag has already been read.
// Groups are skipped up to and including their end tag.
func (r *Reader) SkipField(num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, r.rest())
	if n < 0 {
		return 0, parseError(n)
	}
	r.off += n
	return n, nil
}

// ReadRawField is SkipField that also returns a copy of the encoded value.
func (r *Reader) ReadRawField(num protowire.Number, typ protowire.Type) ([]byte, int, error) {
	start := r.off
	n, err := r.SkipField(num, typ)
	if err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), r.buf[start:start+n]...), n, nil
}
