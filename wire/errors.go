package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Errors returned by generated Decode and AppendTo methods. They are always
// wrapped with context, compare them with errors.Is.
var (
	ErrRequiredFieldsMissing = errors.New("required fields are missing")
	ErrWireType              = errors.New("wire type does not match field")
	ErrNestedLength          = errors.New("nested message length mismatch")
	ErrUnexpectedEndGroup    = errors.New("unexpected end group")
	ErrUnterminatedGroup     = errors.New("group is not terminated")
	ErrTruncated             = errors.New("unexpected end of input")
	ErrDepthExceeded         = errors.New("message nesting too deep")
)

// RequiredFieldsError reports that message has unset required fields.
func RequiredFieldsError(message string) error {
	return errors.Wrap(ErrRequiredFieldsMissing, message)
}

// WireTypeError reports a field whose wire type differs from the declared one.
func WireTypeError(num protowire.Number, got, want protowire.Type) error {
	return errors.Wrapf(ErrWireType, "field %d: got wire type %d, want %d", num, got, want)
}

// NestedLengthError reports a length-delimited message whose fields did not
// consume exactly the declared length. left is the unconsumed remainder and
// is negative when the fields ran past the declared end.
func NestedLengthError(num protowire.Number, left int) error {
	return errors.Wrapf(ErrNestedLength, "field %d: %d bytes left", num, left)
}

// EndGroupError reports an end-group tag that closes no open group.
func EndGroupError(num protowire.Number) error {
	return errors.Wrapf(ErrUnexpectedEndGroup, "field %d", num)
}

// UnterminatedGroupError reports a group whose end tag was never read.
func UnterminatedGroupError(num protowire.Number) error {
	return errors.Wrapf(ErrUnterminatedGroup, "field %d", num)
}

func parseError(n int) error {
	err := protowire.ParseError(n)
	if n == -1 { // protowire errCodeTruncated
		return errors.Wrap(ErrTruncated, err.Error())
	}
	return errors.WithStack(err)
}
