package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields builds the debug rendering returned by generated String methods.
type Fields struct {
	b strings.Builder
}

// Add appends one name/value pair.
func (f *Fields) Add(name string, v any) {
	if f.b.Len() > 0 {
		f.b.WriteByte(' ')
	}
	f.b.WriteString(name)
	f.b.WriteByte(':')
	switch v := v.(type) {
	case string:
		f.b.WriteString(strconv.Quote(v))
	case []byte:
		fmt.Fprintf(&f.b, "%q", v)
	default:
		fmt.Fprintf(&f.b, "%v", v)
	}
}

func (f *Fields) String() string {
	return "{" + f.b.String() + "}"
}
