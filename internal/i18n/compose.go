package i18n

import (
	"fmt"
	"strings"
)

// Compose substitutes positional references %1 through %9 in format with
// the corresponding arguments. "%%" yields a literal percent sign; a
// reference without a matching argument is left as written.
func Compose(format string, args ...any) string {
	if !strings.Contains(format, "%") {
		return format
	}

	var b strings.Builder
	b.Grow(len(format) + 16)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}

		next := format[i+1]
		switch {
		case next == '%':
			b.WriteByte('%')
			i++
		case next >= '1' && next <= '9':
			index := int(next - '1')
			if index < len(args) {
				b.WriteString(stringify(args[index]))
			} else {
				b.WriteByte('%')
				b.WriteByte(next)
			}
			i++
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func stringify(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
