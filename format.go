package steroidslog

// appendMessage renders format into b consuming record arguments in order.
// The grammar is minimal: literal bytes pass through, {} takes the next
// argument, {{ and }} are escaped braces. A placeholder with no argument
// left renders literally as {}; that is the documented fallback for short
// records and for ids whose text was never registered. A lone brace is a
// literal byte.
func appendMessage(b []byte, format string, r *Record) []byte {
	arg := 0

	for i := 0; i < len(format); {
		c := format[i]

		if (c == '{' || c == '}') && i+1 < len(format) && format[i+1] == c {
			b = append(b, c)
			i += 2

			continue
		}

		if c == '{' && i+1 < len(format) && format[i+1] == '}' {
			if arg < int(r.N) {
				b = r.Args[arg].AppendTo(b)
				arg++
			} else {
				b = append(b, '{', '}')
			}

			i += 2

			continue
		}

		b = append(b, c)
		i++
	}

	return b
}

// truncate caps the rendered message. Multi-byte runes can be cut in half;
// the cap is a byte budget, not a display guarantee.
func truncate(b []byte, start, max int) []byte {
	if len(b)-start > max {
		b = b[:start+max]
	}

	return b
}
