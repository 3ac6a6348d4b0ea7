package application

// stripJSONComments removes // and /* */ comments plus trailing commas
// from JSON-with-comments input, outside of string literals. It is a
// best-effort convenience for relaxed configs, not a JSONC parser:
// whatever it cannot repair is left for json.Valid to reject.
func stripJSONComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i++ // skip the closing '/'
		case c == ',' && closesValue(data[i+1:]):
			// trailing comma before } or ]
		default:
			out = append(out, c)
		}
	}
	return out
}

// closesValue reports whether the next non-whitespace byte closes an
// object or array, which would make a preceding comma trailing.
func closesValue(rest []byte) bool {
	for _, c := range rest {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}
