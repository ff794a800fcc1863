package strutil

// LStripWS strips leading whitespace: SP, HTAB, CR, LF, VT and NUL.
func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t', '\r', '\n', '\v', 0:
		default:
			return str[i:]
		}
	}

	return ""
}

// CmpFold compares two ASCII strings case-insensitively. Only letters are folded,
// so e.g. '^' and '~' are never considered equal.
func CmpFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}
