package njson

// ScannerHooks contains block-scan hooks used by the normalizer and the
// string scanner. Implementations may substitute vectorized scans.
type ScannerHooks interface {
	SkipWhitespace(src string, pos int) int
	FindQuoteOrEscape(src string, pos int) (quotePos int, escapePos int)
}

type scalarScannerHooks struct{}

func (s scalarScannerHooks) SkipWhitespace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\n', '\r', '\t':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func (s scalarScannerHooks) FindQuoteOrEscape(src string, pos int) (int, int) {
	for i := pos; i < len(src); i++ {
		if src[i] == '"' {
			return i, -1
		}
		if src[i] == '\\' {
			return -1, i
		}
	}
	return -1, -1
}
