package jiebago

// isCJK reports membership in the CJK unified ideograph base block.
func isCJK(c rune) bool {
	return c >= 0x4E00 && c <= 0x9FA5
}

func isASCIILetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isConnector(c rune) bool {
	switch c {
	case '+', '#', '&', '.', '_', '-':
		return true
	}
	return false
}

// isCC reports whether c may appear inside a segmentable run: CJK
// ideographs, ASCII letters, digits, and the connector set.
func isCC(c rune) bool {
	return isCJK(c) || isASCIILetter(c) || isDigit(c) || isConnector(c)
}

// regularize folds c to its segmentation form: ideographic space to
// ASCII space, full-width printable to half-width, upper- to lower-case.
// regularize is idempotent.
func regularize(c rune) rune {
	if c == 0x3000 {
		return 0x20
	}
	if c > 0xFF00 && c < 0xFF5F {
		c -= 0xFEE0
	}
	if c >= 'A' && c <= 'Z' {
		return c + 0x20
	}
	return c
}
