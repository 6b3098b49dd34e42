package util

// Character code constants
const (
	CharEOF       = 0
	CharTAB       = 9
	CharLF        = 10
	CharVTAB      = 11
	CharFF        = 12
	CharCR        = 13
	CharSPACE     = 32
	CharDQ        = 34
	CharDollar    = 36
	CharSQ        = 39

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharUnderscore = 95

	CharLowerA = 97
	CharLowerZ = 122

	CharBT   = 96
	CharNBSP = 160
)

// IsWhitespace checks if a character code represents whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP
}

// IsDigit checks if a character code represents a digit
func IsDigit(code int) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiLetter checks if a character code represents an ASCII letter
func IsAsciiLetter(code int) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsNewLine checks if a character code represents a newline
func IsNewLine(code int) bool {
	return code == CharLF || code == CharCR
}

// IsQuote checks if a character code represents a quote
func IsQuote(code int) bool {
	return code == CharDQ || code == CharSQ || code == CharBT
}

// IsIdentifierStart checks if a character code can start an identifier
func IsIdentifierStart(code int) bool {
	return IsAsciiLetter(code) || code == CharDollar || code == CharUnderscore
}

// IsIdentifierPart checks if a character code can continue an identifier
func IsIdentifierPart(code int) bool {
	return IsIdentifierStart(code) || IsDigit(code)
}

// IsSimpleIdentifier checks if text is a single legal identifier
func IsSimpleIdentifier(text string) bool {
	if len(text) == 0 {
		return false
	}
	if !IsIdentifierStart(int(text[0])) {
		return false
	}
	for i := 1; i < len(text); i++ {
		if !IsIdentifierPart(int(text[i])) {
			return false
		}
	}
	return true
}
