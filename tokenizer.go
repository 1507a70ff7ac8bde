package svgnorm

import (
	"bytes"
	"math"
	"strconv"
)

// pathTokenizer holds the scan state of Tokenize: the number being read
// and the token receiving finished numbers.
type pathTokenizer struct {
	tokens []Token
	active int
	num    numberRun
}

// Tokenize splits path data into command tokens. It never fails: text
// that does not form a number is dropped, as are numbers appearing
// before the first command letter. Glued numbers such as "10-5" and
// "1.5.25" are split the way SVG renderers split them.
func Tokenize(d string) []Token {
	tz := pathTokenizer{active: -1}
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case isSeparator(c):
			tz.flush()
		case isCommandLetter(c):
			tz.flush()
			tz.tokens = append(tz.tokens, Token{Command: c})
			tz.active = len(tz.tokens) - 1
		case tz.num.splitsAt(c):
			tz.flush()
			tz.num = append(tz.num, c)
		default:
			tz.num = append(tz.num, c)
		}
	}
	tz.flush()
	return tz.tokens
}

func (tz *pathTokenizer) flush() {
	if len(tz.num) == 0 {
		return
	}
	s := string(tz.num)
	tz.num = tz.num[:0]
	if tz.active < 0 {
		return
	}
	v, ok := parseNumber(s)
	if !ok {
		return
	}
	tz.tokens[tz.active].Params = append(tz.tokens[tz.active].Params, v)
}

// numberRun holds the characters of the number being read.
type numberRun []byte

// splitsAt reports whether c starts a new number instead of extending
// the run: a minus sign not following an exponent marker, or a second
// decimal point.
func (r numberRun) splitsAt(c byte) bool {
	switch c {
	case '-':
		return len(r) > 0 && r[len(r)-1] != 'e' && r[len(r)-1] != 'E'
	case '.':
		return bytes.IndexByte(r, '.') >= 0
	}
	return false
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', ',', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// parseNumber accepts plain decimal notation with an optional sign and
// exponent. strconv alone would also take "inf" or hex floats.
func parseNumber(s string) (float64, bool) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.', c == '-', c == '+', c == 'e', c == 'E':
		default:
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
