package svgnorm

import (
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// lexNumbers reads a whitespace or comma separated list of numbers such
// as a points or viewBox attribute. Glued numbers are split the way
// Tokenize splits them and text that is not a number is dropped.
func lexNumbers(name, s string) []float64 {
	_, items := gl.Lex(name, s)
	var (
		nl       numberList
		consumed int
	)
	for i := range items {
		consumed += len(i.Value)
		switch i.Type {
		case gl.ItemWSP, gl.ItemComma:
			nl.flush()
		default:
			nl.write(i.Value)
		}
	}
	// The lexer halts on characters it has no state for, a leading '.'
	// for one. The rest of the input is read without it.
	if consumed < len(s) {
		nl.write(s[consumed:])
	}
	nl.flush()
	return nl.nums
}

// numberList collects the numbers of a list attribute.
type numberList struct {
	nums []float64
	run  numberRun
}

func (nl *numberList) write(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isSeparator(c):
			nl.flush()
			continue
		case nl.run.splitsAt(c):
			nl.flush()
		}
		nl.run = append(nl.run, c)
	}
}

func (nl *numberList) flush() {
	if len(nl.run) == 0 {
		return
	}
	if v, ok := parseNumber(string(nl.run)); ok {
		nl.nums = append(nl.nums, v)
	}
	nl.run = nl.run[:0]
}

// parseLength reads a length attribute, ignoring a px unit. Anything
// unreadable is zero.
func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return v
}

// pathBuilder writes path data for basic shapes.
type pathBuilder struct {
	sb strings.Builder
}

func (b *pathBuilder) cmd(letter byte, args ...float64) *pathBuilder {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteByte(letter)
	for _, a := range args {
		b.sb.WriteByte(' ')
		b.sb.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	}
	return b
}

func (b *pathBuilder) String() string {
	return b.sb.String()
}
