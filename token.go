package svgnorm

import (
	"strings"
	"unicode"
)

// commandLetters is the path data command alphabet.
const commandLetters = "MmLlHhVvCcSsQqTtAaZz"

// Token is one command letter of path data together with every number
// that followed it. Params may hold several parameter groups when the
// command was implicitly repeated.
type Token struct {
	Command byte
	Params  []float64
}

// IsRelative reports whether the token's coordinates are relative to the
// current point.
func (t Token) IsRelative() bool {
	return unicode.IsLower(rune(t.Command))
}

// Arity returns the number of parameters in one group of the command.
func Arity(command byte) int {
	switch command {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	}
	return 0
}

// groups splits the token's parameters into complete groups of the
// command's arity. An incomplete trailing group is dropped.
func (t Token) groups() [][]float64 {
	n := Arity(t.Command)
	if n == 0 {
		return nil
	}
	var gs [][]float64
	for i := 0; i+n <= len(t.Params); i += n {
		gs = append(gs, t.Params[i:i+n])
	}
	return gs
}

func isCommandLetter(c byte) bool {
	return strings.IndexByte(commandLetters, c) >= 0
}
