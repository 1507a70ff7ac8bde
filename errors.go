package svgnorm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNothingToDraw is returned by Parse when path data is not blank but
// contains no drawable command. Callers usually treat it as a data
// quality warning about the source of the path.
var ErrNothingToDraw = errors.New("path data has nothing to draw")

// Parse tokenizes and normalizes path data. Blank input yields no
// commands and no error.
func Parse(d string) ([]Command, error) {
	cmds := Normalize(Tokenize(d))
	if len(cmds) == 0 && strings.TrimSpace(d) != "" {
		return nil, fmt.Errorf("parsing %q: %w", excerpt(d), ErrNothingToDraw)
	}
	return cmds, nil
}
