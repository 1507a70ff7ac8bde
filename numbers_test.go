package svgnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type NumbersTest struct {
	Description string
	List        string
	Numbers     []float64
}

var numbersTests = []NumbersTest{
	{"empty", "", nil},
	{"separated", "0 0 24 24", []float64{0, 0, 24, 24}},
	{"commas", "1,-2 3,4", []float64{1, -2, 3, 4}},
	{"glued minus", "1,-2 3-4", []float64{1, -2, 3, -4}},
	{"second dot", "0.5.5 1", []float64{0.5, 0.5, 1}},
	{"leading dots", ".5 .25", []float64{0.5, 0.25}},
	{"exponent sign kept", "1e-5,-2", []float64{1e-5, -2}},
	{"upper case exponent", "1E2 3", []float64{100, 3}},
	{"words dropped", "1 x 2", []float64{1, 2}},
	{"carriage returns", "\r1\r2", []float64{1, 2}},
}

func TestLexNumbers(t *testing.T) {
	for _, test := range numbersTests {
		require.Equal(t, test.Numbers, lexNumbers(test.Description, test.List), test.Description)
	}
}

func TestParseLength(t *testing.T) {
	require.Equal(t, 24.0, parseLength("24px"))
	require.Equal(t, 12.5, parseLength(" 12.5 "))
	require.Equal(t, 0.0, parseLength("auto"))
}
