package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]Position{
			"A1":       {Row: 0, Col: 0},
			"B1":       {Row: 0, Col: 1},
			"A2":       {Row: 1, Col: 0},
			"Z1":       {Row: 0, Col: 25},
			"AA27":     {Row: 26, Col: 26},
			"AZ1":      {Row: 0, Col: 51},
			"BA1":      {Row: 0, Col: 52},
			"XFD16384": {Row: 16383, Col: 16383},
		}

		for text, expected := range testCases {
			actual, err := ParsePosition(text)
			assert.NoError(t, err, text)
			assert.Equal(t, expected, actual, text)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		testCases := []string{
			"",
			"A",
			"1",
			"1A",
			"a1",
			"A0",
			"A01",
			"A-1",
			"A1B",
			"XFE1",     // one column past the limit
			"A16385",   // one row past the limit
			"ZZZZZ1",   // far past the column limit
			"A99999999999999999999", // row overflows int
		}

		for _, text := range testCases {
			_, err := ParsePosition(text)
			assert.ErrorIs(t, err, InvalidPositionError, text)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for _, text := range []string{"A1", "Z99", "AA27", "BZ404", "XFD16384"} {
			pos, err := ParsePosition(text)
			assert.NoError(t, err)
			assert.Equal(t, text, pos.String())
		}
	})
}

func TestPosition_Valid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.Valid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.Valid())

	assert.False(t, Position{Row: -1, Col: 0}.Valid())
	assert.False(t, Position{Row: 0, Col: -1}.Valid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.Valid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.Valid())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "A1", Position{Row: 0, Col: 0}.String())
	assert.Equal(t, "AA27", Position{Row: 26, Col: 26}.String())
	assert.Equal(t, "", Position{Row: -1, Col: 0}.String())
}

func TestPosition_Less(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 5}.Less(Position{Row: 1, Col: 0}))
	assert.True(t, Position{Row: 1, Col: 0}.Less(Position{Row: 1, Col: 1}))
	assert.False(t, Position{Row: 1, Col: 1}.Less(Position{Row: 1, Col: 1}))
	assert.False(t, Position{Row: 2, Col: 0}.Less(Position{Row: 1, Col: 9}))
}
