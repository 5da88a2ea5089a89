package contracts

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MaxRows and MaxCols bound the addressable grid.
const (
	MaxRows = 16384
	MaxCols = 16384
)

var InvalidPositionError = errors.New("invalid position")

// Position is a zero-based grid coordinate. Cells refer to each other by
// Position only and resolve through the Sheet, never by pointer.
type Position struct {
	Row int
	Col int
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < MaxRows && p.Col < MaxCols
}

func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// String renders the A1 form: base-26 column letters (A=0) followed by the
// 1-based row. Invalid positions render empty.
func (p Position) String() string {
	if !p.Valid() {
		return ""
	}

	letters := make([]byte, 0, 3)
	for n := p.Col + 1; n > 0; n = (n - 1) / 26 {
		letters = append(letters, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters) + strconv.Itoa(p.Row+1)
}

// https://regex101.com/r/cWg3mL/1
var positionRegex = regexp.MustCompile(`^([A-Z]+)([1-9]\d*)$`)

// ParsePosition parses the A1 textual form. Letters must be uppercase and
// the row part must not carry leading zeros.
func ParsePosition(text string) (Position, error) {
	match := positionRegex.FindStringSubmatch(text)
	if match == nil {
		return Position{}, fmt.Errorf("%q: %w", text, InvalidPositionError)
	}

	col := 0
	for _, letter := range match[1] {
		col = col*26 + int(letter-'A') + 1
		if col > MaxCols {
			return Position{}, fmt.Errorf("%q: %w", text, InvalidPositionError)
		}
	}

	row, err := strconv.Atoi(match[2])
	if err != nil || row > MaxRows {
		return Position{}, fmt.Errorf("%q: %w", text, InvalidPositionError)
	}

	return Position{Row: row - 1, Col: col - 1}, nil
}
