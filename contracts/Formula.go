package contracts

import "errors"

var FormulaParseError = errors.New("formula parse error")

var CircularDependencyError = errors.New("circular dependency detected")

// CellValueResolver produces the numeric value of a referenced cell. A
// returned error is always a FormulaError.
type CellValueResolver func(Position) (float64, error)

type Formula interface {
	// Evaluate returns float64 or FormulaError.
	Evaluate(resolve CellValueResolver) Value

	// Expression is the canonical expression text, without the leading '='.
	Expression() string

	// ReferencedCells is deduplicated and ordered by Position.
	ReferencedCells() []Position
}

type FormulaParser interface {
	// Parse compiles the expression part of a formula cell (the text after
	// '='). Fails with FormulaParseError on malformed input.
	Parse(expression string) (Formula, error)
}
