package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"sheetEngine/contracts"
)

// ExpressionFormulaParser turns the text after '=' into executable formulas
// backed by the expr compiler. Cell references are plain identifiers in A1
// form; anything else that is not a spreadsheet function fails the parse.
type ExpressionFormulaParser struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

func NewExpressionFormulaParser() *ExpressionFormulaParser {
	return &ExpressionFormulaParser{
		compilerOptions: append([]expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
		}, spreadsheetFunctions...),

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

// functionCallRegex matches a spreadsheet function name in any letter case
// followed by its opening parenthesis.
var functionCallRegex = regexp.MustCompile(`(?i)\b(?:MIN|MAX|SUM|AVG)\s*\(`)

func (p *ExpressionFormulaParser) Parse(expression string) (contracts.Formula, error) {
	// function names are upper-cased before parsing: expr's own parser
	// reserves lowercase names such as sum and max for its builtins
	tree, err := parser.Parse(functionCallRegex.ReplaceAllStringFunc(expression, strings.ToUpper))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", expression, contracts.FormulaParseError)
	}

	visitor := &CellRefsVisitor{}
	ast.Walk(&tree.Node, visitor)
	if visitor.invalidIdentifier != "" {
		return nil, fmt.Errorf("%q: unknown identifier %q: %w", expression, visitor.invalidIdentifier, contracts.FormulaParseError)
	}

	// the canonical text is the printed form of the normalized AST; it is
	// the fixed point the sheet compares against on re-writes
	canonical := tree.Node.String()

	program, err := expr.Compile(canonical, p.compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", expression, contracts.FormulaParseError)
	}

	return &ExpressionFormula{
		parser:     p,
		program:    program,
		expression: canonical,
		refs:       sortedUniquePositions(visitor.refs),
		outOfRange: visitor.outOfRange,
	}, nil
}

// https://regex101.com/r/hV6wM2/1
var positionShapedRegex = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// CellRefsVisitor normalizes identifiers to canonical uppercase A1 form and
// collects the positions a formula references. Identifiers shaped like a
// cell reference but outside the grid bounds keep the formula parsable; it
// then evaluates to #REF!.
type CellRefsVisitor struct {
	refs              []contracts.Position
	outOfRange        bool
	invalidIdentifier string
}

func (v *CellRefsVisitor) Visit(node *ast.Node) {
	identifier, ok := (*node).(*ast.IdentifierNode)
	if !ok {
		return
	}

	name := strings.ToUpper(identifier.Value)
	if _, ok = spreadsheetFunctionNames[name]; ok {
		ast.Patch(node, &ast.IdentifierNode{Value: name})
		return
	}

	pos, err := contracts.ParsePosition(name)
	if err != nil {
		if positionShapedRegex.MatchString(name) {
			v.outOfRange = true
			ast.Patch(node, &ast.IdentifierNode{Value: name})
			return
		}
		v.invalidIdentifier = identifier.Value
		return
	}

	ast.Patch(node, &ast.IdentifierNode{Value: name})
	v.refs = append(v.refs, pos)
}

// ExpressionFormula is one compiled formula. It is immutable after Parse;
// the owning cell carries the value cache.
type ExpressionFormula struct {
	parser     *ExpressionFormulaParser
	program    *vm.Program
	expression string
	refs       []contracts.Position
	outOfRange bool
}

func (f *ExpressionFormula) Expression() string {
	return f.expression
}

func (f *ExpressionFormula) ReferencedCells() []contracts.Position {
	return f.refs
}

func (f *ExpressionFormula) Evaluate(resolve contracts.CellValueResolver) contracts.Value {
	if f.outOfRange {
		return contracts.FormulaError{Category: contracts.FormulaErrorRef}
	}

	env := make(map[string]any, len(f.refs))
	for _, pos := range f.refs {
		value, err := resolve(pos)
		if err != nil {
			var formulaErr contracts.FormulaError
			if errors.As(err, &formulaErr) {
				return formulaErr
			}
			return contracts.FormulaError{Category: contracts.FormulaErrorValue}
		}
		env[pos.String()] = value
	}

	machine := f.parser.vmPool.Get().(*vm.VM)
	output, err := machine.Run(f.program, env)
	f.parser.vmPool.Put(machine)
	if err != nil {
		return contracts.FormulaError{Category: contracts.FormulaErrorArithmetic}
	}

	switch typed := output.(type) {
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return contracts.FormulaError{Category: contracts.FormulaErrorArithmetic}
		}
		return typed
	}
	return contracts.FormulaError{Category: contracts.FormulaErrorValue}
}
