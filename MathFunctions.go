package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm/runtime"
)

// Aggregate functions available in formulas. Arguments arrive as the
// already-resolved numeric values of cells or literals.

var calculateMax = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("MAX expects at least one argument")
	}
	var maxValue any
	for _, arg := range args {
		if maxValue == nil || runtime.Less(maxValue, arg) {
			maxValue = arg
		}
	}
	return maxValue, nil
}

var calculateMin = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("MIN expects at least one argument")
	}
	var minValue any
	for _, arg := range args {
		if minValue == nil || runtime.More(minValue, arg) {
			minValue = arg
		}
	}
	return minValue, nil
}

var calculateSum = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("SUM expects at least one argument")
	}
	sum := args[0]
	for i := 1; i < len(args); i++ {
		sum = runtime.Add(sum, args[i])
	}
	return sum, nil
}

var calculateAvg = func(args ...any) (any, error) {
	sum, err := calculateSum(args...)
	if err != nil {
		return nil, fmt.Errorf("AVG expects at least one argument")
	}
	return runtime.Divide(sum, len(args)), nil
}

var spreadsheetFunctions = []expr.Option{
	expr.Function("MIN", calculateMin),
	expr.Function("MAX", calculateMax),
	expr.Function("SUM", calculateSum),
	expr.Function("AVG", calculateAvg),
}

var spreadsheetFunctionNames = map[string]struct{}{
	"MIN": {},
	"MAX": {},
	"SUM": {},
	"AVG": {},
}
