// Package formula compiles and evaluates the y = f(x) expressions players
// type to steer their rockets.
//
// Expressions are compiled once with expr-lang/expr and then evaluated for
// every rocket step. The environment exposes the variable x, the constants
// pi and e, and the usual single-argument math functions.
package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	// ErrEmpty is returned when the player submits a blank formula.
	ErrEmpty = errors.New("formula: empty formula")

	// ErrInvalid is wrapped by every compile or evaluation failure.
	ErrInvalid = errors.New("formula: invalid formula")
)

// Formula is a compiled expression of a single variable x.
type Formula struct {
	source  string
	program *vm.Program
}

// unary adapts a float64 math function so expr can call it with any numeric
// argument (literals like sin(2) arrive as int).
func unary(f func(float64) float64) func(any) float64 {
	return func(v any) float64 {
		return f(toFloat(v))
	}
}

// newEnv returns the evaluation environment for a given x.
func newEnv(x float64) map[string]any {
	return map[string]any{
		"x":     x,
		"pi":    math.Pi,
		"e":     math.E,
		"sin":   unary(math.Sin),
		"cos":   unary(math.Cos),
		"tan":   unary(math.Tan),
		"asin":  unary(math.Asin),
		"acos":  unary(math.Acos),
		"atan":  unary(math.Atan),
		"sqrt":  unary(math.Sqrt),
		"ln":    unary(math.Log),
		"log":   unary(math.Log),
		"log10": unary(math.Log10),
		"exp":   unary(math.Exp),
	}
}

// Compile parses src into a Formula.
// Blank input returns ErrEmpty; syntax errors and unknown names wrap ErrInvalid.
func Compile(src string) (*Formula, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}

	normalized := Normalize(src)
	program, err := expr.Compile(normalized, expr.Env(newEnv(0)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	f := &Formula{source: normalized, program: program}

	// Catch expressions that compile but never yield a number, e.g. "x > 1".
	if _, err := f.Eval(0); err != nil {
		return nil, err
	}
	return f, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// built-in demo formulas.
func MustCompile(src string) *Formula {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// Eval returns f(x). NaN and ±Inf are returned as values, not errors: the
// caller decides how to treat points where the function is undefined.
func (f *Formula) Eval(x float64) (float64, error) {
	out, err := expr.Run(f.program, newEnv(x))
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	default:
		return math.NaN(), fmt.Errorf("%w: result is %T, not a number", ErrInvalid, out)
	}
}

// String returns the normalized source of the formula.
func (f *Formula) String() string {
	return f.source
}

// toFloat converts numeric values produced by expr to float64.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return math.NaN()
	}
}
