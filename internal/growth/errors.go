package growth

import "errors"

// Domain errors for expression lookup and evaluation.
var (
	// ErrUnsupportedExpression indicates an expression outside the catalog.
	ErrUnsupportedExpression = errors.New("growth: unsupported expression")

	// ErrOverflow indicates a result too large for a float64.
	ErrOverflow = errors.New("growth: numeric overflow")

	// ErrDomain indicates an argument outside the function's domain.
	ErrDomain = errors.New("growth: argument outside function domain")
)

// UnsupportedExpressionError carries the expression the caller asked for.
type UnsupportedExpressionError struct {
	Expression string
}

func (e *UnsupportedExpressionError) Error() string {
	return "Unsupported expression: " + e.Expression
}

func (e *UnsupportedExpressionError) Unwrap() error {
	return ErrUnsupportedExpression
}

// DefinitionError reports a malformed catalog entry passed to [New].
type DefinitionError struct {
	Name   string
	Reason string
}

func (e *DefinitionError) Error() string {
	return "growth: bad definition " + e.Name + ": " + e.Reason
}
