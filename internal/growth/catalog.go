package growth

import (
	"math"
	"strings"
	"unicode"
)

// Class groups catalog entries for display.
type Class string

const (
	ClassBasic       Class = "Basic"
	ClassLogarithmic Class = "Logarithmic variations"
	ClassLinear      Class = "Linear variations"
	ClassPolynomial  Class = "Polynomial variations"
	ClassExponential Class = "Exponential and beyond"
)

// Function is one named growth rate.
type Function struct {
	Name  string
	Key   string
	Class Class
	Eval  Evaluator
}

// definitions is the single source for both the ordered catalog and the
// lookup table, slowest growth first.
var definitions = []Function{
	{"1", "1", ClassBasic, checked(func(n float64) float64 { return 1 })},
	{"log(log(n))", "loglogn", ClassLogarithmic, checked(logLog)},
	{"log(n)", "logn", ClassBasic, checked(math.Log)},
	{"(log(n))^2", "(logn)^2", ClassLogarithmic, checked(logSquared)},
	{"sqrt(log(n))", "sqrt(logn)", ClassLogarithmic, checked(func(n float64) float64 { return math.Sqrt(math.Log(n)) })},
	{"sqrt(n)", "sqrtn", ClassBasic, checked(math.Sqrt)},
	{"n^(1/3)", "n^(1/3)", ClassPolynomial, checked(func(n float64) float64 { return math.Pow(n, 1.0/3.0) })},
	{"n", "n", ClassBasic, checked(func(n float64) float64 { return n })},
	{"n*log(log(n))", "nloglogn", ClassLinear, checked(func(n float64) float64 { return n * logLog(n) })},
	{"n*log(n)", "nlogn", ClassLinear, checked(func(n float64) float64 { return n * math.Log(n) })},
	{"n*log(n)^2", "nlogn^2", ClassLinear, checked(func(n float64) float64 { return n * logSquared(n) })},
	{"n^(1.5)", "n^1.5", ClassPolynomial, checked(func(n float64) float64 { return math.Pow(n, 1.5) })},
	{"n^2", "n^2", ClassBasic, checked(func(n float64) float64 { return n * n })},
	{"n^2*log(n)", "n^2logn", ClassPolynomial, checked(func(n float64) float64 { return n * n * math.Log(n) })},
	{"n^3", "n^3", ClassBasic, checked(func(n float64) float64 { return n * n * n })},
	{"2^(sqrt(n))", "2^sqrtn", ClassExponential, checked(func(n float64) float64 { return math.Pow(2, math.Sqrt(n)) })},
	{"2^n", "2^n", ClassExponential, checked(func(n float64) float64 { return math.Pow(2, n) })},
	{"3^n", "3^n", ClassExponential, checked(func(n float64) float64 { return math.Pow(3, n) })},
	{"n^n", "n^n", ClassExponential, checked(func(n float64) float64 { return math.Pow(n, n) })},
	{"n!", "n!", ClassExponential, Factorial},
}

var classOrder = []Class{ClassBasic, ClassLogarithmic, ClassLinear, ClassPolynomial, ClassExponential}

// Catalog is an immutable ordered set of growth functions.
type Catalog struct {
	entries []Function
	byKey   map[string]int
}

var defaultCatalog = mustNew(definitions)

// Default returns the shared twenty-entry catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from fns in the given order. Keys are normalized and
// must be unique.
func New(fns []Function) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Function, len(fns)),
		byKey:   make(map[string]int, len(fns)),
	}
	for i, fn := range fns {
		fn.Key = Normalize(fn.Key)
		if fn.Key == "" || fn.Eval == nil {
			return nil, &DefinitionError{Name: fn.Name, Reason: "empty key or evaluator"}
		}
		if j, dup := c.byKey[fn.Key]; dup {
			return nil, &DefinitionError{Name: fn.Name, Reason: "key " + fn.Key + " already used by " + fns[j].Name}
		}
		c.entries[i] = fn
		c.byKey[fn.Key] = i
	}
	return c, nil
}

func mustNew(fns []Function) *Catalog {
	c, err := New(fns)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize lowercases expr and strips all whitespace.
func Normalize(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, expr)
}

// Lookup returns the entry whose key matches the normalized expression.
func (c *Catalog) Lookup(expr string) (Function, error) {
	i, ok := c.byKey[Normalize(expr)]
	if !ok {
		return Function{}, &UnsupportedExpressionError{Expression: expr}
	}
	return c.entries[i], nil
}

// Resolve returns the evaluator for expr.
func (c *Catalog) Resolve(expr string) (Evaluator, error) {
	fn, err := c.Lookup(expr)
	if err != nil {
		return nil, err
	}
	return fn.Eval, nil
}

// Entries returns the catalog in growth order. The slice is a copy.
func (c *Catalog) Entries() []Function {
	out := make([]Function, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keys returns the recognized normalized expressions in growth order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, fn := range c.entries {
		keys[i] = fn.Key
	}
	return keys
}

// Classes returns the entries grouped by class. Groups keep growth order.
func (c *Catalog) Classes() map[Class][]Function {
	groups := make(map[Class][]Function)
	for _, fn := range c.entries {
		groups[fn.Class] = append(groups[fn.Class], fn)
	}
	return groups
}

// ClassOrder lists classes in menu order.
func ClassOrder() []Class {
	out := make([]Class, len(classOrder))
	copy(out, classOrder)
	return out
}
