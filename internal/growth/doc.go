// Package growth holds the catalog of named asymptotic growth-rate functions.
//
// The catalog is a closed enumeration, ordered from constant to factorial:
//
//   - [Function]: one named growth rate and its numeric [Evaluator]
//   - [Catalog]: ordered entries plus a normalized-key lookup
//   - [Default]: the shared, immutable twenty-entry catalog
//
// # Example
//
//	eval, err := growth.Default().Resolve("N log N")
//	if err != nil {
//	    // err is an *UnsupportedExpressionError
//	}
//	v, _ := eval(1000)
//
// # Numeric failures
//
// Evaluators report the results float64 cannot hold as [ErrOverflow] and
// out-of-domain arguments as [ErrDomain]. The factorial is the exception:
// above 20 it returns +Inf with no error, meaning "too large to evaluate".
package growth
