package growth

import (
	"math"
)

// MaxExactFactorial is the largest argument the factorial evaluates exactly.
// 21! no longer fits in a uint64.
const MaxExactFactorial = 20

// Evaluator maps a sample argument n to the value of a growth function.
type Evaluator func(n float64) (float64, error)

// checked lifts a plain float function into an Evaluator. NaN and -Inf come
// from log/sqrt of out-of-range arguments; +Inf means the result overflowed.
func checked(fn func(n float64) float64) Evaluator {
	return func(n float64) (float64, error) {
		v := fn(n)
		switch {
		case math.IsNaN(v), math.IsInf(v, -1):
			return 0, ErrDomain
		case math.IsInf(v, 1):
			return 0, ErrOverflow
		}
		return v, nil
	}
}

// Factorial returns n! for integral 0 <= n <= 20 and +Inf for n > 20.
func Factorial(n float64) (float64, error) {
	if n > MaxExactFactorial {
		return math.Inf(1), nil
	}
	if n < 0 || n != math.Trunc(n) {
		return 0, ErrDomain
	}
	var f uint64 = 1
	for i := uint64(2); i <= uint64(n); i++ {
		f *= i
	}
	return float64(f), nil
}

func logLog(n float64) float64 { return math.Log(math.Log(n)) }

func logSquared(n float64) float64 {
	l := math.Log(n)
	return l * l
}
