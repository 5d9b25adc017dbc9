// Package littleo estimates little-o relationships between catalog growth
// functions by numeric sampling.
//
// f is taken to be o(g) when the ratio f(n)/g(n), sampled at a fixed
// ascending set of points, is strictly decreasing:
//
//   - [Ratios]: the ratio sequence, skipping points that fail to evaluate
//   - [IsLittleO]: the strict-decrease test over that sequence
//   - [Classifier]: runs the test for every catalog entry against a target
//
// This is a finite-sample heuristic, not a limit computation. A ratio that
// wobbles on its way to zero is rejected, and a ratio that only decreases
// across the sampled points is accepted.
//
// # Example
//
//	c := littleo.New(littleo.WithLogger(logger))
//	for _, name := range c.FindLittleO("n log n") {
//	    fmt.Println(name)
//	}
package littleo
