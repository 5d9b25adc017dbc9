package littleo

import (
	"go.uber.org/zap"

	"github.com/snoonan2/theory-extraCredit/internal/growth"
)

// Classifier tests catalog entries against a target growth function.
// It holds no per-call state and is safe for concurrent use.
type Classifier struct {
	catalog *growth.Catalog
	points  []int
	workers int
	log     *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCatalog replaces the default catalog.
func WithCatalog(c *growth.Catalog) Option {
	return func(cl *Classifier) {
		if c != nil {
			cl.catalog = c
		}
	}
}

// WithPoints sets the sample points. They are copied.
func WithPoints(points []int) Option {
	return func(cl *Classifier) {
		cl.points = append([]int(nil), points...)
	}
}

// WithWorkers spreads catalog entries over up to n goroutines.
func WithWorkers(n int) Option {
	return func(cl *Classifier) {
		if n > 0 {
			cl.workers = n
		}
	}
}

// WithLogger sets the logger used for skipped samples and lookups.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Classifier) {
		if l != nil {
			cl.log = l
		}
	}
}

// New returns a Classifier over the default catalog and sample points.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		catalog: growth.Default(),
		points:  DefaultPoints(),
		workers: 1,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Points returns a copy of the sample points in use.
func (c *Classifier) Points() []int {
	return append([]int(nil), c.points...)
}

// Catalog returns the catalog being searched.
func (c *Classifier) Catalog() *growth.Catalog {
	return c.catalog
}

// FindLittleO lists, in catalog order, the entries judged o(expr). An
// unsupported expression yields a single "Error: ..." line instead.
func (c *Classifier) FindLittleO(expr string) []string {
	verdicts, err := c.Report(expr)
	if err != nil {
		c.log.Debug("unsupported expression", zap.String("expression", expr), zap.Error(err))
		return []string{ErrorPrefix + err.Error()}
	}

	names := make([]string, 0, len(verdicts))
	for _, v := range verdicts {
		if v.LittleO {
			names = append(names, v.Candidate)
		}
	}
	return names
}

// Report returns a verdict for every catalog entry against expr, in
// catalog order.
func (c *Classifier) Report(expr string) ([]Verdict, error) {
	target, err := c.catalog.Lookup(expr)
	if err != nil {
		return nil, err
	}

	entries := c.catalog.Entries()
	verdicts := make([]Verdict, len(entries))
	parallelFor(len(entries), c.workers, func(start, end int) {
		for i := start; i < end; i++ {
			verdicts[i] = c.judge(entries[i], target)
		}
	})

	c.log.Debug("classified catalog",
		zap.String("target", target.Name),
		zap.Ints("points", c.points),
		zap.Int("entries", len(entries)),
	)
	return verdicts, nil
}

// Explain returns the per-sample detail behind one candidate/target pair.
func (c *Classifier) Explain(candidate, target string) (*Verdict, error) {
	f, err := c.catalog.Lookup(candidate)
	if err != nil {
		return nil, err
	}
	g, err := c.catalog.Lookup(target)
	if err != nil {
		return nil, err
	}
	v := c.judge(f, g)
	return &v, nil
}

func (c *Classifier) judge(f, g growth.Function) Verdict {
	samples := probe(f.Eval, g.Eval, c.points)
	for _, s := range samples {
		if s.Skipped() {
			c.log.Debug("skipped sample",
				zap.String("candidate", f.Name),
				zap.String("target", g.Name),
				zap.Int("n", s.N),
				zap.Error(s.Err),
			)
		}
	}
	return Verdict{
		Candidate: f.Name,
		Target:    g.Name,
		Samples:   samples,
		LittleO:   decide(ratiosOf(samples)),
	}
}

// Verdict is the outcome of testing one candidate against a target.
type Verdict struct {
	Candidate string
	Target    string
	Samples   []Sample
	LittleO   bool
}

// Ratios returns the usable ratios behind the verdict.
func (v Verdict) Ratios() RatioSequence {
	return ratiosOf(v.Samples)
}

// FindLittleO runs a default Classifier.
func FindLittleO(expr string) []string {
	return New().FindLittleO(expr)
}
