package littleo

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/snoonan2/theory-extraCredit/internal/growth"
)

func catalogNames() []string {
	entries := growth.Default().Entries()
	names := make([]string, len(entries))
	for i, fn := range entries {
		names[i] = fn.Name
	}
	return names
}

var _ = Describe("FindLittleO", func() {
	var c *Classifier

	BeforeEach(func() {
		c = New()
	})

	Context("with a quadratic target", func() {
		It("should include slower entries", func() {
			got := c.FindLittleO("n^2")
			Expect(got).To(ContainElements("1", "log(n)", "sqrt(n)", "n", "n*log(n)"))
		})

		It("should exclude the target and faster entries", func() {
			got := c.FindLittleO("n^2")
			Expect(got).NotTo(ContainElement("n^2"))
			Expect(got).NotTo(ContainElement("n^3"))
			Expect(got).NotTo(ContainElement("2^n"))
		})

		It("should keep catalog order", func() {
			want := []string{
				"1", "log(log(n))", "log(n)", "(log(n))^2", "sqrt(log(n))",
				"sqrt(n)", "n^(1/3)", "n", "n*log(log(n))", "n*log(n)",
				"n*log(n)^2", "n^(1.5)",
			}
			Expect(cmp.Diff(want, c.FindLittleO("n^2"))).To(BeEmpty())
		})
	})

	Context("with a factorial target", func() {
		It("should include every entry except the factorial", func() {
			names := catalogNames()
			want := names[:len(names)-1]
			Expect(cmp.Diff(want, c.FindLittleO("n!"))).To(BeEmpty())
		})
	})

	Context("with a constant target", func() {
		It("should find nothing", func() {
			got := c.FindLittleO("1")
			Expect(got).NotTo(BeNil())
			Expect(got).To(BeEmpty())
		})
	})

	Context("with unsupported input", func() {
		It("should return a single error line", func() {
			Expect(c.FindLittleO("bogus")).To(Equal([]string{"Error: Unsupported expression: bogus"}))
		})

		It("should keep the caller's spelling in the message", func() {
			Expect(c.FindLittleO("N^4")).To(Equal([]string{"Error: Unsupported expression: N^4"}))
		})
	})

	It("should normalize case and whitespace", func() {
		Expect(c.FindLittleO(" N ^ 2 ")).To(Equal(c.FindLittleO("n^2")))
	})

	It("should be idempotent", func() {
		for _, key := range growth.Default().Keys() {
			Expect(c.FindLittleO(key)).To(Equal(c.FindLittleO(key)), key)
		}
	})

	It("should never list an entry as little-o of itself", func() {
		for _, fn := range growth.Default().Entries() {
			Expect(c.FindLittleO(fn.Key)).NotTo(ContainElement(fn.Name), fn.Key)
		}
	})

	It("should match the package-level helper", func() {
		Expect(FindLittleO("nlogn")).To(Equal(c.FindLittleO("nlogn")))
	})

	DescribeTable("should give the same answers with workers",
		func(workers int) {
			parallel := New(WithWorkers(workers))
			for _, key := range growth.Default().Keys() {
				Expect(parallel.FindLittleO(key)).To(Equal(c.FindLittleO(key)), key)
			}
		},
		Entry("two", 2),
		Entry("four", 4),
		Entry("one per entry", 20),
		Entry("more than entries", 64),
	)
})

var _ = Describe("Classifier options", func() {
	It("should copy the sample points", func() {
		points := []int{10, 100}
		c := New(WithPoints(points))
		points[0] = 99
		Expect(c.Points()).To(Equal([]int{10, 100}))
	})

	It("should return false for every entry with no sample points", func() {
		c := New(WithPoints([]int{}))
		Expect(c.FindLittleO("n^3")).To(BeEmpty())
	})

	It("should ignore a nil catalog and logger", func() {
		c := New(WithCatalog(nil), WithLogger(nil), WithWorkers(0))
		Expect(c.Catalog()).To(BeIdenticalTo(growth.Default()))
		Expect(c.FindLittleO("n")).To(ContainElement("log(n)"))
	})

	It("should search a custom catalog", func() {
		small, err := growth.New([]growth.Function{
			{Name: "n", Key: "n", Eval: func(n float64) (float64, error) { return n, nil }},
			{Name: "n^2", Key: "n^2", Eval: func(n float64) (float64, error) { return n * n, nil }},
		})
		Expect(err).NotTo(HaveOccurred())

		c := New(WithCatalog(small))
		Expect(c.FindLittleO("n^2")).To(Equal([]string{"n"}))
		Expect(c.FindLittleO("n^3")).To(HaveLen(1))
	})
})

var _ = Describe("Explain", func() {
	var c *Classifier

	BeforeEach(func() {
		c = New()
	})

	It("should report the ratio sequence", func() {
		v, err := c.Explain("n", "n^2")
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Candidate).To(Equal("n"))
		Expect(v.Target).To(Equal("n^2"))
		Expect(v.LittleO).To(BeTrue())

		ratios := v.Ratios()
		Expect(ratios).To(HaveLen(4))
		for i, want := range []float64{0.1, 0.01, 0.001, 0.0001} {
			Expect(ratios[i]).To(BeNumerically("~", want, 1e-15))
		}
	})

	It("should mark overflowed samples as skipped", func() {
		v, err := c.Explain("2^n", "n")
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Samples).To(HaveLen(4))
		Expect(v.Samples[3].Skipped()).To(BeTrue())
		Expect(errors.Is(v.Samples[3].Err, growth.ErrOverflow)).To(BeTrue())
		Expect(v.LittleO).To(BeFalse())
	})

	It("should reject unknown names on either side", func() {
		_, err := c.Explain("bogus", "n")
		Expect(err).To(MatchError(growth.ErrUnsupportedExpression))

		_, err = c.Explain("n", "bogus")
		Expect(err).To(MatchError(growth.ErrUnsupportedExpression))
	})

	It("should agree with IsLittleO", func() {
		for _, f := range growth.Default().Entries() {
			v, err := c.Explain(f.Key, "n^2")
			Expect(err).NotTo(HaveOccurred())
			g, _ := growth.Default().Resolve("n^2")
			Expect(v.LittleO).To(Equal(IsLittleO(f.Eval, g, nil)), f.Name)
		}
	})
})

var _ = Describe("Report", func() {
	It("should return one verdict per entry", func() {
		verdicts, err := New().Report("n^3")
		Expect(err).NotTo(HaveOccurred())
		Expect(verdicts).To(HaveLen(growth.Default().Len()))
		for _, v := range verdicts {
			Expect(v.Target).To(Equal("n^3"))
		}
	})

	It("should return the typed error for unknown input", func() {
		_, err := New().Report("bogus")
		var unsupported *growth.UnsupportedExpressionError
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(unsupported.Expression).To(Equal("bogus"))
	})
})

var _ = Describe("Logging", func() {
	It("should log skipped samples at debug", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(WithLogger(zap.New(core)))

		_, err := c.Explain("2^n", "n")
		Expect(err).NotTo(HaveOccurred())

		skipped := logs.FilterMessage("skipped sample").All()
		Expect(skipped).To(HaveLen(1))
		Expect(skipped[0].ContextMap()).To(HaveKeyWithValue("n", int64(10000)))
	})

	It("should log unsupported expressions", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		New(WithLogger(zap.New(core))).FindLittleO("bogus")
		Expect(logs.FilterMessage("unsupported expression").Len()).To(Equal(1))
	})
})
