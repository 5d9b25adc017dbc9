package viz

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/snoonan2/theory-extraCredit/internal/growth"
	"github.com/snoonan2/theory-extraCredit/internal/littleo"
)

// Menu lists the recognized expressions grouped by class.
func Menu(c *growth.Catalog, s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Available expressions:"))
	b.WriteString("\n")

	groups := c.Classes()
	for _, class := range growth.ClassOrder() {
		fns := groups[class]
		if len(fns) == 0 {
			continue
		}
		keys := make([]string, len(fns))
		for i, fn := range fns {
			keys[i] = s.Key.Render(fn.Key)
		}
		fmt.Fprintf(&b, "%s %s\n", s.Heading.Render(string(class)+":"), strings.Join(keys, ", "))
	}
	return b.String()
}

// Results lists the little-o names for expr, one per line.
func Results(expr string, names []string, s Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", s.Title.Render(fmt.Sprintf("Functions that are little o of %s:", expr)))
	if len(names) == 0 {
		b.WriteString(s.Subtle.Render("(none)"))
		b.WriteString("\n")
	}
	for _, name := range names {
		style := s.Name
		if strings.HasPrefix(name, littleo.ErrorPrefix) {
			style = s.Bad
		}
		fmt.Fprintf(&b, "- %s\n", style.Render(name))
	}
	return b.String()
}

// Footer explains what membership in the list means.
func Footer(expr string, s Styles) string {
	lines := []string{
		"Key relationship: For all functions f(n) listed above:",
		fmt.Sprintf("lim(n→∞) f(n)/%s = 0", expr),
		"This means they grow strictly slower than your input function.",
		"",
		"Big O (O) represents an upper bound that can be tight.",
		"Little o (o) represents a strictly smaller growth rate",
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(s.Subtle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// VerdictTable prints one row per sample point.
func VerdictTable(v *littleo.Verdict, s Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", s.Title.Render(fmt.Sprintf("%s vs %s", v.Candidate, v.Target)))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tF(N)\tG(N)\tRATIO\tSTATUS")
	for _, smp := range v.Samples {
		if smp.Skipped() {
			fmt.Fprintf(w, "%d\t%s\t%s\t-\tskipped: %v\n", smp.N, formatValue(smp.F), formatValue(smp.G), smp.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\tok\n", smp.N, formatValue(smp.F), formatValue(smp.G), formatValue(smp.Ratio))
	}
	w.Flush()

	b.WriteString("\n")
	b.WriteString(s.Sparkline(log10All(v.Ratios())))
	b.WriteString("\n")

	if v.LittleO {
		fmt.Fprintf(&b, "%s\n", s.Good.Render(fmt.Sprintf("%s is o(%s): ratios strictly decrease", v.Candidate, v.Target)))
	} else {
		fmt.Fprintf(&b, "%s\n", s.Bad.Render(fmt.Sprintf("%s is not o(%s)", v.Candidate, v.Target)))
	}
	return b.String()
}

// RatioPlot graphs log10 of the usable ratios. It returns an empty string
// when fewer than two finite values remain.
func RatioPlot(v *littleo.Verdict, height, width int) string {
	data := make([]float64, 0, len(v.Samples))
	for _, lv := range log10All(v.Ratios()) {
		if !math.IsNaN(lv) && !math.IsInf(lv, 0) {
			data = append(data, lv)
		}
	}
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("log10(%s / %s)", v.Candidate, v.Target)),
	)
}

func log10All(r littleo.RatioSequence) []float64 {
	out := make([]float64, len(r))
	for i, x := range r {
		out[i] = math.Log10(x)
	}
	return out
}

func formatValue(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return fmt.Sprintf("%.4g", x)
}
