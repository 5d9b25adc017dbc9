package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	want := []string{
		"1", "log(log(n))", "log(n)", "(log(n))^2", "sqrt(log(n))",
		"sqrt(n)", "n^(1/3)", "n", "n*log(log(n))", "n*log(n)",
		"n*log(n)^2", "n^(1.5)", "n^2", "n^2*log(n)", "n^3",
		"2^(sqrt(n))", "2^n", "3^n", "n^n", "n!",
	}

	entries := Default().Entries()
	require.Len(t, entries, len(want))
	for i, fn := range entries {
		assert.Equal(t, want[i], fn.Name, "entry %d", i)
	}
}

func TestKeysDistinctAndNormalized(t *testing.T) {
	seen := make(map[string]string)
	for _, fn := range Default().Entries() {
		assert.Equal(t, fn.Key, Normalize(fn.Key), "key of %s not normalized", fn.Name)
		if other, dup := seen[fn.Key]; dup {
			t.Errorf("key %q shared by %s and %s", fn.Key, other, fn.Name)
		}
		seen[fn.Key] = fn.Name
	}
}

func TestKeysMatchRecognizedSet(t *testing.T) {
	want := []string{
		"1", "loglogn", "logn", "(logn)^2", "sqrt(logn)", "sqrtn", "n^(1/3)",
		"n", "nloglogn", "nlogn", "nlogn^2", "n^1.5", "n^2", "n^2logn", "n^3",
		"2^sqrtn", "2^n", "3^n", "n^n", "n!",
	}
	assert.Equal(t, want, Default().Keys())
}

func TestResolveAgreesWithEntries(t *testing.T) {
	for _, fn := range Default().Entries() {
		eval, err := Default().Resolve(fn.Key)
		require.NoError(t, err, fn.Key)

		for _, n := range []float64{10, 100} {
			want, wantErr := fn.Eval(n)
			got, gotErr := eval(n)
			assert.Equal(t, wantErr, gotErr, "%s(%v)", fn.Name, n)
			assert.Equal(t, want, got, "%s(%v)", fn.Name, n)
		}
	}
}

func TestResolveNormalizesInput(t *testing.T) {
	tests := []string{"n^2", "N^2", " n ^ 2 ", "\tn^2\n"}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			fn, err := Default().Lookup(expr)
			require.NoError(t, err)
			assert.Equal(t, "n^2", fn.Name)

			eval, err := Default().Resolve(expr)
			require.NoError(t, err)
			v, err := eval(7)
			require.NoError(t, err)
			assert.Equal(t, 49.0, v)
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	_, err := Default().Resolve("bogus")
	require.Error(t, err)

	var unsupported *UnsupportedExpressionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "bogus", unsupported.Expression)
	assert.ErrorIs(t, err, ErrUnsupportedExpression)
	assert.Equal(t, "Unsupported expression: bogus", err.Error())
}

func TestResolveNoPartialMatch(t *testing.T) {
	for _, expr := range []string{"n^", "log", "n^4", "2^2n", "n*log(n)", ""} {
		_, err := Default().Resolve(expr)
		assert.ErrorIs(t, err, ErrUnsupportedExpression, "expr %q", expr)
	}
}

func TestNewRejectsDuplicateKeys(t *testing.T) {
	one := checked(func(n float64) float64 { return 1 })
	_, err := New([]Function{
		{Name: "a", Key: "N", Eval: one},
		{Name: "b", Key: " n", Eval: one},
	})

	var defErr *DefinitionError
	require.True(t, errors.As(err, &defErr))
	assert.Equal(t, "b", defErr.Name)
}

func TestNewRejectsMissingEvaluator(t *testing.T) {
	_, err := New([]Function{{Name: "a", Key: "a"}})
	assert.Error(t, err)
}

func TestEntriesIsCopy(t *testing.T) {
	entries := Default().Entries()
	entries[0].Name = "changed"
	assert.Equal(t, "1", Default().Entries()[0].Name)
}

func TestClassesCoverCatalog(t *testing.T) {
	groups := Default().Classes()
	total := 0
	for _, class := range ClassOrder() {
		total += len(groups[class])
	}
	assert.Equal(t, Default().Len(), total)
	assert.Len(t, groups[ClassExponential], 5)
}

func TestEvaluatorValues(t *testing.T) {
	tests := []struct {
		key  string
		n    float64
		want float64
	}{
		{"1", 10, 1},
		{"logn", math.E, 1},
		{"loglogn", math.Exp(math.E), 1},
		{"(logn)^2", math.Exp(3), 9},
		{"sqrtn", 10000, 100},
		{"n^(1/3)", 1000, 10},
		{"n", 10, 10},
		{"nlogn", math.E, math.E},
		{"n^1.5", 100, 1000},
		{"n^2", 100, 10000},
		{"n^3", 10, 1000},
		{"2^sqrtn", 100, 1024},
		{"2^n", 10, 1024},
		{"3^n", 4, 81},
		{"n^n", 3, 27},
		{"n!", 5, 120},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			eval, err := Default().Resolve(tt.key)
			require.NoError(t, err)
			got, err := eval(tt.n)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9*math.Max(1, tt.want))
		})
	}
}
