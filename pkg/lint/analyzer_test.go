package lint

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/leapstack-labs/guidelint/internal/testutil"
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// testUnit is "class A {}\nclass B {} // x" with two classes and one comment.
func testUnit() *syntax.Unit {
	src := "class A {}\nclass B {} // x"
	a := &syntax.Node{Kind: syntax.KindClass, Span: token.NewSpan(0, 10),
		Name: &syntax.Ident{Text: "A", Span: token.NewSpan(6, 7)}}
	b := &syntax.Node{Kind: syntax.KindClass, Span: token.NewSpan(11, 21),
		Name: &syntax.Ident{Text: "B", Span: token.NewSpan(17, 18)}}
	return &syntax.Unit{
		Path:   "test.cs",
		Source: src,
		Root:   &syntax.Node{Kind: syntax.KindUnit, Span: token.NewSpan(0, len(src)), Children: []*syntax.Node{a, b}},
		Trivia: []token.Trivia{{Kind: token.LineComment, Text: "// x", Span: token.NewSpan(22, 26)}},
	}
}

// nameRule reports every named node of the given kinds at its name.
func nameRule(id string, kinds ...syntax.Kind) Rule {
	return WrapRuleDef(RuleDef{
		ID:       id,
		Name:     "test." + id,
		Group:    "test",
		Severity: core.SeverityWarning,
		Kinds:    kinds,
		Check: func(pass *Pass, el syntax.Element) []Diagnostic {
			if el.Node.Name == nil {
				return nil
			}
			return []Diagnostic{pass.Diagnostic(el.Node.Name.Span, id+" "+el.Node.Name.Text)}
		},
	})
}

func triviaRule(id string) Rule {
	return WrapRuleDef(RuleDef{
		ID:       id,
		Group:    "test",
		Severity: core.SeverityInfo,
		Kinds:    []syntax.Kind{syntax.KindTrivia},
		Check: func(pass *Pass, el syntax.Element) []Diagnostic {
			return []Diagnostic{pass.Diagnostic(el.Trivia.Span, "trivia")}
		},
	})
}

func TestAnalyzer_DispatchAndOrder(t *testing.T) {
	a := NewAnalyzer(nil, WithRules([]Rule{
		nameRule("T2", syntax.KindClass),
		triviaRule("T3"),
		nameRule("T1", syntax.KindClass),
	}))
	diags, err := a.Analyze(context.Background(), testUnit(), nil)
	require.NoError(t, err)

	assert.Equal(t, "[6,7) T1 warning T1 A\n"+
		"[6,7) T2 warning T2 A\n"+
		"[17,18) T1 warning T1 B\n"+
		"[17,18) T2 warning T2 B\n"+
		"[22,26) T3 info trivia\n", Golden(diags))

	assert.Equal(t, token.Position{Line: 2, Column: 7, Offset: 17}, diags[2].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 8, Offset: 18}, diags[2].EndPos)
	assert.Equal(t, "https://csharpcodingguidelines.com/test-guidelines/#T1", diags[0].DocumentationURL)
	assert.Equal(t, ImpactMedium.Int(), diags[0].ImpactScore)
}

func TestAnalyzer_Idempotent(t *testing.T) {
	a := NewAnalyzer(nil, WithRules([]Rule{nameRule("T1", syntax.KindClass), triviaRule("T2")}))
	unit := testUnit()
	first, err := a.Analyze(context.Background(), unit, nil)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), unit, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzer_SubsetEquivalence(t *testing.T) {
	all := []Rule{nameRule("T1", syntax.KindClass), nameRule("T2", syntax.KindClass), triviaRule("T3")}
	full, err := NewAnalyzer(nil, WithRules(all)).Analyze(context.Background(), testUnit(), nil)
	require.NoError(t, err)

	for _, rule := range all {
		alone, err := NewAnalyzer(nil, WithRules([]Rule{rule})).Analyze(context.Background(), testUnit(), nil)
		require.NoError(t, err)
		assert.Equal(t, FilterByRule(full, rule.ID()), alone, rule.ID())
	}
}

func TestAnalyzer_DisabledAndSeverity(t *testing.T) {
	cfg := NewConfig().Disable("T2").SetSeverity("T1", core.SeverityError)
	a := NewAnalyzer(cfg, WithRules([]Rule{nameRule("T1", syntax.KindClass), nameRule("T2", syntax.KindClass)}))
	require.Len(t, a.Rules(), 1)

	diags, err := a.Analyze(context.Background(), testUnit(), nil)
	require.NoError(t, err)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, "T1", d.RuleID)
		assert.Equal(t, core.SeverityError, d.Severity)
	}
}

func TestAnalyzer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	diags, err := NewAnalyzer(nil, WithRules([]Rule{nameRule("T1", syntax.KindClass)})).Analyze(ctx, testUnit(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, diags)
}

func TestAnalyzer_CancelledMidWalk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rule := WrapRuleDef(RuleDef{
		ID:    "T1",
		Kinds: []syntax.Kind{syntax.KindClass},
		Check: func(pass *Pass, el syntax.Element) []Diagnostic {
			cancel()
			return []Diagnostic{pass.Diagnostic(el.Node.Span, "partial")}
		},
	})
	diags, err := NewAnalyzer(nil, WithRules([]Rule{rule})).Analyze(ctx, testUnit(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, diags, "no partial results")
}

func TestAnalyzer_RecoversRulePanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	flaky := WrapRuleDef(RuleDef{
		ID:    "T0",
		Kinds: []syntax.Kind{syntax.KindClass},
		Check: func(pass *Pass, el syntax.Element) []Diagnostic {
			if el.Node.NameText() == "A" {
				panic("boom")
			}
			return []Diagnostic{pass.Diagnostic(el.Node.Span, "ok")}
		},
	})
	a := NewAnalyzer(nil, WithLogger(logger), WithRules([]Rule{flaky, nameRule("T1", syntax.KindClass)}))
	diags, err := a.Analyze(context.Background(), testUnit(), nil)
	require.NoError(t, err)

	assert.Len(t, FilterByRule(diags, "T0"), 1, "the other element is still checked")
	assert.Len(t, FilterByRule(diags, "T1"), 2, "other rules are unaffected")
	assert.Contains(t, buf.String(), "rule failed on element")
	assert.Contains(t, buf.String(), "panic=boom")
}

func TestAnalyzer_MemoIsPerPass(t *testing.T) {
	var mu sync.Mutex
	computed := 0
	rule := WrapRuleDef(RuleDef{
		ID:    "T1",
		Kinds: []syntax.Kind{syntax.KindClass},
		Check: func(pass *Pass, el syntax.Element) []Diagnostic {
			pass.Memo("k", func() any {
				mu.Lock()
				computed++
				mu.Unlock()
				return struct{}{}
			})
			return nil
		},
	})
	a := NewAnalyzer(nil, WithRules([]Rule{rule}))
	for range 2 {
		_, err := a.Analyze(context.Background(), testUnit(), nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, computed, "once per unit")
}

func TestAnalyzer_WithoutSource(t *testing.T) {
	unit := testUnit()
	unit.Source = ""
	diags, err := NewAnalyzer(nil, WithRules([]Rule{nameRule("T1", syntax.KindClass)})).Analyze(context.Background(), unit, nil)
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Equal(t, token.Position{Offset: 6}, diags[0].Pos)
	assert.False(t, diags[0].Pos.IsValid())
}

type recordingObserver struct {
	mu    sync.Mutex
	rules map[string]int
	units int
}

func (o *recordingObserver) ObserveRule(ruleID string, _ time.Duration, diagnostics int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rules[ruleID] += diagnostics
}

func (o *recordingObserver) ObserveUnit(time.Duration, int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.units++
}

func TestAnalyzer_ObserverAndTracing(t *testing.T) {
	obs := &recordingObserver{rules: map[string]int{}}
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	a := NewAnalyzer(nil,
		WithRules([]Rule{nameRule("T1", syntax.KindClass), triviaRule("T2")}),
		WithObserver(obs),
		WithTracerProvider(tp),
	)
	_, err := a.AnalyzeUnits(context.Background(), []*syntax.Unit{testUnit(), testUnit()}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, obs.units)
	assert.Equal(t, map[string]int{"T1": 4, "T2": 2}, obs.rules)

	names := map[string]int{}
	for _, s := range recorder.Ended() {
		names[s.Name()]++
	}
	assert.Equal(t, map[string]int{"lint.Analyze": 2, "lint.AnalyzeUnits": 1}, names)
}

func TestAnalyzeUnits_PreservesOrder(t *testing.T) {
	units := make([]*syntax.Unit, 8)
	for i := range units {
		units[i] = testUnit()
		units[i].Path = string(rune('a'+i)) + ".cs"
	}
	a := NewAnalyzer(nil,
		WithLogger(testutil.NewTestLogger(t)),
		WithRules([]Rule{nameRule("T1", syntax.KindClass)}),
	)
	results, err := a.AnalyzeUnits(context.Background(), units, 3)
	require.NoError(t, err)
	require.Len(t, results, len(units))
	for i, r := range results {
		assert.Same(t, units[i], r.Unit)
		assert.Len(t, r.Diagnostics, 2)
	}
}

func TestAnalyzeUnits_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := NewAnalyzer(nil, WithRules([]Rule{nameRule("T1", syntax.KindClass)})).
		AnalyzeUnits(ctx, []*syntax.Unit{testUnit()}, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestSortDiagnostics_Total(t *testing.T) {
	diags := []Diagnostic{
		{RuleID: "B", Span: token.NewSpan(1, 2), Message: "x"},
		{RuleID: "A", Span: token.NewSpan(1, 3), Message: "y"},
		{RuleID: "A", Span: token.NewSpan(1, 3), Message: "a"},
		{RuleID: "A", Span: token.NewSpan(1, 2), Message: "z"},
		{RuleID: "C", Span: token.NewSpan(0, 9), Message: "w"},
	}
	SortDiagnostics(diags)
	assert.Equal(t, "[0,9) C error w\n"+
		"[1,2) A error z\n"+
		"[1,3) A error a\n"+
		"[1,3) A error y\n"+
		"[1,2) B error x\n", Golden(diags))
}
