package lint

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

const tracerName = "github.com/leapstack-labs/guidelint/pkg/lint"

// Observer receives timing and volume figures from an Analyzer.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveRule is called once per rule per analyzed unit.
	ObserveRule(ruleID string, elapsed time.Duration, diagnostics int)
	// ObserveUnit is called once per Analyze call.
	ObserveUnit(elapsed time.Duration, diagnostics int, err error)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for recovered rule failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRules runs the given rules instead of the global registry.
func WithRules(rules []Rule) Option {
	return func(a *Analyzer) {
		a.source = rules
	}
}

// WithObserver reports rule and unit timings to o.
func WithObserver(o Observer) Option {
	return func(a *Analyzer) {
		a.observer = o
	}
}

// WithTracerProvider sets the provider spans are created from. The global
// otel provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Analyzer) {
		if tp != nil {
			a.tracer = tp.Tracer(tracerName)
		}
	}
}

// Analyzer runs rules against units. It is immutable after construction and
// safe for concurrent use.
type Analyzer struct {
	config   *Config
	source   []Rule
	rules    []Rule                 // enabled rules sorted by ID
	table    map[syntax.Kind][]Rule // dispatch table, each slice sorted by ID
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
}

// NewAnalyzer creates an analyzer with optional configuration. Without
// WithRules it runs every rule in the global registry that config does not
// disable.
func NewAnalyzer(config *Config, opts ...Option) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		config: config,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.source == nil {
		a.source = GetAll()
	}

	a.table = make(map[syntax.Kind][]Rule)
	for _, rule := range sortedRules(a.source) {
		if config.IsDisabled(rule.ID()) {
			continue
		}
		a.rules = append(a.rules, rule)
		for _, kind := range rule.Kinds() {
			a.table[kind] = append(a.table[kind], rule)
		}
	}
	return a
}

func sortedRules(rules []Rule) []Rule {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	return sorted
}

// Rules returns the enabled rules in dispatch order.
func (a *Analyzer) Rules() []Rule {
	return a.rules
}

// unitRun is the mutable state of one Analyze call.
type unitRun struct {
	passes  map[string]*Pass
	elapsed map[string]time.Duration
	counts  map[string]int
	diags   []Diagnostic
}

// Analyze runs the enabled rules over unit and returns their diagnostics
// sorted by span start, then rule ID. When model is nil the unit's own
// Semantics are used.
//
// If ctx is cancelled before the pass completes, Analyze returns nil and the
// context error; it never returns a partial result.
func (a *Analyzer) Analyze(ctx context.Context, unit *syntax.Unit, model syntax.SemanticModel) (diags []Diagnostic, err error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "lint.Analyze", trace.WithAttributes(
		attribute.String("unit.path", unit.Path),
		attribute.Int("rules", len(a.rules)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("diagnostics", len(diags)))
		span.End()
		if a.observer != nil {
			a.observer.ObserveUnit(time.Since(start), len(diags), err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == nil {
		model = unit.Semantics
	}

	run := &unitRun{
		passes:  make(map[string]*Pass, len(a.rules)),
		elapsed: make(map[string]time.Duration, len(a.rules)),
		counts:  make(map[string]int, len(a.rules)),
	}
	for _, rule := range a.rules {
		run.passes[rule.ID()] = newPass(rule, unit, model, a.config.GetRuleOptions(rule.ID()))
	}

	var walkErr error
	syntax.WalkStack(unit.Root, func(n *syntax.Node, ancestors []*syntax.Node) bool {
		if walkErr != nil {
			return false
		}
		if walkErr = ctx.Err(); walkErr != nil {
			return false
		}
		a.dispatch(run, syntax.Element{Node: n, Ancestors: ancestors})
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	trivia := make([]token.Trivia, len(unit.Trivia))
	copy(trivia, unit.Trivia)
	sort.SliceStable(trivia, func(i, j int) bool { return trivia[i].Span.Start < trivia[j].Span.Start })
	for i := range trivia {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := &trivia[i]
		a.dispatch(run, syntax.Element{
			Trivia:    t,
			Ancestors: syntax.Enclosing(unit.Root, t.Span.Start, t.Span.End),
		})
	}

	if a.observer != nil {
		for _, rule := range a.rules {
			a.observer.ObserveRule(rule.ID(), run.elapsed[rule.ID()], run.counts[rule.ID()])
		}
	}

	lines := unit.Lines()
	for i := range run.diags {
		d := &run.diags[i]
		d.Severity = a.config.GetSeverity(d.RuleID, d.Severity)
		if unit.Source != "" {
			d.Pos, d.EndPos = lines.Resolve(d.Span)
		} else {
			d.Pos, d.EndPos = token.Position{Offset: d.Span.Start}, token.Position{Offset: d.Span.End}
		}
	}
	SortDiagnostics(run.diags)
	return run.diags, nil
}

func (a *Analyzer) dispatch(run *unitRun, el syntax.Element) {
	for _, rule := range a.table[el.Kind()] {
		began := time.Now()
		found := a.check(rule, run.passes[rule.ID()], el)
		run.elapsed[rule.ID()] += time.Since(began)
		run.counts[rule.ID()] += len(found)
		run.diags = append(run.diags, found...)
	}
}

// check runs one rule on one element. A rule that panics yields no
// diagnostics for that element; the rest of the unit is still analyzed.
func (a *Analyzer) check(rule Rule, pass *Pass, el syntax.Element) (found []Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("rule failed on element",
				slog.String("rule", rule.ID()),
				slog.String("unit", pass.Unit.Path),
				slog.String("kind", el.Kind().String()),
				slog.String("span", el.Span().String()),
				slog.String("panic", fmt.Sprint(r)),
			)
			found = nil
		}
	}()
	return rule.Check(pass, el)
}
