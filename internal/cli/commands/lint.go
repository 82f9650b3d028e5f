package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/guidelint/internal/cli/config"
	"github.com/leapstack-labs/guidelint/internal/cli/output"
	"github.com/leapstack-labs/guidelint/internal/observability"
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/lint"
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules" // register guideline rules
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// ErrLintIssues is returned when diagnostics at or above the threshold remain.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths       []string // Files or directories to lint
	Format      string   // Output format: text, markdown, json, sarif
	Disable     []string // Rule IDs to disable
	Severity    string   // Minimum severity: error, warning, info, hint
	Rules       []string // Run only specific rules
	Jobs        int      // Units analyzed in parallel
	Include     []string // Globs a unit file must match
	Exclude     []string // Globs that skip a unit file
	MetricsFile string   // Prometheus textfile to write
	Version     string   // Tool version reported in SARIF
}

// NewLintCommand creates the lint command.
func NewLintCommand(version string) *cobra.Command {
	opts := &LintOptions{Version: version}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check exported syntax units against the coding guidelines",
		Long: `Analyze unit files exported by a C# front end and report guideline violations.

Unit files end in .unit.json, .unit.yaml, .unit.yml or .unit.msgpack.
Directories are walked recursively. Rules can be configured in .guidelint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON and SARIF: Machine-readable formats`,
		Example: `  # Lint every unit under the current directory
  guidelint lint

  # Lint a specific directory
  guidelint lint ./build/units

  # Output SARIF for code scanning
  guidelint lint --format sarif > guidelint.sarif

  # Disable specific rules
  guidelint lint --disable AV2310,AV1704

  # Only report errors
  guidelint lint --severity error

  # Record metrics for the node exporter
  guidelint lint --metrics-file /var/lib/node_exporter/guidelint.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, sarif")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Units analyzed in parallel (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Only lint unit files matching these globs")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Skip unit files matching these globs")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write prometheus metrics to this file")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json", "sarif"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	// Flags set on this command win over values merged by the root command
	settings := resolveSettings(cmd, cfg, opts)

	if cfg.Docs != nil && cfg.Docs.BaseURL != "" {
		lint.SetDocsBaseURL(cfg.Docs.BaseURL)
		defer lint.ResetDocsBaseURL()
	}

	filter, err := newPathFilter(settings.include, settings.exclude)
	if err != nil {
		return err
	}
	files, err := collectUnitFiles(opts.Paths, filter)
	if err != nil {
		return err
	}
	logger.Debug("collected unit files", "count", len(files))
	if len(files) == 0 {
		r.Warn("no unit files found")
		return nil
	}

	units, skipped := loadUnits(files)
	for _, s := range skipped {
		logger.Warn("skipping unit file", "path", s.Path, "error", s.Error)
		r.Warn(fmt.Sprintf("skipping %s: %s", s.Path, s.Error))
	}

	lintCfg := buildLintConfig(cfg, opts)
	if err := lint.ValidateOptions(lintCfg, lint.GetAll()); err != nil {
		return fmt.Errorf("invalid rule configuration: %w", err)
	}

	metrics := observability.NewMetrics()
	analyzer := lint.NewAnalyzer(lintCfg,
		lint.WithLogger(logger),
		lint.WithObserver(metrics),
	)

	unitResults, err := analyzer.AnalyzeUnits(cmd.Context(), units, settings.jobs)
	if err != nil {
		return fmt.Errorf("failed to analyze units: %w", err)
	}

	results := make([]lintFileResult, 0, len(unitResults))
	for _, ur := range unitResults {
		results = append(results, lintFileResult{Path: ur.Unit.Path, Diagnostics: ur.Diagnostics})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	// Filter by severity threshold
	results = filterBySeverity(results, opts.Severity)

	if settings.metricsFile != "" {
		if err := metrics.WriteTextfile(settings.metricsFile); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", settings.metricsFile)
	}

	report := lintReport{
		Results:  results,
		Skipped:  skipped,
		Analyzed: len(units),
		Rules:    analyzer.Rules(),
		Root:     cfg.ProjectRoot,
		Version:  opts.Version,
	}
	hasIssues, err := renderLintResults(r, report)
	if err != nil {
		return err
	}

	if hasIssues {
		return ErrLintIssues
	}
	if len(skipped) > 0 {
		return fmt.Errorf("%d unit files could not be loaded", len(skipped))
	}
	return nil
}

type lintSettings struct {
	jobs        int
	include     []string
	exclude     []string
	metricsFile string
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, opts *LintOptions) lintSettings {
	s := lintSettings{
		jobs:        cfg.Jobs,
		include:     cfg.Include,
		exclude:     cfg.Exclude,
		metricsFile: cfg.MetricsFile,
	}
	flags := cmd.Flags()
	if flags.Changed("jobs") {
		s.jobs = opts.Jobs
	}
	if flags.Changed("include") {
		s.include = opts.Include
	}
	if flags.Changed("exclude") {
		s.exclude = opts.Exclude
	}
	if flags.Changed("metrics-file") {
		s.metricsFile = opts.MetricsFile
	}
	return s
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		projectLint := cfg.Lint
		for _, id := range projectLint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range projectLint.Severity {
			if s, ok := core.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range projectLint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// pathFilter decides which unit files found while walking are linted.
type pathFilter struct {
	include []glob.Glob
	exclude []glob.Glob
}

func newPathFilter(include, exclude []string) (*pathFilter, error) {
	f := &pathFilter{}
	for _, p := range include {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include glob %q: %w", p, err)
		}
		f.include = append(f.include, g)
	}
	for _, p := range exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude glob %q: %w", p, err)
		}
		f.exclude = append(f.exclude, g)
	}
	return f, nil
}

// Match reports whether the slash-separated path is linted.
func (f *pathFilter) Match(path string) bool {
	for _, g := range f.exclude {
		if g.Match(path) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// collectUnitFiles expands paths into a sorted, de-duplicated list of unit
// files. Directories are walked recursively, skipping hidden directories;
// their files are matched against the filter relative to the directory.
// Files named explicitly must be unit files and bypass the filter.
func collectUnitFiles(paths []string, filter *pathFilter) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			if !syntax.IsUnitFile(root) {
				return nil, fmt.Errorf("%s is not a unit file (want one of %s)", root, strings.Join(syntax.UnitSuffixes, ", "))
			}
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !syntax.IsUnitFile(path) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			if filter.Match(filepath.ToSlash(rel)) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// loadUnits decodes every file. Files that fail to decode or validate are
// returned as skipped; the rest load normally.
func loadUnits(files []string) ([]*syntax.Unit, []output.SkippedFile) {
	var units []*syntax.Unit
	var skipped []output.SkippedFile
	for _, path := range files {
		u, err := syntax.ReadFile(path)
		if err != nil {
			skipped = append(skipped, output.SkippedFile{Path: path, Error: err.Error()})
			continue
		}
		units = append(units, u)
	}
	return units, skipped
}

// lintFileResult holds lint results for a single unit.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

func filterBySeverity(results []lintFileResult, severityThreshold string) []lintFileResult {
	threshold, ok := core.ParseSeverity(severityThreshold)
	if !ok {
		threshold = core.SeverityWarning
	}

	var filtered []lintFileResult
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lintFileResult{
				Path:        r.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

// lintReport is everything a renderer needs about one run.
type lintReport struct {
	Results  []lintFileResult
	Skipped  []output.SkippedFile
	Analyzed int
	Rules    []lint.Rule
	Root     string
	Version  string
}

func summarize(report lintReport) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed:   report.Analyzed,
		FilesWithIssues: len(report.Results),
	}
	for _, res := range report.Results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

func toOutputFiles(results []lintFileResult) []output.LintFileResult {
	files := make([]output.LintFileResult, 0, len(results))
	for _, res := range results {
		fileResult := output.LintFileResult{Path: res.Path}
		for _, d := range res.Diagnostics {
			fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
				RuleID:    d.RuleID,
				Severity:  d.Severity.String(),
				Message:   d.Message,
				Line:      d.Pos.Line,
				Column:    d.Pos.Column,
				EndLine:   d.EndPos.Line,
				EndColumn: d.EndPos.Column,
				Start:     d.Span.Start,
				End:       d.Span.End,
				DocURL:    d.DocumentationURL,
			})
		}
		files = append(files, fileResult)
	}
	return files
}

// renderLintResults writes the report and reports whether any issues remain.
func renderLintResults(r *output.Renderer, report lintReport) (bool, error) {
	summary := summarize(report)
	hasIssues := summary.TotalIssues > 0

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return hasIssues, r.JSON(output.LintOutput{
			Summary: summary,
			Files:   toOutputFiles(report.Results),
			Skipped: report.Skipped,
		})
	case output.ModeSARIF:
		infos := make([]core.RuleInfo, 0, len(report.Rules))
		for _, rule := range report.Rules {
			infos = append(infos, lint.GetRuleInfo(rule))
		}
		return hasIssues, output.WriteSARIF(r.Writer(), output.SARIFOptions{
			ToolName:       "guidelint",
			ToolVersion:    report.Version,
			InformationURI: lint.DocsBaseURL,
			Root:           report.Root,
		}, infos, toOutputFiles(report.Results))
	}

	if !hasIssues {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return false, nil
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	styles := r.Styles()
	for _, res := range report.Results {
		if markdown {
			r.Println(output.FormatHeader(2, res.Path))
			r.Println("")
		} else {
			r.Println(styles.UnitPath.Render(res.Path))
		}
		for _, d := range res.Diagnostics {
			loc := d.Pos.String()
			if !d.Pos.IsValid() {
				loc = fmt.Sprintf("@%d", d.Span.Start)
			}
			if markdown {
				r.Printf("- `%s` **%s** %s: %s\n", loc, d.RuleID, d.Severity, d.Message)
				continue
			}
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				styles.RuleID.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(summaryParts, ", "), summary.FilesWithIssues, summary.FilesAnalyzed)

	return true, nil
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Hint.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
