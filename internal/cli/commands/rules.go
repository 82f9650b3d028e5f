package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/guidelint/internal/cli/output"
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/lint"
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules" // register guideline rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available guideline rules",
		Long: `List all available guideline rules with their documentation.

Rules are organized by group (documentation, maintainability, naming).
Use --verbose to see full documentation including examples and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  guidelint rules

  # Show details for a specific rule
  guidelint rules AV1536

  # List rules in the naming group
  guidelint rules --group naming

  # Show full documentation
  guidelint rules -V

  # Output as JSON
  guidelint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, r := range lint.GetAll() {
				ids = append(ids, r.ID()+"\t"+r.Name())
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// allRuleInfos returns the registered rules sorted by group, then ID.
func allRuleInfos() []core.RuleInfo {
	rules := lint.GetAll()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, lint.GetRuleInfo(r))
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer
	rules := filterRulesByOptions(allRuleInfos(), opts)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func filterRulesByOptions(rules []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Group == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, r := range rules {
		if strings.EqualFold(r.Group, opts.Group) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rule, ok := lint.GetByID(strings.ToUpper(strings.TrimSpace(ruleID)))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &info)
	default:
		return showRuleText(r, &info)
	}
}

// listRulesText outputs rules as a styled table per group.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Guideline Rules (%d)", len(rules))))
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println(styles.Header2.Render(titleCaser.String(group.name)))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		header := table.Row{"ID", "Name", "Severity"}
		if verbose {
			header = append(header, "Description")
		}
		t.AppendHeader(header)
		for _, rule := range group.rules {
			row := table.Row{
				rule.ID,
				rule.Name,
				getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
			}
			if verbose {
				row = append(row, truncateOneLine(rule.Description, 60))
			}
			t.AppendRow(row)
		}
		t.Render()
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'guidelint rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	titleCaser := cases.Title(language.English)

	r.Println("# Guideline Rules")
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println("## " + titleCaser.String(group.name))
		r.Println("")
		for _, rule := range group.rules {
			r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.DefaultSeverity.String())
			if verbose {
				r.Println("  " + rule.Description)
				if rule.Rationale != "" {
					r.Println("  > " + truncateOneLine(rule.Rationale, 200))
				}
			}
		}
		r.Println("")
	}
	return nil
}

type ruleGroup struct {
	name  string
	rules []core.RuleInfo
}

// groupRules splits rules sorted by group into consecutive groups.
func groupRules(rules []core.RuleInfo) []ruleGroup {
	var groups []ruleGroup
	for _, rule := range rules {
		if len(groups) == 0 || groups[len(groups)-1].name != rule.Group {
			groups = append(groups, ruleGroup{name: rule.Group})
		}
		last := &groups[len(groups)-1]
		last.rules = append(last.rules, rule)
	}
	return groups
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules   []core.RuleInfo `json:"rules"`
	ByGroup map[string]int  `json:"by_group"`
	Total   int             `json:"total"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	jsonOutput := RulesJSONOutput{
		Rules:   rules,
		ByGroup: make(map[string]int),
		Total:   len(rules),
	}
	if jsonOutput.Rules == nil {
		jsonOutput.Rules = []core.RuleInfo{}
	}
	for _, rule := range rules {
		jsonOutput.ByGroup[rule.Group]++
	}
	return r.JSON(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Applies to"), strings.Join(rule.Kinds, ", "))
	if rule.DocURL != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), rule.DocURL)
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println(indentLines(rule.Description, "  "))
	r.Println("")

	if rule.Message != "" {
		r.Println(styles.Bold.Render("Reports"))
		r.Println(indentLines(rule.Message, "  "))
		r.Println("")
	}

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println(indentLines(rule.Rationale, "  "))
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println(indentLines(rule.Fix, "  "))
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.DefaultSeverity.String())
	r.Println(rule.Description)
	r.Println("")
	if rule.Message != "" {
		r.Printf("Reports: `%s`\n\n", rule.Message)
	}
	if rule.DocURL != "" {
		r.Printf("See [%s](%s).\n\n", rule.ID, rule.DocURL)
	}

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```csharp")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```csharp")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
		r.Println("")
	}

	return nil
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

// indentLines prefixes every non-empty line of s.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
