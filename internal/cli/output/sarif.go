package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/leapstack-labs/guidelint/pkg/core"
)

// SARIF v2.1.0, see https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
	srcRoot      = "%SRCROOT%"
)

// newRunGUID identifies a SARIF run. Tests replace it.
var newRunGUID = uuid.NewString

type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool              `json:"tool"`
	AutomationDetails sarifAutomationDetails `json:"automationDetails"`
	Results           []sarifResult          `json:"results"`
}

type sarifAutomationDetails struct {
	GUID string `json:"guid"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	ShortDescription sarifMessage           `json:"shortDescription"`
	HelpURI          string                 `json:"helpUri,omitempty"`
	DefaultConfig    sarifRuleDefaultConfig `json:"defaultConfiguration"`
}

type sarifRuleDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId,omitempty"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
	CharOffset  int `json:"charOffset"`
	CharLength  int `json:"charLength"`
}

// SARIFOptions describes the tool that produced the results.
type SARIFOptions struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	// Root makes absolute file paths relative. Empty keeps paths as given.
	Root string
}

// WriteSARIF writes files as one SARIF run. Every rule in rules is listed in
// the driver so results can reference it by index; results for rules not in
// the list are added to it.
func WriteSARIF(w io.Writer, opts SARIFOptions, rules []core.RuleInfo, files []LintFileResult) error {
	driverRules := make([]sarifRule, 0, len(rules))
	index := make(map[string]int, len(rules))
	for _, r := range rules {
		index[r.ID] = len(driverRules)
		driverRules = append(driverRules, sarifRule{
			ID:               r.ID,
			Name:             r.Name,
			ShortDescription: sarifMessage{Text: r.Description},
			HelpURI:          r.DocURL,
			DefaultConfig:    sarifRuleDefaultConfig{Level: r.DefaultSeverity.SARIFLevel()},
		})
	}

	results := make([]sarifResult, 0)
	for _, f := range files {
		uri := relativeURI(opts.Root, f.Path)
		for _, d := range f.Diagnostics {
			i, ok := index[d.RuleID]
			if !ok {
				i = len(driverRules)
				index[d.RuleID] = i
				driverRules = append(driverRules, sarifRule{
					ID:            d.RuleID,
					Name:          d.RuleID,
					DefaultConfig: sarifRuleDefaultConfig{Level: "warning"},
				})
			}
			sev, _ := core.ParseSeverity(d.Severity)
			results = append(results, sarifResult{
				RuleID:    d.RuleID,
				RuleIndex: i,
				Level:     sev.SARIFLevel(),
				Message:   sarifMessage{Text: d.Message},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: uri, URIBaseID: baseID(uri)},
						Region:           region(d),
					},
				}},
			})
		}
	}

	report := sarifReport{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           opts.ToolName,
				Version:        opts.ToolVersion,
				InformationURI: opts.InformationURI,
				Rules:          driverRules,
			}},
			AutomationDetails: sarifAutomationDetails{GUID: newRunGUID()},
			Results:           results,
		}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode sarif report: %w", err)
	}
	return nil
}

func region(d LintDiagnostic) *sarifRegion {
	r := &sarifRegion{
		CharOffset: d.Start,
		CharLength: d.End - d.Start,
	}
	if d.Line > 0 {
		r.StartLine = d.Line
		r.StartColumn = d.Column
		r.EndLine = d.EndLine
		r.EndColumn = d.EndColumn
	}
	return r
}

func baseID(uri string) string {
	if filepath.IsAbs(filepath.FromSlash(uri)) {
		return ""
	}
	return srcRoot
}

// relativeURI converts a file path to a forward-slash URI relative to root.
func relativeURI(root, path string) string {
	if root != "" && filepath.IsAbs(path) {
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
