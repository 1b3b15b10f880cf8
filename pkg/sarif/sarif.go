// Package sarif renders findings as a SARIF 2.1.0 log, the static
// analysis interchange format understood by GitHub code scanning and
// most editors.
package sarif

import (
	"sort"

	"github.com/nsxbet/migsafe/pkg/types"
)

// ToolName identifies this tool in the SARIF driver block.
const ToolName = "MigSafe"

// ToolVersion is the driver version reported in SARIF output.
const ToolVersion = "1.0.0"

const schemaURI = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"` // error or warning
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// FromFindings builds a SARIF log from per-file findings. Files are
// emitted in sorted path order so output is deterministic; findings
// within a file keep their analysis order.
func FromFindings(byFile map[string][]types.Finding) *Log {
	paths := make([]string, 0, len(byFile))
	for p := range byFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var results []Result
	for _, path := range paths {
		for _, f := range byFile[path] {
			results = append(results, Result{
				RuleID:  f.RuleID,
				Level:   severityLevel(f.Severity),
				Message: Message{Text: f.Message},
				Locations: []Location{
					{
						PhysicalLocation: PhysicalLocation{
							ArtifactLocation: ArtifactLocation{URI: path},
							Region:           Region{StartLine: f.Line},
						},
					},
				},
			})
		}
	}
	if results == nil {
		results = []Result{}
	}

	return &Log{
		Version: "2.1.0",
		Schema:  schemaURI,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{Name: ToolName, Version: ToolVersion},
				},
				Results: results,
			},
		},
	}
}

// severityLevel maps finding severities onto the SARIF level scale.
// critical and high are errors; everything else is a warning.
func severityLevel(s types.Severity) string {
	switch s {
	case types.SeverityCritical, types.SeverityHigh:
		return "error"
	default:
		return "warning"
	}
}
