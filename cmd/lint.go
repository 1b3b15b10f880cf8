package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/migsafe/pkg/analyzer"
	"github.com/nsxbet/migsafe/pkg/config"
	"github.com/nsxbet/migsafe/pkg/logger"
	"github.com/nsxbet/migsafe/pkg/sarif"
	"github.com/nsxbet/migsafe/pkg/types"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <paths...>",
	Short: "Lint SQL migration files for dangerous operations",
	Long: `Lint SQL migration files for statements that acquire dangerous locks
or cause irreversible schema changes.

Each path argument is a .sql file or a directory searched recursively
for .sql files. Pass --rows with the approximate row count of the
affected tables to get lock-duration estimates scaled to table size.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// Flags for lint command
	lintCmd.Flags().IntP("rows", "r", 0, "estimated row count for lock time")
	lintCmd.Flags().StringP("format", "f", "text", "output format (text, json, sarif)")
	lintCmd.Flags().String("fail-on", "", "minimum severity to exit 1 (default high)")
	lintCmd.Flags().String("rules", "", "path to run configuration file")

	// Bind flags to viper
	_ = viper.BindPFlag("rows", lintCmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("format", lintCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("fail-on", lintCmd.Flags().Lookup("fail-on"))
	_ = viper.BindPFlag("rules", lintCmd.Flags().Lookup("rules"))
}

func runLint(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(logger.NewWithLevel(logLevel).GetSlogLogger())

	slog.Debug("Starting lint command", "args", args)

	// Load run configuration
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	rules, err := cfg.Enabled(analyzer.Catalog())
	if err != nil {
		return err
	}
	slog.Debug("Rule catalog resolved", "rules_count", len(rules))

	failOn, err := resolveFailOn(cfg)
	if err != nil {
		return err
	}

	rows := viper.GetInt("rows")
	if rows == 0 {
		rows = cfg.Rows
	}

	// Collect SQL files
	sqlFiles, err := collectSQLFiles(args)
	if err != nil {
		return err
	}
	if len(sqlFiles) == 0 {
		slog.Warn("No .sql files found")
		return nil
	}
	slog.Debug("Collected SQL files", "count", len(sqlFiles))

	// Analyze each file
	allFindings := make(map[string][]types.Finding, len(sqlFiles))
	for _, sf := range sqlFiles {
		content, err := os.ReadFile(sf)
		if err != nil {
			return errors.Wrapf(err, "failed to read SQL file: %s", sf)
		}
		allFindings[sf] = analyzer.AnalyzeWithRules(string(content), rows, rules)
	}

	// Output results
	if err := outputResults(sqlFiles, allFindings, viper.GetString("format")); err != nil {
		return err
	}

	// Exit policy: fail if any finding meets the severity threshold
	for _, findings := range allFindings {
		for _, f := range findings {
			if f.Severity.Rank() >= failOn.Rank() {
				os.Exit(1)
			}
		}
	}

	return nil
}

func loadConfiguration() (*config.Config, error) {
	rulesPath := viper.GetString("rules")
	if rulesPath != "" {
		return config.LoadFromFile(rulesPath)
	}
	return config.DefaultConfig(), nil
}

func resolveFailOn(cfg *config.Config) (types.Severity, error) {
	failOn := viper.GetString("fail-on")
	if failOn == "" {
		failOn = cfg.FailOn
	}
	sev, err := types.ParseSeverity(failOn)
	if err != nil {
		return "", errors.Wrap(err, "invalid --fail-on")
	}
	return sev, nil
}

// collectSQLFiles expands path arguments into a sorted list of .sql
// files. Directories are searched recursively; explicit file arguments
// are taken as-is regardless of extension.
func collectSQLFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "path not found: %s", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(p), "**/*.sql")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to search directory: %s", p)
		}
		sort.Strings(matches)
		for _, m := range matches {
			files = append(files, filepath.Join(p, filepath.FromSlash(m)))
		}
	}
	return files, nil
}

func outputResults(sqlFiles []string, allFindings map[string][]types.Finding, format string) error {
	switch format {
	case "json":
		return outputJSON(allFindings)
	case "sarif":
		return outputSARIF(allFindings)
	case "text":
		return outputText(sqlFiles, allFindings)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

// outputJSON prints a document keyed by file path. Findings marshal to
// the stable field contract (rule_id, severity, message, line,
// lock_type, lock_ms).
func outputJSON(allFindings map[string][]types.Finding) error {
	doc := make(map[string][]types.Finding, len(allFindings))
	for fp, findings := range allFindings {
		if findings == nil {
			findings = []types.Finding{}
		}
		doc[fp] = findings
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func outputSARIF(allFindings map[string][]types.Finding) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sarif.FromFindings(allFindings))
}

func outputText(sqlFiles []string, allFindings map[string][]types.Finding) error {
	for _, fp := range sqlFiles {
		renderFileTable(fp, allFindings[fp])
	}
	return nil
}

// renderFileTable prints one table per file with the findings and the
// aggregate risk score. Clean files get a single confirmation line.
func renderFileTable(path string, findings []types.Finding) {
	if len(findings) == 0 {
		fmt.Printf("OK %s - no issues\n", path)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(path)
	t.AppendHeader(table.Row{"Rule", "Sev", "Lock Type", "Est.", "Message"})
	for _, f := range findings {
		est := "unknown"
		if f.LockMS != nil {
			est = fmt.Sprintf("%dms", *f.LockMS)
		}
		t.AppendRow(table.Row{f.RuleID, f.Severity, f.LockType, est, f.Message})
	}
	t.Render()
	fmt.Printf("  Risk score: %d/100\n\n", analyzer.RiskScore(findings))
}
