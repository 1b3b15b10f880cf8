package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nsxbet/migsafe/pkg/analyzer"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rule catalog",
	Long: `List every rule the linter enforces, with its severity, the lock
type the flagged statement acquires, and the baseline lock estimate.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Sev", "Lock Type", "Base Est.", "Message"})
	for _, r := range analyzer.Catalog() {
		base := "unknown"
		if r.BaseLockMS != nil {
			base = fmt.Sprintf("%dms", *r.BaseLockMS)
		}
		t.AppendRow(table.Row{r.ID, r.Severity, r.LockType, base, r.Message})
	}
	t.Render()
	return nil
}
