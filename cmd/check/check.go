// Package check implements the check command: load the datasets once,
// evaluate the health thresholds and print the result.
package check

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/dataservice"
	"github.com/atlasgrow/atlas-go/internal/state"
)

// Command creates the check command
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load datasets and print the current health alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, settings)
		},
	}
}

func runCheck(cmd *cobra.Command, settings *conf.Settings) error {
	client := dataservice.NewClient(&settings.Dataservice)
	appState := state.Load(cmd.Context(), client, settings, nil)

	for dataset, err := range appState.DatasetErrors() {
		fmt.Fprintf(os.Stderr, "warning: dataset %s unavailable: %v\n", dataset, err)
	}

	alerts := appState.Alerts()
	if len(alerts) == 0 {
		return fmt.Errorf("no health alerts could be evaluated")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tSEVERITY\tSTATUS")
	for i := range alerts {
		alert := &alerts[i]
		fmt.Fprintf(w, "%s\t%s\t%s\n", alert.Metric, alert.Severity.Label(), alert.Message)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Recommendations:")
	for i := range alerts {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", alerts[i].Title, alerts[i].Recommendation)
	}
	return nil
}
