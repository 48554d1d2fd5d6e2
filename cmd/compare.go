package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evrouter/app"
	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/search"
)

var (
	compareStart    string
	compareCapacity float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both strategies on the same query and compare them",
	Long: `compare answers the same query with the cost-ordered and the
heuristic-guided strategy, verifies they agree on the optimal cost, reports
runtime statistics over repeated runs and, when rendering is enabled, writes
comparison charts and a network map.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareStart, "start", "s", "A", "start location")
	compareCmd.Flags().Float64VarP(&compareCapacity, "capacity", "b", 10, "initial battery capacity in km")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	svc.Start(ctx)

	report, err := svc.Compare(model.Location(compareStart), compareCapacity)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "query: start=%s capacity=%.1f km\n", report.Start, report.Capacity)
	for _, kind := range search.Kinds() {
		printResult(cmd, kind, report.Results[kind])
		st := report.Runtime[kind]
		fmt.Fprintf(out, "%s: runtime over %d runs: mean=%.4f ms stddev=%.4f ms\n",
			kind, st.Samples, st.MeanMs, st.StdDevMs)
	}
	return nil
}
