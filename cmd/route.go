package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evrouter/app"
	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/search"
)

var (
	routeStart    string
	routeCapacity float64
	routeStrategy string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find the nearest reachable charging station from a start location",
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeStart, "start", "s", "A", "start location")
	routeCmd.Flags().Float64VarP(&routeCapacity, "capacity", "b", 10, "initial battery capacity in km")
	routeCmd.Flags().StringVar(&routeStrategy, "strategy", search.KindHeuristicGuided,
		fmt.Sprintf("search strategy (%s)", strings.Join(search.Kinds(), "|")))
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
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

	res, err := svc.RunQuery(routeStrategy, model.Location(routeStart), routeCapacity)
	if err != nil {
		return err
	}
	printResult(cmd, routeStrategy, res)
	return nil
}

func printResult(cmd *cobra.Command, strategy string, res model.SearchResult) {
	out := cmd.OutOrStdout()
	if !res.Reachable() {
		fmt.Fprintf(out, "%s: no charging station reachable (%d nodes expanded, %s)\n",
			strategy, res.NodesExpanded, res.Runtime)
		return
	}
	fmt.Fprintf(out, "%s: %s  cost=%.2f km  expanded=%d  runtime=%s\n",
		strategy, formatPath(res.Path), res.Cost, res.NodesExpanded, res.Runtime)
}

func formatPath(p model.Path) string {
	parts := make([]string, len(p))
	for i, loc := range p {
		parts[i] = string(loc)
	}
	return strings.Join(parts, " -> ")
}
