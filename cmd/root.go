package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/evrouter/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evrouter",
	Short: "Battery-constrained routing to the nearest EV charging station",
	Long: `evrouter finds a minimum-cost route from a start location to the nearest
reachable charging station in a fixed road network. The vehicle can only take
an edge its remaining charge covers and recharges fully on arrival at a node.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json); built-in reference city when omitted")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig resolves the configuration: the file given with --config, or the
// built-in defaults when the flag is absent.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
