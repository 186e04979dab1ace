// Package cli wires the lvlviz commands: flag parsing, configuration
// layering and logger construction. Subcommands stay thin; the actual
// work lives in the library packages.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlviz/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

// NewRootCmd builds the lvlviz command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlviz",
		Short:         "Graph degree statistics and visualization",
		Long:          "lvlviz reads edge-list CSVs, reports degree statistics and renders graph images.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = buildLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("cli: build logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default lvlviz.yaml when present)")
	pf.String("edges", "", "edge-list CSV path (src,dst records)")
	pf.String("labels", "", "per-node label CSV path")
	pf.String("dataset", "", "dataset name, selects colors and plot titles")
	pf.String("tool", "", "rendering variant: quick or styled")
	pf.StringP("output", "o", "", "output image path")
	pf.String("format", "", "image encoding: png or svg (default from output extension)")
	pf.BoolP("verbose", "v", false, "enable progress logging")

	root.AddCommand(
		newDegreesCmd(),
		newRenderCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command; cmd/lvlviz calls it from main.
func Execute() error {
	return NewRootCmd().Execute()
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
