package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlviz/degree"
)

func newDegreesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "degrees",
		Short: "Report degree statistics for an edge list",
		Long: "degrees computes per-node in/out degrees and the out-degree histogram.\n" +
			"With --output it also writes the three stacked degree charts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := loadEdges(cfg.Edges)
			if err != nil {
				return err
			}
			stats, err := degree.Compute(idx)
			if err != nil {
				return err
			}

			printSummary(cmd, stats, len(idx.Src))
			printHistogram(cmd, stats)

			if cfg.Output == "" {
				return nil
			}
			return writeDegreePlot(stats)
		},
	}
}

func printSummary(cmd *cobra.Command, s *degree.Stats, edges int) {
	maxIn, maxOut := 0, 0
	for i := range s.In {
		if s.In[i] > maxIn {
			maxIn = s.In[i]
		}
		if s.Out[i] > maxOut {
			maxOut = s.Out[i]
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Nodes", s.NumNodes},
		{"Edges", edges},
		{"Max in-degree", maxIn},
		{"Max out-degree", maxOut},
		{"Mean out-degree", fmt.Sprintf("%.3f", float64(edges)/float64(s.NumNodes))},
	})
	t.Render()
}

func printHistogram(cmd *cobra.Command, s *degree.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Out-degree", "Nodes"})
	for d, n := range s.Hist {
		if n == 0 {
			continue
		}
		t.AppendRow(table.Row{d, n})
	}
	t.Render()
}

func writeDegreePlot(s *degree.Stats) error {
	format, err := deriveFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cli: create output: %w", err)
	}
	defer f.Close()

	logger.Info("writing degree charts",
		zap.String("path", cfg.Output),
		zap.String("format", format))

	if err := degree.Plot(s, cfg.Dataset, f, degree.WithFormat(degree.Format(format))); err != nil {
		return err
	}
	return f.Close()
}
