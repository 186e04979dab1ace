package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlviz/render"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render a graph image from an edge list",
		Long: "render draws the graph with the selected tool.\n" +
			"\"quick\" gives a plain structural sketch; \"styled\" scales edge widths by\n" +
			"betweenness, vertex sizes by degree and colors vertices by class label.",
		RunE: func(*cobra.Command, []string) error {
			idx, err := loadEdges(cfg.Edges)
			if err != nil {
				return err
			}
			tool, err := render.ParseTool(cfg.Tool)
			if err != nil {
				return err
			}

			var labels []int
			if cfg.Labels != "" {
				if labels, err = loadLabels(cfg.Labels); err != nil {
					return err
				}
			}

			if cfg.Output == "" {
				return fmt.Errorf("cli: output image path required (--output)")
			}
			format, err := deriveFormat(cfg.Format, cfg.Output)
			if err != nil {
				return err
			}

			f, err := os.Create(cfg.Output)
			if err != nil {
				return fmt.Errorf("cli: create output: %w", err)
			}
			defer f.Close()

			logger.Info("rendering graph",
				zap.String("tool", tool.String()),
				zap.String("dataset", cfg.Dataset),
				zap.String("path", cfg.Output),
				zap.String("format", format))

			err = render.Draw(idx, labels, cfg.Dataset, tool, f,
				render.WithLogger(logger),
				render.WithFormat(render.Format(format)))
			if err != nil {
				return err
			}
			return f.Close()
		},
	}
}
