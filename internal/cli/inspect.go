package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/render"
	"github.com/matzehuels/sketch3d/pkg/sceneio"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	output string // output file for the tree drawing; empty prints stats only
	format string // dot, svg, or png
}

// inspectCommand creates the inspect command for examining the polygon
// partition tree a scene produces.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Show the polygon partition tree for a scene",
		Long: `Show the polygon partition tree for a scene.

The partition tree drives the back-to-front draw order: every polygon
lands in a tree node, and polygons crossing a partition plane are split
into fragments. Inspect prints the tree statistics and can write the
tree as a Graphviz drawing with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" && opts.format != "png" {
				return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
			}
			return c.runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the tree drawing to a file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg (default), png, dot")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path string, opts *inspectOpts) error {
	f, _, err := sceneio.Load(path)
	if err != nil {
		return err
	}

	tree, ok := f.Scene().Partition()
	if !ok {
		printWarning("Scene has no polygons; nothing to partition")
		return nil
	}

	printKeyValue("nodes", fmt.Sprintf("%d", tree.NodeCount()))
	printKeyValue("polygons", fmt.Sprintf("%d", tree.PolygonCount()))
	printKeyValue("splits", fmt.Sprintf("%d", tree.SplitCount()))
	printKeyValue("depth", fmt.Sprintf("%d", tree.Depths()))

	if opts.output == "" {
		return nil
	}

	dot := render.ToDOT(tree)
	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderDOTSVG(ctx, dot)
	case "png":
		data, err = render.RenderDOTPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("rendering tree: %w", err)
	}

	out := opts.output
	if !strings.Contains(out, ".") {
		out += "." + opts.format
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	printFile(out)
	return nil
}
