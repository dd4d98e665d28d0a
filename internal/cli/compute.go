package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelgrid/layout/pkg/graph"
	"github.com/modelgrid/layout/pkg/io"
	"github.com/modelgrid/layout/pkg/layout"
)

// computeFlags collects the algorithm options exposed as flags.
// Only flags the user actually set are merged into the settings bag,
// so config-file and built-in defaults stay in effect otherwise.
type computeFlags struct {
	direction    string
	layerSpacing float64
	nodeSpacing  float64
	iterations   int
	repulsion    float64
	attraction   float64
	damping      float64
	seed         uint64
}

// computeCommand creates the compute command for positioning a graph.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		algorithm  string
		output     string
		name       string
		pinned     []string
		configFile string
		flags      computeFlags
	)

	cmd := &cobra.Command{
		Use:   "compute [graph.json]",
		Short: "Compute node positions for a node-link graph",
		Long: `Compute node positions for a node-link graph.

The compute command takes a graph.json file (nodes and edges as produced
by the modelgrid export), runs the chosen layout algorithm, and writes a
layout snapshot with every node positioned. The snapshot is a superset
of the input format, so it can be fed back into compute, e.g. to refine
a layered result with the force-directed algorithm.

Pinned nodes (--pin) keep their position regardless of algorithm.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("algorithm") && cfg.Algorithm != "" {
				algorithm = cfg.Algorithm
			}
			settings := mergeSettings(cfg.LayoutSettings(), cmd, flags)
			return c.runCompute(cmd.Context(), args[0], algorithm, output, name, pinned, settings)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", layout.AlgorithmLayered, "layout algorithm: manual, layered, force_directed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&name, "name", "", "snapshot name stored in the output")
	cmd.Flags().StringSliceVar(&pinned, "pin", nil, "node IDs excluded from position changes")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/mglayout/config.toml)")

	// Layered flags
	cmd.Flags().StringVar(&flags.direction, "direction", layout.DefaultDirection, "layer growth direction: TB, BT, LR, RL")
	cmd.Flags().Float64Var(&flags.layerSpacing, "layer-spacing", layout.DefaultLayerSpacing, "distance between layers")
	cmd.Flags().Float64Var(&flags.nodeSpacing, "node-spacing", layout.DefaultNodeSpacing, "distance between layer siblings")

	// Force-directed flags
	cmd.Flags().IntVar(&flags.iterations, "iterations", layout.DefaultIterations, "simulation step count")
	cmd.Flags().Float64Var(&flags.repulsion, "repulsion", layout.DefaultRepulsion, "pairwise repulsion strength")
	cmd.Flags().Float64Var(&flags.attraction, "attraction", layout.DefaultAttraction, "edge spring constant")
	cmd.Flags().Float64Var(&flags.damping, "damping", layout.DefaultDamping, "velocity damping factor")
	cmd.Flags().Uint64Var(&flags.seed, "seed", layout.DefaultSeed, "random seed for initial placement")

	return cmd
}

// mergeSettings layers explicitly set flags over config-file defaults.
func mergeSettings(base layout.Settings, cmd *cobra.Command, flags computeFlags) layout.Settings {
	settings := layout.Settings{}
	for k, v := range base {
		settings[k] = v
	}

	set := func(flag, key string, value any) {
		if cmd.Flags().Changed(flag) {
			settings[key] = value
		}
	}
	set("direction", "direction", flags.direction)
	set("layer-spacing", "layerSpacing", flags.layerSpacing)
	set("node-spacing", "nodeSpacing", flags.nodeSpacing)
	set("iterations", "iterations", flags.iterations)
	set("repulsion", "repulsion", flags.repulsion)
	set("attraction", "attraction", flags.attraction)
	set("damping", "damping", flags.damping)
	set("seed", "seed", int(flags.seed))

	if len(settings) == 0 {
		return nil
	}
	return settings
}

// runCompute loads the graph, runs the engine, and writes the snapshot.
func (c *CLI) runCompute(ctx context.Context, input, algorithm, output, name string, pinned []string, settings layout.Settings) error {
	logger := loggerFromContext(ctx)

	g, err := io.ImportGraph(ctx, input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("graph loaded", "nodes", len(g.Nodes), "edges", len(g.Edges))

	engine := layout.New()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", algorithm))
	spinner.Start()

	track := newProgress(logger)
	result, err := engine.Compute(ctx, layout.Request{
		Algorithm:   algorithm,
		Nodes:       g.Nodes,
		Edges:       g.Edges,
		Constraints: graph.Constraints{PinnedNodeIDs: pinned},
		Settings:    settings,
	})
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Positioned %d nodes", len(result.Nodes)))

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	snap := io.NewSnapshot(name, result)
	if err := io.ExportSnapshot(ctx, outputPath, snap); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printDetail("algorithm: %s", result.Algorithm)
	printDetail("nodes: %d, edges: %d", len(result.Nodes), len(result.Edges))
	switch result.Algorithm {
	case layout.AlgorithmLayered:
		printDetail("layers: %d", result.Meta.Layers)
	case layout.AlgorithmForceDirected:
		printDetail("iterations: %d", result.Meta.Iterations)
	}

	return nil
}
