package cli

import (
	"github.com/spf13/cobra"

	"github.com/modelgrid/layout/pkg/layout"
)

// algorithmDescriptions maps algorithm names to one-line summaries.
var algorithmDescriptions = map[string]string{
	layout.AlgorithmManual:        "keep hand-placed positions unchanged",
	layout.AlgorithmLayered:       "hierarchical layers with even in-layer spacing",
	layout.AlgorithmForceDirected: "physical simulation: repulsion, springs, damping",
}

// algorithmsCommand creates the algorithms command listing the registry.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available layout algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range layout.New().Algorithms() {
				printInfo("%s", name)
				if desc, ok := algorithmDescriptions[name]; ok {
					printDetail("%s", desc)
				}
			}
		},
	}
}
