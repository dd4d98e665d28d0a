// Package cli implements the mglayout command-line interface.
//
// This package provides commands for computing diagram layouts from
// node-link graph files and inspecting the available algorithms. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - compute: Position the nodes of a graph.json with a chosen algorithm
//   - algorithms: List the registered layout algorithms
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modelgrid/layout/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "mglayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and registers
// the observability hooks that surface engine timing under --verbose.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	registerHooks(c.Logger)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "mglayout computes 2-D positions for diagram graphs",
		Long:         `mglayout is the layout engine of the modelgrid diagram platform. It takes a node-link graph and computes coordinates for every node using manual, layered, or force-directed strategies.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
