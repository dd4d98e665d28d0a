package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/modelgrid/layout/pkg/observability"
)

// logHooks forwards engine and snapshot events to the CLI logger at
// debug level. It is registered once at CLI construction, so --verbose
// surfaces the engine's internal timing without the engine depending
// on a logging library.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnComputeStart(_ context.Context, algorithm string, nodeCount, edgeCount int) {
	h.logger.Debug("layout started", "algorithm", algorithm, "nodes", nodeCount, "edges", edgeCount)
}

func (h logHooks) OnComputeComplete(_ context.Context, algorithm string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "algorithm", algorithm, "duration", duration, "err", err)
		return
	}
	h.logger.Debug("layout finished", "algorithm", algorithm, "duration", duration)
}

func (h logHooks) OnSnapshotRead(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("snapshot read failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("snapshot read", "path", path, "bytes", size)
}

func (h logHooks) OnSnapshotWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("snapshot write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("snapshot written", "path", path, "bytes", size)
}

// registerHooks installs the logging hooks for this process.
func registerHooks(logger *log.Logger) {
	hooks := logHooks{logger: logger}
	observability.SetLayoutHooks(hooks)
	observability.SetSnapshotHooks(hooks)
}
