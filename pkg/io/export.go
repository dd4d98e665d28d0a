package io

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/modelgrid/layout/pkg/errors"
	"github.com/modelgrid/layout/pkg/layout"
	"github.com/modelgrid/layout/pkg/observability"
)

// Snapshot is a positioned layout result ready for persistence.
//
// The snapshot ID gives the diagram-persistence service a stable key
// for storing and referencing the layout; the optional name is the
// caller's human-readable label.
type Snapshot struct {
	ID   string `json:"snapshot_id"`
	Name string `json:"name,omitempty"`

	layout.Result
}

// NewSnapshot wraps a layout result with a freshly generated snapshot
// ID. The name may be empty.
func NewSnapshot(name string, result layout.Result) Snapshot {
	return Snapshot{
		ID:     uuid.NewString(),
		Name:   name,
		Result: result,
	}
}

// WriteSnapshot encodes the snapshot as indented JSON to w.
// The output can be re-imported with [ReadGraph] for round-trip
// processing; the extra snapshot fields are ignored on re-import.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot %s", snap.ID)
	}
	return nil
}

// ExportSnapshot writes the snapshot to the JSON file at path and
// reports the write to the registered snapshot hooks.
func ExportSnapshot(ctx context.Context, path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot %s", snap.ID)
	}
	data = append(data, '\n')

	err = os.WriteFile(path, data, 0o644)
	observability.Snapshot().OnSnapshotWrite(ctx, path, len(data), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write snapshot %s", path)
	}
	return nil
}
