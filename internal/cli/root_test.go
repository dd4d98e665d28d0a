package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	layoutio "github.com/modelgrid/layout/pkg/io"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := newTestCLI().RootCommand()

	if root.Use != "mglayout" {
		t.Errorf("Use = %q, want %q", root.Use, "mglayout")
	}

	want := map[string]bool{
		"compute":    false,
		"algorithms": false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"algorithms"})

	if err := root.Execute(); err != nil {
		t.Fatalf("algorithms command failed: %v", err)
	}
}

func TestComputeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "out.json")

	graphJSON := `{
  "nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
  "edges": [{"source": "a", "target": "b"}, {"source": "b", "target": "c"}]
}`
	if err := os.WriteFile(input, []byte(graphJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"compute", input, "-o", output, "-a", "layered", "--config", filepath.Join(dir, "none.toml")})

	if err := root.Execute(); err != nil {
		t.Fatalf("compute command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}

	var snap layoutio.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("output is not a valid snapshot: %v", err)
	}
	if snap.ID == "" {
		t.Error("snapshot_id should be set")
	}
	if snap.Algorithm != "layered" {
		t.Errorf("algorithm = %q, want %q", snap.Algorithm, "layered")
	}
	if len(snap.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(snap.Nodes))
	}
	for _, n := range snap.Nodes {
		if n.Position == nil {
			t.Errorf("node %q has no position", n.ID)
		}
	}
}

func TestComputeCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")

	if err := os.WriteFile(input, []byte(`{"nodes": [{"id": "a"}], "edges": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"compute", input, "--config", filepath.Join(dir, "none.toml")})

	if err := root.Execute(); err != nil {
		t.Fatalf("compute command failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "graph.layout.json")); err != nil {
		t.Errorf("default output graph.layout.json not written: %v", err)
	}
}

func TestComputeCommandUnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")

	if err := os.WriteFile(input, []byte(`{"nodes": [{"id": "a"}], "edges": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	var errOut bytes.Buffer
	root.SetOut(io.Discard)
	root.SetErr(&errOut)
	root.SetArgs([]string{"compute", input, "-a", "radial", "--config", filepath.Join(dir, "none.toml")})

	if err := root.Execute(); err == nil {
		t.Fatal("compute should fail for an unknown algorithm")
	}
}

func TestComputeCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"compute", filepath.Join(dir, "missing.json"), "--config", filepath.Join(dir, "none.toml")})

	if err := root.Execute(); err == nil {
		t.Fatal("compute should fail when the input file does not exist")
	}
}

func TestComputeCommandConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "out.json")
	config := filepath.Join(dir, "config.toml")

	graphJSON := `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"source": "a", "target": "b"}]}`
	if err := os.WriteFile(input, []byte(graphJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	// Config picks LR: layers grow along X instead of Y.
	if err := os.WriteFile(config, []byte("[settings]\ndirection = \"LR\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"compute", input, "-o", output, "--config", config})

	if err := root.Execute(); err != nil {
		t.Fatalf("compute command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var snap layoutio.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}

	positions := map[string][2]float64{}
	for _, n := range snap.Nodes {
		if n.Position == nil {
			t.Fatalf("node %q has no position", n.ID)
		}
		positions[n.ID] = [2]float64{n.Position.X, n.Position.Y}
	}
	if positions["b"][0] <= positions["a"][0] {
		t.Errorf("LR direction should place b to the right of a: a=%v b=%v", positions["a"], positions["b"])
	}
}
