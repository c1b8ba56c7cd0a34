package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "./cmd/rmsdplot"}, args...)...)
	cmd.Dir = filepath.Join("..", "..")
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestRender_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	datPath := filepath.Join(dir, "rmsd.dat")
	outPath := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(datPath, []byte("0 1.2\n1 1.5\n2 1.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runTool(t, "--title", "RMSD: test", "-o", outPath, datPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		t.Error("output is not an SVG document")
	}
	if !strings.Contains(svg, "RMSD: test") {
		t.Error("title missing from output")
	}
	if _, err := os.Stat(filepath.Join(dir, "rmsdplot.log")); err != nil {
		t.Errorf("log file not created next to output: %v", err)
	}

	// Re-running must overwrite cleanly.
	out, err = runTool(t, "--title", "RMSD: test", "-o", outPath, datPath)
	if err != nil {
		t.Fatalf("second render: %v\n%s", err, out)
	}
	again, _ := os.ReadFile(outPath)
	if !strings.Contains(string(again), "RMSD: test") {
		t.Error("second render corrupted the output")
	}
}

func TestRender_ParseErrorLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	datPath := filepath.Join(dir, "rmsd.dat")
	outPath := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(datPath, []byte("0 1.2\n1 oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runTool(t, "--title", "t", "-o", outPath, datPath)
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(out, "rmsd.dat:2") {
		t.Errorf("error should reference the offending line:\n%s", out)
	}
	if _, err := os.Stat(outPath); err == nil {
		t.Error("no output file may exist after a parse failure")
	}
}

func TestRender_MissingInput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.svg")

	out, err := runTool(t, "--title", "t", "-o", outPath, filepath.Join(dir, "nope.dat"))
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if _, err := os.Stat(outPath); err == nil {
		t.Error("no output file may exist when the input is missing")
	}
}

func TestRender_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	datPath := filepath.Join(dir, "rmsd.dat")
	if err := os.WriteFile(datPath, []byte("0 1.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runTool(t, "--title", "t", "-o", filepath.Join(dir, "out.gif"), datPath)
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(out, "valid extensions") {
		t.Errorf("error should list the valid extensions:\n%s", out)
	}
}

func TestFormats_ListsSVG(t *testing.T) {
	out, err := runTool(t, "formats")
	if err != nil {
		t.Fatalf("formats: %v\n%s", err, out)
	}
	if !strings.Contains(out, ".svg") || !strings.Contains(out, ".png") {
		t.Errorf("formats listing incomplete:\n%s", out)
	}
}
