package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/yuvrender/pkg/adapters/rawsource"
)

// writeClip writes n mid-grey I420 frames and returns the path.
func writeClip(t *testing.T, dir string, width, height, n int) string {
	t.Helper()
	data := bytes.Repeat([]byte{0x80}, n*rawsource.FrameSize(width, height))
	path := filepath.Join(dir, "clip.yuv")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"yuvplay", "version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out.String(), "yuvplay version dev") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

func TestPlayCommand_WritesSummaryAndSnapshots(t *testing.T) {
	dir := t.TempDir()
	clip := writeClip(t, dir, 32, 24, 4)
	summary := filepath.Join(dir, "out", "summary.md")
	shots := filepath.Join(dir, "shots")

	err := newApp().Run([]string{
		"yuvplay", "play",
		"--quiet",
		"--size", "32x24",
		"--container", "64x64",
		"--snapshots", shots,
		"--snapshot-every", "2",
		"--summary", summary,
		clip,
	})
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	data, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
	for _, want := range []string{"Run ID: ", "| Frames | 4 |", "| Surface | 64x48 |", "Completed"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, data)
		}
	}

	entries, err := os.ReadDir(shots)
	if err != nil {
		t.Fatalf("expected snapshot directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(entries))
	}
}

func TestPlayCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	clip := writeClip(t, dir, 16, 16, 2)
	summary := filepath.Join(dir, "summary.md")
	cfgPath := filepath.Join(dir, "play.yaml")
	cfg := "container: 40x20\nlog_level: quiet\nsummary: " + summary + "\nstreams:\n  - path: " + clip + "\n    size: 16x16\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := newApp().Run([]string{"yuvplay", "play", "--config", cfgPath}); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	data, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
	if !strings.Contains(string(data), "| Surface | 20x20 |") {
		t.Errorf("expected 20x20 surface, got:\n%s", data)
	}
}

func TestPlayCommand_RequiresSize(t *testing.T) {
	err := newApp().Run([]string{"yuvplay", "play", "--quiet", "clip.yuv"})
	if err == nil {
		t.Fatal("expected error without --size")
	}
}

func TestPlayCommand_NoStreams(t *testing.T) {
	err := newApp().Run([]string{"yuvplay", "play", "--quiet"})
	if err == nil {
		t.Fatal("expected error without streams")
	}
}

func TestPlayCommand_MissingFile(t *testing.T) {
	err := newApp().Run([]string{
		"yuvplay", "play", "--quiet", "--size", "16x16",
		filepath.Join(t.TempDir(), "missing.yuv"),
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
