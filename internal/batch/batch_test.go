package batch

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcskinprep/skintools/internal/skin"
)

// writeSkinPNG writes a transparent canvas of the given size as a PNG.
func writeSkinPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		op     Operation
		outDir string
		want   string
	}{
		{"alongside input", filepath.Join("skins", "steve.png"), Expand(), "", filepath.Join("skins", "steve_64x64.png")},
		{"separate output dir", filepath.Join("skins", "steve.png"), SwapLayers(), "out", filepath.Join("out", "steve_swap.png")},
		{"jpeg becomes png", filepath.Join("skins", "alex.jpg"), ConvertType("wide"), "", filepath.Join("skins", "alex_wide.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input, tt.op, tt.outDir); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "legacy.png")
	writeSkinPNG(t, input, 64, 32)

	tools := skin.NewToolkit()

	t.Run("explicit output path", func(t *testing.T) {
		output := filepath.Join(dir, "modern.png")
		if err := ProcessFile(tools, Expand(), input, output); err != nil {
			t.Fatalf("ProcessFile failed: %v", err)
		}
		assertPNGSize(t, output, 64, 64)
	})

	t.Run("default suffix path", func(t *testing.T) {
		if err := ProcessFile(tools, Expand(), input, ""); err != nil {
			t.Fatalf("ProcessFile failed: %v", err)
		}
		assertPNGSize(t, filepath.Join(dir, "legacy_64x64.png"), 64, 64)
	})

	t.Run("missing input", func(t *testing.T) {
		if err := ProcessFile(tools, Expand(), filepath.Join(dir, "nope.png"), ""); err == nil {
			t.Error("missing input should fail")
		}
	})

	t.Run("operation error", func(t *testing.T) {
		bad := filepath.Join(dir, "tiny.png")
		writeSkinPNG(t, bad, 8, 8)
		if err := ProcessFile(tools, Expand(), bad, ""); err == nil {
			t.Error("undersized skin should fail")
		}
	})
}

func assertPNGSize(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if cfg.Width != w || cfg.Height != h {
		t.Errorf("%s: got %dx%d, want %dx%d", filepath.Base(path), cfg.Width, cfg.Height, w, h)
	}
}

func TestRun(t *testing.T) {
	tools := skin.NewToolkit()

	t.Run("processes every supported file", func(t *testing.T) {
		in := t.TempDir()
		out := t.TempDir()
		writeSkinPNG(t, filepath.Join(in, "a.png"), 64, 32)
		writeSkinPNG(t, filepath.Join(in, "b.png"), 64, 32)
		writeSkinPNG(t, filepath.Join(in, "notes.txt"), 64, 32)

		summary, err := Run(tools, Expand(), in, Options{OutputDir: out})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if summary.Total != 2 || summary.Converted != 2 || summary.Skipped != 0 || summary.Errors != 0 {
			t.Errorf("summary: %+v", summary)
		}
		assertPNGSize(t, filepath.Join(out, "a_64x64.png"), 64, 64)
		assertPNGSize(t, filepath.Join(out, "b_64x64.png"), 64, 64)
	})

	t.Run("skips existing outputs", func(t *testing.T) {
		in := t.TempDir()
		out := t.TempDir()
		writeSkinPNG(t, filepath.Join(in, "a.png"), 64, 32)

		first, err := Run(tools, Expand(), in, Options{OutputDir: out})
		if err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if first.Converted != 1 {
			t.Fatalf("first run summary: %+v", first)
		}

		second, err := Run(tools, Expand(), in, Options{OutputDir: out})
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if second.Skipped != 1 || second.Converted != 0 {
			t.Errorf("second run summary: %+v", second)
		}

		forced, err := Run(tools, Expand(), in, Options{OutputDir: out, Overwrite: true})
		if err != nil {
			t.Fatalf("forced run failed: %v", err)
		}
		if forced.Skipped != 0 || forced.Converted == 0 {
			t.Errorf("forced run summary: %+v", forced)
		}
	})

	t.Run("counts failures without aborting", func(t *testing.T) {
		in := t.TempDir()
		out := t.TempDir()
		writeSkinPNG(t, filepath.Join(in, "good.png"), 64, 32)
		if err := os.WriteFile(filepath.Join(in, "broken.png"), []byte("not a png"), 0644); err != nil {
			t.Fatal(err)
		}

		summary, err := Run(tools, Expand(), in, Options{OutputDir: out})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if summary.Total != 2 || summary.Converted != 1 || summary.Errors != 1 {
			t.Errorf("summary: %+v", summary)
		}
	})

	t.Run("missing input folder", func(t *testing.T) {
		if _, err := Run(tools, Expand(), filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
			t.Error("missing folder should fail")
		}
	})
}
