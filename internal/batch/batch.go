// Package batch applies one skin operation to a file or a whole folder of
// skins.
//
// Folder runs filter by image extension, skip files whose output already
// exists unless overwrite is set, process independent files on a small
// worker pool, and report a per-run summary. Individual failures are
// counted, never fatal to the run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/mcskinprep/skintools/internal/logging"
	"github.com/mcskinprep/skintools/internal/skin"
)

// supportedExtensions are the image files a folder run picks up.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// DefaultWorkers is the worker pool size when Options.Workers is zero.
const DefaultWorkers = 4

// Options controls a folder run.
type Options struct {
	// OutputDir receives the results; empty means alongside the inputs.
	OutputDir string

	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool

	// Workers is the pool size for parallel processing; 0 means
	// DefaultWorkers.
	Workers int
}

// Summary is the per-run bookkeeping of a folder run.
type Summary struct {
	Total     int // image files considered
	Converted int // successfully written outputs
	Skipped   int // outputs that already existed
	Errors    int // files that failed to load, transform or save
}

// OutputPath returns the canonical output path for an input file: the base
// name plus the operation suffix, always as PNG, in outDir (or next to the
// input when outDir is empty).
func OutputPath(inputPath string, op Operation, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := base + op.Suffix() + ".png"
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outDir, name)
}

// ProcessFile applies an operation to a single skin file and writes the
// result. An empty outputPath selects the canonical suffix-based name next
// to the input.
func ProcessFile(tools *skin.Toolkit, op Operation, inputPath, outputPath string) error {
	img, err := imgio.Open(inputPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", filepath.Base(inputPath), err)
	}

	out, err := op.Apply(tools, img)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op.Name(), filepath.Base(inputPath), err)
	}

	if outputPath == "" {
		outputPath = OutputPath(inputPath, op, "")
	}
	if err := imgio.Save(outputPath, out, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(outputPath), err)
	}
	return nil
}

// Run applies an operation to every supported image file directly inside
// inputDir.
func Run(tools *skin.Toolkit, op Operation, inputDir string, opts Options) (*Summary, error) {
	if _, err := os.Stat(inputDir); err != nil {
		return nil, fmt.Errorf("input folder %s: %w", inputDir, err)
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("create output folder: %w", err)
		}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input folder: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	summary := &Summary{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan string, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inputPath := range jobs {
				outputPath := OutputPath(inputPath, op, opts.OutputDir)
				err := ProcessFile(tools, op, inputPath, outputPath)
				mu.Lock()
				if err != nil {
					summary.Errors++
				} else {
					summary.Converted++
				}
				mu.Unlock()
				if err != nil {
					logging.Error("%v", err)
				} else {
					logging.Info("converted %s -> %s", filepath.Base(inputPath), filepath.Base(outputPath))
				}
			}
		}()
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		inputPath := filepath.Join(inputDir, entry.Name())
		summary.Total++

		outputPath := OutputPath(inputPath, op, opts.OutputDir)
		if !opts.Overwrite {
			if _, err := os.Stat(outputPath); err == nil {
				logging.Info("skipped %s (output already exists)", entry.Name())
				summary.Skipped++
				continue
			}
		}
		jobs <- inputPath
	}
	close(jobs)
	wg.Wait()

	return summary, nil
}
