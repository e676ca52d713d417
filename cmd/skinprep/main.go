package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/mcskinprep/skintools/internal/batch"
	"github.com/mcskinprep/skintools/internal/config"
	"github.com/mcskinprep/skintools/internal/imaging"
	"github.com/mcskinprep/skintools/internal/logging"
	"github.com/mcskinprep/skintools/internal/skin"
)

func main() {
	expand := flag.Bool("expand", false, "convert legacy 64x32 skins to the modern 64x64 layout")
	swapLayers := flag.Bool("swap-layers", false, "exchange layer1 and layer2 content")
	twiceSwap := flag.Bool("twice-swap", false, "swap layers twice to clear pixels outside the skin regions")
	removeLayer := flag.Int("remove-layer", 0, "remove the given layer (1 or 2)")
	convertType := flag.String("convert-type", "", `convert arm width: "wide", "narrow" or "auto"`)
	base64Skin := flag.String("base64", "", "base64-encoded skin image instead of a file input")
	in := flag.String("in", "", "input file or folder (skins_path from config.json if blank)")
	out := flag.String("out", "", "output folder (defaults to alongside the input)")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output files")
	workers := flag.Int("workers", 0, "batch worker pool size")
	logLevel := flag.String("log-level", "info", "logging level: debug, info, warn, error")
	flag.Parse()

	logging.SetLevel(*logLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	op, ok := selectOperation(*expand, *swapLayers, *twiceSwap, *removeLayer, *convertType)
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	tools := skin.NewToolkit()

	if *base64Skin != "" {
		if err := processBase64(tools, op, *base64Skin, *out); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	inputPath := *in
	if inputPath == "" && flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}
	if inputPath == "" {
		inputPath = cfg.SkinsPath
	}
	if inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	outputDir := *out
	if outputDir == "" {
		outputDir = cfg.OutputPath
	}

	if !info.IsDir() {
		outputPath := batch.OutputPath(inputPath, op, outputDir)
		if err := batch.ProcessFile(tools, op, inputPath, outputPath); err != nil {
			log.Fatalf("%v", err)
		}
		logging.Info("converted %s -> %s", inputPath, outputPath)
		return
	}

	opts := batch.Options{
		OutputDir: outputDir,
		Overwrite: *overwrite || cfg.Overwrite,
		Workers:   *workers,
	}
	if opts.Workers == 0 {
		opts.Workers = cfg.Workers
	}

	summary, err := batch.Run(tools, op, inputPath, opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logging.Info("Conversion summary:")
	logging.Info("  Total files processed: %d", summary.Total)
	logging.Info("  Successfully converted: %d", summary.Converted)
	logging.Info("  Skipped: %d", summary.Skipped)
	logging.Info("  Errors: %d", summary.Errors)
	if summary.Errors > 0 {
		os.Exit(1)
	}
}

// selectOperation maps the flags to exactly one operation. More or fewer
// than one selected operation is a usage error.
func selectOperation(expand, swapLayers, twiceSwap bool, removeLayer int, convertType string) (batch.Operation, bool) {
	var ops []batch.Operation
	if expand {
		ops = append(ops, batch.Expand())
	}
	if swapLayers {
		ops = append(ops, batch.SwapLayers())
	}
	if twiceSwap {
		ops = append(ops, batch.TwiceSwap())
	}
	if removeLayer != 0 {
		ops = append(ops, batch.RemoveLayer(removeLayer))
	}
	if convertType != "" {
		target := convertType
		if target == "auto" {
			target = ""
		}
		ops = append(ops, batch.ConvertType(target))
	}
	if len(ops) != 1 {
		return batch.Operation{}, false
	}
	return ops[0], true
}

// processBase64 decodes an inline skin payload, applies the operation and
// writes the result as PNG.
func processBase64(tools *skin.Toolkit, op batch.Operation, payload, outDir string) error {
	img, err := imaging.DecodeBase64(payload)
	if err != nil {
		return err
	}
	result, err := op.Apply(tools, img)
	if err != nil {
		return err
	}
	outputPath := batch.OutputPath("base64_skin.png", op, outDir)
	if err := imgio.Save(outputPath, result, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	logging.Info("converted base64 skin -> %s", outputPath)
	return nil
}
