// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mosaic turns any image into a mosaic!
//
// Usage:
//
//	mosaic <tile_size> <template> [sources...] -o <out_file>
//
// tile_size has the form "4x4". Each tile of the template is replaced by the
// tile of one of the source images with the most similar average color.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NonbinaryCoder/mosaic"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// config holds the parsed command line.
type config struct {
	tileSize   string
	template   string
	sources    []string
	outFile    string
	metric     string
	inset      string
	fit        string
	interP     uint
	jpgQuality int
	routines   int
	verbose    bool
}

// options is the validated form of config.
type options struct {
	tileSize   mosaic.Size
	inset      mosaic.Size
	metric     mosaic.VectorMetric
	strategy   mosaic.ResizeStrategy
	jpgQuality int
	outFile    string
}

func main() {
	reporter := NewTerminalReporter(os.Stdout)
	os.Exit(run(os.Args[1:], reporter, os.Stderr))
}

func newFlagSet(cfg *config, usageOut io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("mosaic", pflag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.StringVarP(&cfg.outFile, "out-file", "o", "", "Where to save the resulting image (required).")
	fs.StringVar(&cfg.metric, "metric", mosaic.DefaultMetricName,
		"Metric used to compare average colors ("+strings.Join(mosaic.MetricNames(), ", ")+").")
	fs.StringVar(&cfg.inset, "inset", "0x0", "Pixels ignored at each border of a tile when computing its average color.")
	fs.StringVar(&cfg.fit, "fit", "crop", "How source tiles are fitted into smaller border tiles (crop, scale).")
	fs.UintVar(&cfg.interP, "interp", 3, "Interpolation quality between 0 and 5 used by --fit scale.")
	fs.IntVar(&cfg.jpgQuality, "jpeg-quality", mosaic.DefaultJPGQuality, "Quality between 1 and 100 for jpeg output.")
	fs.IntVar(&cfg.routines, "routines", 1, "Number of tiles matched concurrently.")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "Print debug output and progress.")
	fs.Usage = func() {
		fmt.Fprintln(usageOut, "Turn any image into a mosaic!")
		fmt.Fprintln(usageOut)
		fmt.Fprintln(usageOut, "Usage: mosaic <tile_size> <template> [sources...] -o <out_file>")
		fmt.Fprintln(usageOut)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses the command line into cfg.
func parseFlags(args []string, usageOut io.Writer) (*config, error) {
	cfg := &config{}
	fs := newFlagSet(cfg, usageOut)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	positional := fs.Args()
	if len(positional) < 2 {
		fs.Usage()
		return nil, errors.New("Expected a tile size and a template image")
	}
	cfg.tileSize = positional[0]
	cfg.template = positional[1]
	cfg.sources = positional[2:]
	if cfg.outFile == "" {
		return nil, errors.New("Required option not provided: --out-file")
	}
	return cfg, nil
}

// validateOptions checks everything except the tile size, which has its own
// messages.
func validateOptions(cfg *config, tileSize mosaic.Size) (*options, error) {
	opts := &options{tileSize: tileSize, jpgQuality: cfg.jpgQuality}
	var ok bool
	if opts.metric, ok = mosaic.GetMetric(cfg.metric); !ok {
		return nil, fmt.Errorf("Unknown metric \"%s\", must be one of %s",
			cfg.metric, strings.Join(mosaic.MetricNames(), ", "))
	}
	inset, insetErr := mosaic.ParseSize(cfg.inset)
	if insetErr != nil {
		return nil, fmt.Errorf("Invalid --inset: %w", insetErr)
	}
	opts.inset = inset
	strategy, strategyErr := mosaic.GetResizeStrategy(cfg.fit)
	if strategyErr != nil {
		return nil, strategyErr
	}
	opts.strategy = strategy
	if cfg.interP > 5 {
		return nil, fmt.Errorf("--interp must be between 0 and 5, got %d", cfg.interP)
	}
	if cfg.jpgQuality < 1 || cfg.jpgQuality > 100 {
		return nil, fmt.Errorf("--jpeg-quality must be between 1 and 100, got %d", cfg.jpgQuality)
	}
	if cfg.routines <= 0 {
		return nil, fmt.Errorf("--routines must be a positive integer, got %d", cfg.routines)
	}
	outFile, expandErr := homedir.Expand(cfg.outFile)
	if expandErr != nil {
		return nil, expandErr
	}
	if ext := filepath.Ext(outFile); !mosaic.EncodableImage(ext) {
		return nil, fmt.Errorf("Unsupported output format \"%s\"", ext)
	}
	opts.outFile = outFile
	return opts, nil
}

// run executes the command and returns the exit code. All status messages go
// to reporter, usage information to usageOut.
func run(args []string, reporter Reporter, usageOut io.Writer) int {
	cfg, parseErr := parseFlags(args, usageOut)
	if parseErr != nil {
		if errors.Is(parseErr, pflag.ErrHelp) {
			return 0
		}
		reporter.Failure(parseErr.Error())
		return 2
	}

	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}

	tileSize, sizeErr := mosaic.ParseSize(cfg.tileSize)
	if sizeErr != nil {
		reporter.Failure(sizeErr.Error())
		return 2
	}
	if tileErr := mosaic.ValidateTileSize(tileSize); tileErr != nil {
		if errors.Is(tileErr, mosaic.ErrZeroTileSize) {
			reporter.Failure("Tile size must be at least 1x1")
			return 1
		}
		reporter.Failure(fmt.Sprintf("Configuration error: %v", tileErr))
		return 2
	}
	opts, optsErr := validateOptions(cfg, tileSize)
	if optsErr != nil {
		reporter.Failure(fmt.Sprintf("Configuration error: %v", optsErr))
		return 2
	}

	templatePath, expandErr := homedir.Expand(cfg.template)
	if expandErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to load template: %v", expandErr))
		return 1
	}
	template, templateErr := mosaic.LoadImage(templatePath)
	if templateErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to load template: %v", templateErr))
		return 1
	}

	storage, storageErr := mosaic.NewFSImageDB(cfg.sources...)
	if storageErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to load source: %v", storageErr))
		return 1
	}
	sources, sourcesErr := mosaic.LoadSources(storage, tileSize)
	if sourcesErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to load source: %v", sourcesErr))
		return 1
	}

	genOpts := mosaic.DefaultOptions(tileSize)
	genOpts.Inset = opts.inset
	genOpts.Metric = opts.metric
	genOpts.Strategy = opts.strategy
	genOpts.Resizer = mosaic.NewNfntResizer(mosaic.GetInterP(cfg.interP))
	genOpts.NumRoutines = cfg.routines
	if cfg.verbose {
		grid, gridErr := mosaic.NewGrid(mosaic.ImageSize(template), tileSize, mosaic.DivideAdjust)
		if gridErr == nil {
			genOpts.Progress = mosaic.LoggerProgressFunc("Matching tiles", int(grid.Len()), 100)
		}
	}
	log.WithFields(log.Fields{
		"tileSize": tileSize.String(),
		"template": templatePath,
		"sources":  len(sources),
		"metric":   cfg.metric,
		"inset":    opts.inset.String(),
		"fit":      cfg.fit,
		"interp":   mosaic.InterPString(mosaic.GetInterP(cfg.interP)),
		"routines": cfg.routines,
	}).Debug("Creating mosaic")

	res, genErr := mosaic.Generate(template, sources, genOpts)
	if genErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to create mosaic: %v", genErr))
		return 1
	}

	if saveErr := mosaic.SaveImage(opts.outFile, res, opts.jpgQuality); saveErr != nil {
		reporter.Failure(fmt.Sprintf("Unable to save mosaic: %v", saveErr))
		return 1
	}
	reporter.Success("Successfully created mosaic!")
	return 0
}
