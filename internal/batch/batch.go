// Package batch drives the iconpad pipeline over files on disk.
package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	iconpad "github.com/gcslaoli/iconpad-go"
)

// Options configures a batch run.
type Options struct {
	Output  string
	InPlace bool
	// Check inspects files without writing anything.
	Check  bool
	Jobs   int
	Config iconpad.Config
	Logger logrus.FieldLogger
}

// Result is the outcome for a single file.
type Result struct {
	Src      string
	Dst      string
	Original image.Point
	Before   int64
	After    int64
	Info     iconpad.Info
	Report   *iconpad.Report
	Err      error
}

// Summary counts the results of a run.
type Summary struct {
	Processed int
	Failed    int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Processed++
	}
	return s
}

// Run processes every file of src and returns one Result per file, in the
// order of src.Files. A failing file does not stop the batch. When ctx is
// cancelled no further files are started; those files carry ctx's error and
// Run returns it.
func Run(ctx context.Context, src Source, opts Options) ([]Result, error) {
	if !opts.InPlace && !opts.Check && opts.Output == "" {
		return nil, fmt.Errorf("either an output path or in-place mode is required")
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	cfg := opts.Config.Clamp()
	jobs := max(opts.Jobs, 1)

	results := make([]Result, len(src.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, file := range src.Files {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(src.Files); j++ {
				results[j] = Result{Src: src.Files[j], Err: err}
			}
			break
		}

		i, file := i, file
		g.Go(func() error {
			res := Result{Src: file}
			if !opts.Check {
				res.Dst, res.Err = src.Destination(file, opts.Output, opts.InPlace)
			}
			if res.Err == nil {
				res.Err = processFile(&res, cfg, opts.Check)
			}
			if res.Err != nil {
				log.WithField("file", file).WithError(res.Err).Error("process failed")
			} else {
				log.WithFields(logrus.Fields{"file": file, "side": res.Info.Side}).Debug("processed")
			}
			results[i] = res
			return nil
		})
	}

	_ = g.Wait()
	return results, ctx.Err()
}

func processFile(res *Result, cfg iconpad.Config, check bool) error {
	data, err := os.ReadFile(res.Src)
	if err != nil {
		return fmt.Errorf("read %s: %w", res.Src, err)
	}
	res.Before = int64(len(data))

	if check {
		report, err := iconpad.InspectBytes(data, cfg)
		if err != nil {
			return err
		}
		res.Report = &report
		res.Info = report.Info
		res.Original = report.Original
		return nil
	}

	out, info, err := iconpad.NormalizeBytes(data, cfg)
	if err != nil {
		return err
	}
	res.Info = info
	res.Original = info.Original

	if err := os.MkdirAll(filepath.Dir(res.Dst), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(res.Dst, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", res.Dst, err)
	}
	res.After = int64(len(out))
	return nil
}
