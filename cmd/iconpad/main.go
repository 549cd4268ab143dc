package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	iconpad "github.com/gcslaoli/iconpad-go"
	"github.com/gcslaoli/iconpad-go/internal/batch"
)

// go run ./cmd/iconpad --input ./icons --output ./icons_fixed
// go run ./cmd/iconpad --input ./icon.png --in-place
// go run ./cmd/iconpad --input ./icons --check
// go run ./cmd/iconpad --inbase64 "data:image/png;base64,..." --outbase64

type options struct {
	input       string
	output      string
	inPlace     bool
	check       bool
	jobs        int
	verbose     bool
	inputBase64 string
	outBase64   bool
	cfg         iconpad.Config
}

var opts = options{cfg: iconpad.DefaultConfig()}

var rootCmd = &cobra.Command{
	Use:           "iconpad",
	Short:         "Trim transparent PNG padding and output square icons without distortion",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if opts.inputBase64 != "" {
			return runBase64(opts)
		}
		return runBatch(ctx, opts)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Input PNG file or directory")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file/dir. Required unless --in-place or --check is set")
	flags.BoolVar(&opts.inPlace, "in-place", false, "Overwrite source files in place")
	flags.BoolVar(&opts.check, "check", false, "Report what would change without writing files")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "Number of files processed concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.StringVar(&opts.inputBase64, "inbase64", "", "Base64 image input (optionally data URL)")
	flags.BoolVar(&opts.outBase64, "outbase64", false, "Write the squared PNG as base64 to stdout instead of a file")
	bindConfigFlags(flags, &opts.cfg)
}

// bindConfigFlags maps the pipeline parameters onto flags. Values are clamped
// by the pipeline, never rejected here.
func bindConfigFlags(flags *pflag.FlagSet, cfg *iconpad.Config) {
	flags.IntVar(&cfg.AlphaThreshold, "alpha-threshold", iconpad.DefaultAlphaThreshold, "Alpha threshold (0-255) for content detection")
	flags.Float64Var(&cfg.PadRatio, "pad-ratio", iconpad.DefaultPadRatio, "Extra square padding ratio around content")
	flags.IntVar(&cfg.MinSize, "min-size", iconpad.DefaultMinSize, "Minimum output side length")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func runBatch(ctx context.Context, o options) error {
	if o.input == "" {
		return fmt.Errorf("--input or --inbase64 is required")
	}
	if !o.inPlace && !o.check && o.output == "" {
		return fmt.Errorf("either --output or --in-place is required")
	}

	src, err := batch.Discover(o.input)
	if err != nil {
		return err
	}
	if len(src.Files) == 0 {
		fmt.Println("No PNG files found.")
		return nil
	}

	logrus.WithFields(logrus.Fields{"files": len(src.Files), "jobs": o.jobs}).Debug("starting batch")
	results, runErr := batch.Run(ctx, src, batch.Options{
		Output:  o.output,
		InPlace: o.inPlace,
		Check:   o.check,
		Jobs:    o.jobs,
		Config:  o.cfg,
		Logger:  logrus.StandardLogger(),
	})
	if results == nil && runErr != nil {
		return runErr
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.Report != nil {
			fmt.Printf("[CHECK] %s | %dx%d | content %v | side %d | normalized=%t | border %.1f%%\n",
				r.Src, r.Original.X, r.Original.Y, r.Report.Content, r.Report.Side, r.Report.Normalized, r.Report.BorderRatio*100)
			continue
		}
		fmt.Printf("[OK] %s -> %s | %dx%d | %dB -> %dB\n", r.Src, r.Dst, r.Original.X, r.Original.Y, r.Before, r.After)
	}

	sum := batch.Summarize(results)
	fmt.Printf("Done. Processed %d PNG file(s).\n", sum.Processed)
	if runErr != nil {
		return runErr
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", sum.Failed)
	}
	return nil
}

func runBase64(o options) error {
	img, format, err := iconpad.DecodeBase64Image(o.inputBase64)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	out, info, err := iconpad.Normalize(img, o.cfg)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	if o.outBase64 {
		encoded, err := iconpad.EncodePNGToBase64(out)
		if err != nil {
			return fmt.Errorf("encode base64 output: %w", err)
		}
		fmt.Println(encoded)
		logrus.Infof("Processed base64 (%s) -> base64 [%dx%d -> %dx%d]", format, info.Original.X, info.Original.Y, info.Side, info.Side)
		return nil
	}

	if o.output == "" {
		return fmt.Errorf("--output or --outbase64 is required with --inbase64")
	}

	outFile, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	if err := iconpad.EncodePNG(outFile, out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Printf("Processed base64 (%s) -> %s [%dx%d -> %dx%d]\n", format, o.output, info.Original.X, info.Original.Y, info.Side, info.Side)
	return nil
}
