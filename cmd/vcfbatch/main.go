package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/vcfbatch/internal/cliconfig"
	"github.com/bft-labs/vcfbatch/internal/watch"
	"github.com/bft-labs/vcfbatch/pkg/compress"
	logpkg "github.com/bft-labs/vcfbatch/pkg/log"
	"github.com/bft-labs/vcfbatch/pkg/vcfbatch"
)

const helpDescription = `
Split a large VCF file into numbered batch files, each carrying the full
header block plus a fixed number of data lines.

Highlights:
  - Reads plain or BGZF-compressed input (.vcf or .vcf.gz).
  - Optionally BGZF-compresses each batch for random-access tooling.
  - One sequential pass; any I/O error aborts the run with a non-zero exit.
  - Watch mode splits new files as they land in a directory.
`

var exampleUsage = strings.TrimSpace(`
  vcfbatch cohort.vcf.gz batches/ --batch-size 10000
  vcfbatch cohort.vcf batches/ --compression-level best
  vcfbatch incoming/ batches/ --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "vcfbatch <input> <output-dir>",
		Short:   "Split a large VCF file into fixed-size batch files",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(2),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			cfg.OutputDir = args[1]

			// Load config file first (default ~/.vcfbatch/config.toml), then
			// env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level := compress.ParseLevel(cfg.CompressionLevel)
			if cfg.CompressionLevel != "" && !level.Enabled() {
				log.Warn().Str("name", cfg.CompressionLevel).Msg("unrecognized compression level, writing uncompressed")
			}

			logger := logpkg.NewZerologAdapterWithLogger(log)

			if cfg.Watch {
				return runWatch(cfg, level, logger)
			}

			start := time.Now()
			res, err := vcfbatch.Run(context.Background(), vcfbatch.Config{
				InputPath:   cfg.InputPath,
				OutputDir:   cfg.OutputDir,
				BatchSize:   cfg.BatchSize,
				Compression: level,
			}, vcfbatch.WithLogger(logger))
			if err != nil {
				return err
			}

			log.Info().
				Int("batches", res.Batches).
				Int("batch_size", cfg.BatchSize).
				Str("output_dir", cfg.OutputDir).
				Dur("elapsed", time.Since(start)).
				Msg("done")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.vcfbatch/config.toml)")
	root.Flags().IntVarP(&cfg.BatchSize, "batch-size", "b", cfg.BatchSize, "data lines per batch file, excluding the header")
	root.Flags().StringVarP(&cfg.CompressionLevel, "compression-level", "c", cfg.CompressionLevel, `BGZF compression level: "fast", "default" or "best" (unset: no compression)`)
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "treat <input> as a directory and split new VCF files as they appear")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "settle delay before a newly seen file is split (watch mode)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("vcfbatch")
		os.Exit(1)
	}
}

// runWatch runs watch mode until interrupted. Individual split failures are
// logged by the watcher and do not stop watching.
func runWatch(cfg cliconfig.Config, level compress.Level, logger *logpkg.ZerologAdapter) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(
		watch.Config{
			InputDir:  cfg.InputPath,
			OutputDir: cfg.OutputDir,
			Debounce:  cfg.Debounce,
		},
		func(ctx context.Context, inputPath, outputDir string) error {
			_, err := vcfbatch.Run(ctx, vcfbatch.Config{
				InputPath:   inputPath,
				OutputDir:   outputDir,
				BatchSize:   cfg.BatchSize,
				Compression: level,
			}, vcfbatch.WithLogger(logger))
			return err
		},
		logger,
	)

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
