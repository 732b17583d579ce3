// Package watch monitors a directory for new VCF files and splits each one
// as it appears.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/vcfbatch/internal/ports"
)

// SplitFunc splits one input file into the given output directory.
type SplitFunc func(ctx context.Context, inputPath, outputDir string) error

// Config holds configuration for the watcher.
type Config struct {
	// InputDir is the directory to watch for new .vcf/.vcf.gz files.
	InputDir string

	// OutputDir is the root output directory; each input file is split
	// into a subdirectory named after the file's stem.
	OutputDir string

	// Debounce is how long a file must stay quiet after a create/write
	// event before it is split.
	Debounce time.Duration
}

// Watcher watches a directory and runs one split per settled VCF file.
// A failed split is logged and watching continues; the watcher supervises
// runs rather than sharing their fatal-error domain.
type Watcher struct {
	config Config
	split  SplitFunc
	logger ports.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup
}

// New creates a watcher with the given configuration.
func New(config Config, split SplitFunc, logger ports.Logger) *Watcher {
	return &Watcher{
		config: config,
		split:  split,
		logger: logger,
		timers: make(map[string]*time.Timer),
	}
}

// Run watches the input directory until the context is canceled. In-flight
// splits are allowed to finish before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.config.InputDir, err)
	}

	w.logger.Info("watching directory",
		ports.String("dir", w.config.InputDir),
		ports.Duration("debounce", w.config.Debounce))

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				w.wg.Wait()
				return nil
			}
			if !isVCFName(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.debounce(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				w.wg.Wait()
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

// debounce schedules a split for path, resetting the timer on repeated
// events so the file is handled once writes settle. The WaitGroup is
// incremented here, while scheduling, so Run's Wait always sees a timer
// that has been armed; whoever prevents the callback from running gives
// the count back.
func (w *Watcher) debounce(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok && t.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timers[path] = time.AfterFunc(w.config.Debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		w.handle(ctx, path)
	})
}

func (w *Watcher) handle(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	outDir := filepath.Join(w.config.OutputDir, stem(path))
	if err := w.split(ctx, path, outDir); err != nil {
		w.logger.Error("split failed",
			ports.String("input", path),
			ports.Err(err))
		return
	}
	w.logger.Info("split finished",
		ports.String("input", path),
		ports.String("output_dir", outDir))
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		// A timer that already fired runs its callback and calls Done
		// itself; only a successful Stop leaves the count to give back.
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, path)
	}
}

// isVCFName reports whether name looks like a VCF input file.
func isVCFName(name string) bool {
	return strings.HasSuffix(name, ".vcf") || strings.HasSuffix(name, ".vcf.gz")
}

// stem returns the file base name without its .vcf/.vcf.gz suffix, used to
// name the per-input output subdirectory.
func stem(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, ".vcf")
}
