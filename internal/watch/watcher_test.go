package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/vcfbatch/pkg/log"
)

type recordingSplit struct {
	mu    sync.Mutex
	calls []string
	outs  []string
	done  chan struct{}
}

func newRecordingSplit() *recordingSplit {
	return &recordingSplit{done: make(chan struct{}, 8)}
}

func (r *recordingSplit) split(_ context.Context, inputPath, outputDir string) error {
	r.mu.Lock()
	r.calls = append(r.calls, inputPath)
	r.outs = append(r.outs, outputDir)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *recordingSplit) snapshot() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...), append([]string(nil), r.outs...)
}

func TestWatcherSplitsNewFile(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	rec := newRecordingSplit()
	w := New(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Debounce:  50 * time.Millisecond,
	}, rec.split, log.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	// Give the watcher time to register before creating the file.
	time.Sleep(100 * time.Millisecond)

	input := filepath.Join(inDir, "cohort.vcf")
	if err := os.WriteFile(input, []byte("#h\n1\tx\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	select {
	case <-rec.done:
	case <-time.After(5 * time.Second):
		t.Fatal("split not triggered for new file")
	}

	calls, outs := rec.snapshot()
	if len(calls) != 1 || calls[0] != input {
		t.Errorf("split calls = %v, want exactly %q", calls, input)
	}
	if want := filepath.Join(outDir, "cohort"); len(outs) != 1 || outs[0] != want {
		t.Errorf("split output dirs = %v, want %q", outs, want)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcherIgnoresNonVCF(t *testing.T) {
	inDir := t.TempDir()

	rec := newRecordingSplit()
	w := New(Config{
		InputDir:  inDir,
		OutputDir: t.TempDir(),
		Debounce:  20 * time.Millisecond,
	}, rec.split, log.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-rec.done:
		t.Fatal("split triggered for a non-VCF file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherWaitsForInFlightSplit(t *testing.T) {
	inDir := t.TempDir()

	started := make(chan struct{})
	release := make(chan struct{})
	split := func(context.Context, string, string) error {
		close(started)
		<-release
		return nil
	}

	w := New(Config{
		InputDir:  inDir,
		OutputDir: t.TempDir(),
		Debounce:  20 * time.Millisecond,
	}, split, log.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(inDir, "cohort.vcf"), []byte("#h\n1\tx\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("split never started")
	}

	// Cancel while the split is still running; Run must not return until
	// the split is released.
	cancel()
	select {
	case err := <-errCh:
		t.Fatalf("Run returned %v while a split was in flight", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the split finished")
	}
}

func TestWatcherCancelDuringDebounce(t *testing.T) {
	inDir := t.TempDir()

	rec := newRecordingSplit()
	w := New(Config{
		InputDir:  inDir,
		OutputDir: t.TempDir(),
		Debounce:  2 * time.Second,
	}, rec.split, log.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(inDir, "cohort.vcf"), []byte("#h\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	// Cancel inside the debounce window: the pending timer must be stopped
	// and Run must return promptly instead of waiting out the timer.
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel with a pending timer")
	}

	if calls, _ := rec.snapshot(); len(calls) != 0 {
		t.Errorf("split ran for a canceled pending timer: %v", calls)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(Config{
		InputDir:  filepath.Join(t.TempDir(), "missing"),
		OutputDir: t.TempDir(),
		Debounce:  20 * time.Millisecond,
	}, newRecordingSplit().split, log.NewNoopLogger())

	if err := w.Run(context.Background()); err == nil {
		t.Fatal("Run should fail for a missing watch directory")
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/data/cohort.vcf", want: "cohort"},
		{in: "/data/cohort.vcf.gz", want: "cohort"},
		{in: "cohort.vcf", want: "cohort"},
	}
	for _, tt := range tests {
		if got := stem(tt.in); got != tt.want {
			t.Errorf("stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
