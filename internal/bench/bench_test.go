package bench

import (
	"context"
	"strings"
	"testing"
)

// TestNewDefaultFactory verifies the standard kernel registry.
func TestNewDefaultFactory(t *testing.T) {
	f := NewDefaultFactory()

	wantNames := []string{"sort", "sort/adaptive", "fib"}
	got := f.List()
	if len(got) != len(wantNames) {
		t.Fatalf("List() = %v, want %v", got, wantNames)
	}
	for i, name := range wantNames {
		if got[i] != name {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], name)
		}
	}

	t.Run("Get returns registered benchmarks", func(t *testing.T) {
		for _, name := range wantNames {
			b, ok := f.Get(name)
			if !ok {
				t.Fatalf("Get(%q) not found", name)
			}
			if b.Name() != name {
				t.Errorf("Get(%q).Name() = %q", name, b.Name())
			}
		}
	})

	t.Run("Get rejects unknown names", func(t *testing.T) {
		if _, ok := f.Get("quicksort"); ok {
			t.Error("Get(\"quicksort\") should not be found")
		}
	})

	t.Run("GetAll preserves registration order", func(t *testing.T) {
		all := f.GetAll()
		for i, b := range all {
			if b.Name() != wantNames[i] {
				t.Errorf("GetAll()[%d].Name() = %q, want %q", i, b.Name(), wantNames[i])
			}
		}
	})
}

// TestKernels_OutputMatchesGolden runs every registered kernel once and
// checks its output against its own golden value.
func TestKernels_OutputMatchesGolden(t *testing.T) {
	for _, b := range NewDefaultFactory().GetAll() {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := b.Run(context.Background(), nil, 0, 1)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if res.Output != b.Golden() {
				t.Errorf("Run() output = %q, want %q", res.Output, b.Golden())
			}
			if res.Iterations != 1 {
				t.Errorf("Run() iterations = %d, want 1", res.Iterations)
			}
		})
	}
}

// TestKernels_GoldenValues pins the exact parity output of the two kernels.
func TestKernels_GoldenValues(t *testing.T) {
	f := NewDefaultFactory()

	sortBench, _ := f.Get("sort")
	if want := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"; sortBench.Golden() != want {
		t.Errorf("sort golden = %q, want %q", sortBench.Golden(), want)
	}

	fibBench, _ := f.Get("fib")
	if want := "817770325994397771\n"; fibBench.Golden() != want {
		t.Errorf("fib golden = %q, want %q", fibBench.Golden(), want)
	}
}

// TestKernels_ProgressReporting verifies iterations drive progress updates
// up to 1.0 without blocking when the channel consumer is slow.
func TestKernels_ProgressReporting(t *testing.T) {
	b, _ := NewDefaultFactory().Get("fib")

	progressChan := make(chan ProgressUpdate, 100)
	res, err := b.Run(context.Background(), progressChan, 3, 50)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Iterations != 50 {
		t.Errorf("iterations = %d, want 50", res.Iterations)
	}
	close(progressChan)

	var last ProgressUpdate
	count := 0
	for update := range progressChan {
		if update.BenchIndex != 3 {
			t.Errorf("update bench index = %d, want 3", update.BenchIndex)
		}
		last = update
		count++
	}
	if count == 0 {
		t.Fatal("no progress updates received")
	}
	if last.Value != 1.0 {
		t.Errorf("final progress = %f, want 1.0", last.Value)
	}
}

// TestKernels_CanceledContext verifies runs stop between iterations when the
// context is already canceled.
func TestKernels_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, b := range NewDefaultFactory().GetAll() {
		if _, err := b.Run(ctx, nil, 0, 1000); err == nil {
			t.Errorf("%s: Run() with canceled context should fail", b.Name())
		}
	}
}

// TestKernels_BestDuration verifies the best-iteration timing is populated.
func TestKernels_BestDuration(t *testing.T) {
	b, _ := NewDefaultFactory().Get("sort")
	res, err := b.Run(context.Background(), nil, 0, 10)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Best < 0 {
		t.Errorf("best duration is negative: %v", res.Best)
	}
	if !strings.HasSuffix(res.Output, "10\n") {
		t.Errorf("unexpected output tail: %q", res.Output)
	}
}
