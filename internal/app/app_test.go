package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/ubench/internal/bench"
	"github.com/agbru/ubench/internal/bench/mocks"
	apperrors "github.com/agbru/ubench/internal/errors"
)

// TestNew tests argument parsing through the application constructor.
func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a, err := New([]string{"ubench"}, io.Discard)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if a.Config.Bench != "all" || a.Config.Iterations != 1 {
			t.Errorf("defaults = %+v", a.Config)
		}
		if a.Factory == nil {
			t.Error("default factory should be installed")
		}
	})

	t.Run("invalid flag value", func(t *testing.T) {
		_, err := New([]string{"ubench", "--iterations", "0"}, io.Discard)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("New returned %v, want ConfigError", err)
		}
	})

	t.Run("help", func(t *testing.T) {
		_, err := New([]string{"ubench", "--help"}, io.Discard)
		if !IsHelpError(err) {
			t.Errorf("--help should yield a help error, got %v", err)
		}
		if IsHelpError(errors.New("other")) {
			t.Error("unrelated errors are not help errors")
		}
		if !IsHelpError(flag.ErrHelp) {
			t.Error("flag.ErrHelp is a help error")
		}
	})
}

// TestRun_Quiet verifies the quiet suite run prints the bare kernel output
// and exits zero.
func TestRun_Quiet(t *testing.T) {
	a, err := New([]string{"ubench", "--quiet", "--bench", "fib", "--no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := a.Run(context.Background(), &buf)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want 0", code)
	}
	if buf.String() != "817770325994397771\n" {
		t.Errorf("quiet output = %q, want the bare kernel output", buf.String())
	}
}

// TestRun_Suite verifies the full suite run over the real registry.
func TestRun_Suite(t *testing.T) {
	a, err := New([]string{"ubench", "--no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := a.Run(context.Background(), &buf)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want 0\noutput:\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Global Status: Success") {
		t.Errorf("suite output missing success status:\n%s", buf.String())
	}
}

// TestRun_Mismatch verifies a kernel printing the wrong answer fails the run
// with the mismatch exit code.
func TestRun_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lying := mocks.NewMockBenchmark(ctrl)
	lying.EXPECT().Name().Return("lying").AnyTimes()
	lying.EXPECT().Golden().Return("right\n").AnyTimes()
	lying.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bench.Result{Output: "wrong\n", Iterations: 1, Best: time.Microsecond}, nil).
		AnyTimes()

	factory := mocks.NewMockFactory(ctrl)
	factory.EXPECT().List().Return([]string{"lying"}).AnyTimes()
	factory.EXPECT().Get("lying").Return(lying, true).AnyTimes()
	factory.EXPECT().GetAll().Return([]bench.Benchmark{lying}).AnyTimes()

	a, err := New([]string{"ubench", "--quiet", "--bench", "lying"}, io.Discard, WithFactory(factory))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := a.Run(context.Background(), &buf)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
}

// TestHasVersionFlag covers the pre-parse version detection.
func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--bench", "fib", "--version"}) {
		t.Error("--version should be detected anywhere in the arguments")
	}
	if !HasVersionFlag([]string{"-version"}) {
		t.Error("-version should be detected")
	}
	if HasVersionFlag([]string{"--bench", "fib"}) {
		t.Error("version flag should not be detected when absent")
	}
}

// TestPrintVersion verifies the banner names the binary and version.
func TestPrintVersion(t *testing.T) {
	var buf strings.Builder
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "ubench") || !strings.Contains(buf.String(), Version) {
		t.Errorf("version banner = %q", buf.String())
	}
}
