package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/ubench/internal/errors"
)

var testBenches = []string{"sort", "sort/adaptive", "fib"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("ubench", args, io.Discard, testBenches)
}

// TestParseConfig_Defaults verifies the zero-flag configuration.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Bench != DefaultBench {
		t.Errorf("Bench = %q, want %q", cfg.Bench, DefaultBench)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want %d", cfg.Iterations, DefaultIterations)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Quiet || cfg.Verbose || cfg.TUI || cfg.NoColor {
		t.Errorf("boolean flags should default to false: %+v", cfg)
	}
	if cfg.OutputFile != "" || cfg.Listen != "" {
		t.Errorf("string flags should default to empty: %+v", cfg)
	}
}

// TestParseConfig_Flags verifies explicit flags are honored, including the
// short aliases.
func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t, "-bench", "fib", "-i", "500", "-timeout", "5s", "-q", "-o", "out.txt")
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Bench != "fib" {
		t.Errorf("Bench = %q, want %q", cfg.Bench, "fib")
	}
	if cfg.Iterations != 500 {
		t.Errorf("Iterations = %d, want 500", cfg.Iterations)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
	if cfg.OutputFile != "out.txt" {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "out.txt")
	}
}

// TestParseConfig_Validation verifies the rejection of unusable values.
func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown benchmark", []string{"-bench", "quicksort"}},
		{"zero iterations", []string{"-iterations", "0"}},
		{"negative iterations", []string{"-i", "-3"}},
		{"zero timeout", []string{"-timeout", "0s"}},
		{"tui with quiet", []string{"-tui", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

// TestParseConfig_Help verifies --help surfaces flag.ErrHelp for the caller
// to exit 0.
func TestParseConfig_Help(t *testing.T) {
	var buf strings.Builder
	_, err := ParseConfig("ubench", []string{"--help"}, &buf, testBenches)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(strings.ToLower(buf.String()), "usage") {
		t.Errorf("usage text missing from output: %q", buf.String())
	}
}

// TestEnvOverrides verifies the precedence chain: CLI flags beat environment
// variables, which beat defaults.
func TestEnvOverrides(t *testing.T) {
	t.Run("env value applies when flag is absent", func(t *testing.T) {
		t.Setenv(EnvPrefix+"ITERATIONS", "25")
		t.Setenv(EnvPrefix+"BENCH", "sort")
		t.Setenv(EnvPrefix+"QUIET", "yes")
		t.Setenv(EnvPrefix+"TIMEOUT", "90s")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Iterations != 25 {
			t.Errorf("Iterations = %d, want 25", cfg.Iterations)
		}
		if cfg.Bench != "sort" {
			t.Errorf("Bench = %q, want %q", cfg.Bench, "sort")
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
		if cfg.Timeout != 90*time.Second {
			t.Errorf("Timeout = %s, want 90s", cfg.Timeout)
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"ITERATIONS", "25")

		cfg, err := parse(t, "-iterations", "7")
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Iterations != 7 {
			t.Errorf("Iterations = %d, want 7 (flag over env)", cfg.Iterations)
		}
	})

	t.Run("short alias blocks env override", func(t *testing.T) {
		t.Setenv(EnvPrefix+"ITERATIONS", "25")

		cfg, err := parse(t, "-i", "9")
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Iterations != 9 {
			t.Errorf("Iterations = %d, want 9 (alias over env)", cfg.Iterations)
		}
	})

	t.Run("invalid env values are ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"ITERATIONS", "many")
		t.Setenv(EnvPrefix+"TIMEOUT", "soon")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Iterations != DefaultIterations {
			t.Errorf("Iterations = %d, want default %d", cfg.Iterations, DefaultIterations)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("Timeout = %s, want default %s", cfg.Timeout, DefaultTimeout)
		}
	})

	t.Run("invalid env bench still fails validation", func(t *testing.T) {
		t.Setenv(EnvPrefix+"BENCH", "quicksort")

		_, err := parse(t)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("error = %v, want ConfigError", err)
		}
	})
}

// TestParseBoolEnv covers the accepted spellings.
func TestParseBoolEnv(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "Yes"} {
		if !parseBoolEnv(v, false) {
			t.Errorf("parseBoolEnv(%q, false) = false, want true", v)
		}
	}
	for _, v := range []string{"false", "0", "no", "NO"} {
		if parseBoolEnv(v, true) {
			t.Errorf("parseBoolEnv(%q, true) = true, want false", v)
		}
	}
	if !parseBoolEnv("maybe", true) || parseBoolEnv("maybe", false) {
		t.Error("parseBoolEnv should return the default for unrecognized values")
	}
}
