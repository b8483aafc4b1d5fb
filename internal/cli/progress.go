package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/ubench/internal/bench"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the DisplayProgress function from a
// specific spinner implementation, facilitating easier testing and
// maintenance. It defines the essential controls for a spinner: starting,
// stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface. This adapter allows the spinner library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent runs.
// It maintains the individual progress of each benchmark and computes the
// average, which provides a consolidated progress view when multiple kernels
// are running in parallel.
type ProgressState struct {
	progresses []float64
	numBenches int
}

// NewProgressState creates and initializes a new ProgressState.
//
// Parameters:
//   - numBenches: The number of benchmarks to track.
//
// Returns:
//   - *ProgressState: A pointer to the new progress state object.
func NewProgressState(numBenches int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numBenches),
		numBenches: numBenches,
	}
}

// Update records a new progress value for a specific benchmark. Updates are
// only applied for valid indices.
//
// Parameters:
//   - index: The index of the benchmark (0 to numBenches-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// benchmarks, which drives the single consolidated progress bar.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numBenches == 0 {
		return 0.0
	}
	return total / float64(ps.numBenches)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes progress updates and renders a spinner with a
// consolidated progress bar until the channel is closed. It is the CLI's
// implementation of the orchestration ProgressReporter contract and must be
// run in its own goroutine.
//
// Parameters:
//   - wg: A WaitGroup signaled when display is complete.
//   - progressChan: Channel receiving progress updates from benchmarks.
//   - numBenches: The number of concurrent benchmarks being tracked.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numBenches int, out io.Writer) {
	defer wg.Done()

	if numBenches <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numBenches)
	spin := newSpinner(spinner.WithWriter(out))
	spin.Start()
	defer spin.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	refresh := func() {
		avg := state.CalculateAverage()
		spin.UpdateSuffix(fmt.Sprintf(" [%s] %5.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
	}
	refresh()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			state.Update(update.BenchIndex, update.Value)
		case <-ticker.C:
			refresh()
		}
	}
}
