// Package sorting implements the in-place bubble sort benchmark kernel.
//
// The kernel operates on a fixed ten-element descending sequence and sorts it
// with pairwise adjacent comparisons and swaps. Both the fixed-pass schedule
// of the reference workload and an adaptive early-exit variant are provided;
// they produce identical output for every input.
package sorting

// InputSize is the length of the fixed benchmark input sequence.
const InputSize = 10

// Input returns a fresh copy of the fixed benchmark input: the integers
// 10 down to 1 in descending order. Callers own the returned slice and may
// mutate it freely.
//
// Returns:
//   - []int: A new slice containing {10, 9, 8, 7, 6, 5, 4, 3, 2, 1}.
func Input() []int {
	xs := make([]int, InputSize)
	for i := range xs {
		xs[i] = InputSize - i
	}
	return xs
}

// BubbleSort sorts xs in place into non-descending order using the fixed-pass
// bubble sort schedule: len(xs)-1 outer passes, with the inner pass shrinking
// by one each iteration because the largest unsorted element is guaranteed
// placed at the end after each pass.
//
// The pass count does not depend on the data; an already-sorted slice still
// runs every pass. This matches the reference workload exactly and keeps the
// kernel's operation count deterministic, which is what a micro-benchmark
// wants. Use [BubbleSortAdaptive] when early convergence should end the run.
//
// Parameters:
//   - xs: The slice to sort in place. A nil or single-element slice is a no-op.
func BubbleSort(xs []int) {
	n := len(xs)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if xs[j] > xs[j+1] {
				xs[j], xs[j+1] = xs[j+1], xs[j]
			}
		}
	}
}

// BubbleSortAdaptive sorts xs in place with the same pass structure as
// [BubbleSort] but stops as soon as a full pass performs no swap. The final
// contents are identical to BubbleSort for every input; only the number of
// passes differs.
//
// Parameters:
//   - xs: The slice to sort in place.
func BubbleSortAdaptive(xs []int) {
	n := len(xs)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if xs[j] > xs[j+1] {
				xs[j], xs[j+1] = xs[j+1], xs[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// IsSorted reports whether xs is in non-descending order.
//
// Parameters:
//   - xs: The slice to inspect.
//
// Returns:
//   - bool: true if xs[i] <= xs[i+1] for every adjacent pair.
func IsSorted(xs []int) bool {
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] > xs[i+1] {
			return false
		}
	}
	return true
}
