// Command sortbench sorts the fixed ten-element sequence with bubble sort and
// prints the result, one integer per line. It takes no arguments, reads no
// environment, and always exits 0.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/agbru/ubench/internal/sorting"
)

func main() {
	xs := sorting.Input()
	sorting.BubbleSort(xs)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range xs {
		fmt.Fprintln(w, v)
	}
}
