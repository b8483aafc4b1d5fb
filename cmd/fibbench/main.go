// Command fibbench computes the 1000th Fibonacci term on wrapping int64
// arithmetic and prints the single resulting value. It takes no arguments,
// reads no environment, and always exits 0.
package main

import (
	"fmt"

	"github.com/agbru/ubench/internal/fibonacci"
)

func main() {
	fmt.Println(fibonacci.Tail(fibonacci.DefaultTerm))
}
