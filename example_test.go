package sluice_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weirlab/sluice"
)

// This example builds a small pipeline that filters and transforms words on a
// pool of workers. Parallel jobs deliver results in completion order, so the
// output is sorted before printing to keep it deterministic.
func Example() {
	words := sluice.FromSlice([]string{"sand", "gold", "silt", "ore", "gravel"}, nil)

	job := sluice.ParFilter(sluice.Fork(words), func(w string) (bool, error) {
		return len(w) == 4, nil
	})
	upper := sluice.ParMap(job, func(w string) (string, error) {
		return strings.ToUpper(w), nil
	})

	out, err := sluice.ToSlice(sluice.Join(upper, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sort.Strings(out)
	fmt.Println(out)
	// Output:
	// [GOLD SAND SILT]
}

func ExampleMap() {
	squares := sluice.Map(sluice.Range(1, 5), func(x int) (int, error) {
		return x * x, nil
	})

	err := sluice.ForEach(squares, func(x int) error {
		fmt.Println(x)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1
	// 4
	// 9
	// 16
}

func ExampleBatch() {
	batches := sluice.Batch(sluice.Range(0, 7), 3)

	err := sluice.ForEach(batches, func(batch []int) error {
		fmt.Println(batch)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6]
}

func ExampleFirst() {
	// First stops the pipeline as soon as a match is found, so only a prefix
	// of the range is ever produced.
	matches := sluice.Filter(sluice.Range(0, 1000000), func(x int) (bool, error) {
		return x > 10 && x%7 == 0, nil
	})

	value, found, err := sluice.First(matches)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(value, found)
	// Output:
	// 14 true
}

func ExampleJoin_ordered() {
	// With a single worker a parallel job preserves the input order.
	job := sluice.ParMap(sluice.Fork(sluice.Range(0, 5)), func(x int) (int, error) {
		return x * 10, nil
	})

	out, err := sluice.ToSlice(sluice.Join(job, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output:
	// [0 10 20 30 40]
}
