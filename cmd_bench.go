package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/example/algotrack/internal/algorithms"
	"github.com/example/algotrack/internal/bench"
	"github.com/spf13/cobra"
)

var (
	benchAlgo  string
	benchSizes string
	benchRuns  int
	benchSeed  int64

	growthMax  int
	growthStep int
)

// benchRunner pairs an algorithm under test with its input generator
type benchRunner struct {
	run func(data []int)
	gen func(g *algorithms.Generator, size int) []int
}

func benchRunners() map[string]benchRunner {
	return map[string]benchRunner{
		"linear-search": {
			// Search for a value that is never present: worst case
			run: func(data []int) { algorithms.LinearSearch(data, -1) },
			gen: func(g *algorithms.Generator, size int) []int { return g.RandomList(size, 1, 1000) },
		},
		"binary-search": {
			run: func(data []int) { algorithms.BinarySearch(data, -1) },
			gen: func(g *algorithms.Generator, size int) []int { return g.SortedList(size, 1, 1000) },
		},
		"bubble-sort": {
			run: func(data []int) { algorithms.BubbleSort(data) },
			gen: func(g *algorithms.Generator, size int) []int { return g.RandomList(size, 1, 1000) },
		},
		"merge-sort": {
			run: func(data []int) { algorithms.MergeSort(data) },
			gen: func(g *algorithms.Generator, size int) []int { return g.RandomList(size, 1, 1000) },
		},
		"fib-iterative": {
			run: func(data []int) { algorithms.FibIterative(len(data)) },
			gen: func(g *algorithms.Generator, size int) []int { return make([]int, size) },
		},
	}
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time an algorithm across input sizes and estimate its complexity",
	RunE: func(cmd *cobra.Command, args []string) error {
		runners := benchRunners()
		runner, ok := runners[benchAlgo]
		if !ok {
			names := make([]string, 0, len(runners))
			for name := range runners {
				names = append(names, name)
			}
			sort.Strings(names)
			return fmt.Errorf("unknown algorithm %q, available: %s", benchAlgo, strings.Join(names, ", "))
		}

		sizes, err := parseSizes(benchSizes)
		if err != nil {
			return err
		}

		gen := algorithms.NewGenerator(benchSeed)
		timer := bench.NewTimer()
		results := timer.BenchmarkSizes(runner.run,
			func(size int) []int { return runner.gen(gen, size) },
			sizes, benchRuns)

		fmt.Printf("%s (%d runs per size):\n", benchAlgo, benchRuns)
		times := make([]float64, len(results))
		for i, r := range results {
			times[i] = float64(r.Average)
			fmt.Printf("  n=%-8d %12v  ±%v\n", r.Size, r.Average, r.StdDev)
		}

		complexity, err := bench.EstimateComplexity(sizes, times)
		if err != nil {
			return err
		}
		fmt.Printf("Estimated complexity: %s\n", complexity)
		return nil
	},
}

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Print the growth of the canonical complexity functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		family := bench.GrowthFamily()
		table := bench.GrowthTable(family, growthMax, growthStep)

		fmt.Printf("%8s", "n")
		for _, f := range family {
			fmt.Printf(" %14s", f.Name)
		}
		fmt.Println()
		for i, n := range table.N {
			fmt.Printf("%8d", n)
			for _, f := range family {
				fmt.Printf(" %14.4g", table.Values[f.Name][i])
			}
			fmt.Println()
		}
		return nil
	},
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.Atoi(part)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) < 2 {
		return nil, fmt.Errorf("need at least two sizes to estimate growth")
	}
	return sizes, nil
}

func init() {
	benchCmd.Flags().StringVar(&benchAlgo, "algo", "merge-sort", "algorithm to benchmark")
	benchCmd.Flags().StringVar(&benchSizes, "sizes", "1000,2000,4000,8000,16000", "comma-separated input sizes")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 5, "runs per input size")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "seed for input generation")
	growthCmd.Flags().IntVar(&growthMax, "max", 64, "largest n to evaluate")
	growthCmd.Flags().IntVar(&growthStep, "step", 8, "step between evaluated n values")
	benchCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(benchCmd)
}
