package plan

import "fmt"

// defaultStudyGoals are the reading goals every week starts with
var defaultStudyGoals = []string{
	"Read the assigned chapter sections",
	"Work through the chapter exercises",
	"Summarize key theorems and proofs in notes",
}

// defaultImplementationGoals are the coding goals every week starts with
func defaultImplementationGoals(topic string) []string {
	return []string{
		fmt.Sprintf("Implement: %s", topic),
		"Write unit tests for the implementation",
		"Benchmark and compare against expected growth rate",
	}
}

// week builds a WeekDef with the default goal template for a topic
func week(title, topic string) WeekDef {
	return WeekDef{
		Title:          title,
		StudyGoals:     defaultStudyGoals,
		Implementation: defaultImplementationGoals(topic),
	}
}

// Default returns the built-in 7-phase, 48-week CLRS study program
func Default() *Program {
	return &Program{
		Name: "CLRS 48-Week Study Program",
		Phases: []PhaseDef{
			{
				Name: "Foundations",
				Weeks: []WeekDef{
					week("Growth of Functions & Algorithm Analysis", "timing tools and growth analysis"),
					week("Getting Started: Insertion Sort & Merge Sort", "insertion sort and merge sort"),
					week("Divide-and-Conquer & Recurrences", "maximum-subarray and Strassen multiplication"),
					week("Probabilistic Analysis & Randomized Algorithms", "hiring problem and random permutations"),
					week("Summations & Mathematical Foundations", "summation helpers and bound checkers"),
					week("Foundations Review & Benchmark Harness", "reusable benchmark harness"),
				},
			},
			{
				Name: "Sorting and Order Statistics",
				Weeks: []WeekDef{
					week("Heapsort & Priority Queues", "binary heap and heapsort"),
					week("Quicksort", "quicksort with randomized pivot"),
					week("Sorting in Linear Time", "counting sort, radix sort, bucket sort"),
					week("Medians & Order Statistics", "randomized select and median-of-medians"),
					week("Sorting Lower Bounds & Comparisons", "decision-tree counter experiments"),
					week("Sorting Review: Comparative Benchmarks", "head-to-head sorting benchmark suite"),
				},
			},
			{
				Name: "Data Structures",
				Weeks: []WeekDef{
					week("Stacks, Queues & Linked Lists", "stack, queue, and linked list"),
					week("Hash Tables", "chained and open-addressing hash tables"),
					week("Binary Search Trees", "unbalanced BST with full operations"),
					week("Red-Black Trees I: Insertion", "red-black tree insertion"),
					week("Red-Black Trees II: Deletion & Rotations", "red-black tree deletion"),
					week("Augmenting Data Structures", "order-statistic tree"),
					week("Interval Trees & Treaps", "interval tree and treap"),
					week("Data Structures Review: Dictionary Benchmarks", "dictionary benchmark comparisons"),
				},
			},
			{
				Name: "Advanced Design and Analysis Techniques",
				Weeks: []WeekDef{
					week("Dynamic Programming I: Rod Cutting & LCS", "rod cutting and longest common subsequence"),
					week("Dynamic Programming II: Optimal BSTs", "matrix-chain order and optimal BSTs"),
					week("Greedy Algorithms", "activity selection and Huffman codes"),
					week("Amortized Analysis", "dynamic table with amortized counters"),
					week("Backtracking & Branch-and-Bound", "n-queens and knapsack solvers"),
					week("Design Techniques Review: DP Case Studies", "edit distance case study"),
				},
			},
			{
				Name: "Advanced Data Structures",
				Weeks: []WeekDef{
					week("B-Trees", "B-tree with disk-friendly node size"),
					week("Fibonacci Heaps", "Fibonacci heap with decrease-key"),
					week("van Emde Boas Trees", "van Emde Boas tree"),
					week("Disjoint-Set Forests", "union-find with path compression"),
					week("Splay Trees & Self-Adjusting Structures", "splay tree"),
					week("Advanced Structures Review", "priority-queue benchmark comparisons"),
				},
			},
			{
				Name: "Graph Algorithms",
				Weeks: []WeekDef{
					week("Graph Representations & Breadth-First Search", "adjacency list/matrix and BFS"),
					week("Depth-First Search & Topological Sort", "DFS with edge classification"),
					week("Strongly Connected Components", "Kosaraju and Tarjan SCC"),
					week("Minimum Spanning Trees", "Kruskal and Prim"),
					week("Single-Source Shortest Paths", "Dijkstra and Bellman-Ford"),
					week("All-Pairs Shortest Paths", "Floyd-Warshall and Johnson"),
					week("Maximum Flow", "Edmonds-Karp and push-relabel"),
					week("Graph Algorithms Review: Full Suite", "graph algorithm test corpus"),
				},
			},
			{
				Name: "Selected Topics",
				Weeks: []WeekDef{
					week("Multithreaded Algorithms", "parallel merge sort with worker pools"),
					week("Matrix Operations", "LU decomposition and matrix inversion"),
					week("Linear Programming", "simplex method"),
					week("Polynomials & the FFT", "fast Fourier transform"),
					week("Number-Theoretic Algorithms", "modular exponentiation and Miller-Rabin"),
					week("String Matching", "KMP and Rabin-Karp"),
					week("Computational Geometry", "convex hull and segment intersection"),
					week("NP-Completeness & Approximation Algorithms", "vertex-cover and TSP approximations"),
				},
			},
		},
	}
}
