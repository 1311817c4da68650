package definition

import (
	"fmt"
	"sort"
)

// cycleError lists the nodes that could not be ordered.
type cycleError struct {
	nodes []int
}

func (e *cycleError) Error() string {
	return fmt.Sprintf("dependency cycle among %d definitions", len(e.nodes))
}

// topoSort returns node indices so that every node comes after the nodes
// it depends on. depsFn(i) yields the indices i depends on.
//
// The result is deterministic: when several nodes are ready, the smallest
// index goes first. On a cycle the error is a *cycleError.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		var stuck []int

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, i)
			}
		}

		return nil, &cycleError{nodes: stuck}
	}

	return order, nil
}

// dependencyOrder orders definitions so referenced deserializers come
// first. References to unknown or duplicate names are ignored here.
func dependencyOrder(defs []Definition) ([]int, error) {
	index := map[string]int{}
	for i, d := range defs {
		if _, dup := index[d.Name]; !dup {
			index[d.Name] = i
		}
	}

	return topoSort(len(defs), func(i int) []int {
		var deps []int

		for _, name := range defs[i].Dependencies() {
			if j, ok := index[name]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})
}
