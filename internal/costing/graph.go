package costing

// conversionGraph is a bidirectional unit graph for a single item. Arcs carry
// the factor "target units per one source unit".
type conversionGraph map[int64][]arc

type arc struct {
	unit   int64
	factor float64
}

// buildGraph turns raw edges into adjacency lists. An edge with a
// non-positive quantity on either side is unusable and contributes no arcs.
// Parallel edges between the same pair of units are all kept.
func buildGraph(edges []ConversionEdge) conversionGraph {
	g := make(conversionGraph)
	for _, e := range edges {
		if e.QtyA <= 0 || e.QtyB <= 0 {
			continue
		}
		g[e.UnitA] = append(g[e.UnitA], arc{unit: e.UnitB, factor: e.QtyB / e.QtyA})
		g[e.UnitB] = append(g[e.UnitB], arc{unit: e.UnitA, factor: e.QtyA / e.QtyB})
	}
	return g
}

// resolve finds a conversion factor from one unit to another crossing at most
// maxHops edges. It returns the factor of the first shortest path found in
// breadth-first order and the number of hops used. The identity conversion
// succeeds without touching the graph, even for units with no edges at all.
func (g conversionGraph) resolve(fromUnit, toUnit int64, maxHops int) (float64, int, bool) {
	if fromUnit == toUnit {
		return 1.0, 0, true
	}

	type state struct {
		unit   int64
		factor float64
		hops   int
	}

	queue := []state{{unit: fromUnit, factor: 1.0}}
	// minimum hop count at which each unit was reached; revisiting at an
	// equal-or-worse count is pruned, which is what terminates cycles
	visited := map[int64]int{fromUnit: 0}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.hops >= maxHops {
			continue
		}

		for _, a := range g[cur.unit] {
			nextHops := cur.hops + 1
			if seen, ok := visited[a.unit]; ok && seen <= nextHops {
				continue
			}
			factor := cur.factor * a.factor
			if a.unit == toUnit {
				return factor, nextHops, true
			}
			visited[a.unit] = nextHops
			queue = append(queue, state{unit: a.unit, factor: factor, hops: nextHops})
		}
	}

	return 0, 0, false
}
