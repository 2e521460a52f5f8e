// Package network derives the evidence network implied by a dataset:
// treatments are nodes, and an edge connects two treatments whenever at
// least one study compares them directly. Edge weights count the studies
// making each direct comparison.
//
// Connectivity matters downstream: network meta-analysis can only rank
// treatments that are linked, directly or through intermediaries, so a
// disconnected network means the dataset cannot support a joint
// analysis of all treatments.
package network

import (
	"sort"

	"github.com/nvandessel/nmasim"
)

// Comparison is one direct treatment comparison with the number of
// studies making it. A is always below B.
type Comparison struct {
	A       int
	B       int
	Studies int
}

// Graph is an undirected evidence network over treatment IDs.
type Graph struct {
	nodes   []int
	adj     map[int]map[int]int
	studies int
}

// Build derives the evidence network of ds. Only treatments that appear
// in at least one arm become nodes.
func Build(ds *nmasim.Dataset) *Graph {
	g := &Graph{adj: make(map[int]map[int]int)}

	byStudy := make(map[int][]int)
	for _, r := range ds.Rows() {
		byStudy[r.StudyID] = append(byStudy[r.StudyID], r.TreatmentID)
		if _, ok := g.adj[r.TreatmentID]; !ok {
			g.adj[r.TreatmentID] = make(map[int]int)
		}
	}
	g.studies = len(byStudy)

	for _, arms := range byStudy {
		for i := 0; i < len(arms); i++ {
			for j := i + 1; j < len(arms); j++ {
				g.adj[arms[i]][arms[j]]++
				g.adj[arms[j]][arms[i]]++
			}
		}
	}

	g.nodes = make([]int, 0, len(g.adj))
	for t := range g.adj {
		g.nodes = append(g.nodes, t)
	}
	sort.Ints(g.nodes)
	return g
}

// Treatments returns the treatment IDs present in the network,
// ascending.
func (g *Graph) Treatments() []int {
	return append([]int(nil), g.nodes...)
}

// Studies returns the number of studies the network was built from.
func (g *Graph) Studies() int { return g.studies }

// Degree returns the number of distinct treatments compared directly
// with t, or zero when t is not in the network.
func (g *Graph) Degree(t int) int {
	return len(g.adj[t])
}

// Weight returns the number of studies comparing a and b directly.
func (g *Graph) Weight(a, b int) int {
	return g.adj[a][b]
}

// Comparisons returns every direct comparison once, with A < B, sorted
// by A then B.
func (g *Graph) Comparisons() []Comparison {
	var comps []Comparison
	for _, a := range g.nodes {
		for b, n := range g.adj[a] {
			if a < b {
				comps = append(comps, Comparison{A: a, B: b, Studies: n})
			}
		}
	}
	sort.Slice(comps, func(i, j int) bool {
		if comps[i].A != comps[j].A {
			return comps[i].A < comps[j].A
		}
		return comps[i].B < comps[j].B
	})
	return comps
}

// Connected reports whether every treatment is reachable from every
// other through direct comparisons. Networks with fewer than two nodes
// are trivially connected.
func (g *Graph) Connected() bool {
	if len(g.nodes) < 2 {
		return true
	}
	return len(g.reachable(g.nodes[0])) == len(g.nodes)
}

// Components returns the connected components as ascending slices of
// treatment IDs, ordered by their smallest member.
func (g *Graph) Components() [][]int {
	var comps [][]int
	visited := make(map[int]bool, len(g.nodes))
	for _, start := range g.nodes {
		if visited[start] {
			continue
		}
		comp := g.reachable(start)
		for _, t := range comp {
			visited[t] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// reachable returns every treatment reachable from start, ascending,
// including start itself.
func (g *Graph) reachable(start int) []int {
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for next := range g.adj[t] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	out := make([]int, 0, len(visited))
	for t := range visited {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
