// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graphutil contains a small directed graph type used to represent call graphs, and the graph algorithms
// the analyses need, implemented on top of existing graph libraries.
package graphutil

import (
	"github.com/yourbasic/graph"
	"golang.org/x/exp/slices"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Digraph is a directed graph over the nodes 0 .. Order()-1, without multi-edges.
// It implements graph.Iterator, so it can be used with the algorithms of github.com/yourbasic/graph.
// Successors are visited in the order the edges were added.
type Digraph struct {
	succ  [][]int
	edges map[[2]int]bool
}

// NewDigraph returns a graph with n nodes and no edges.
func NewDigraph(n int) *Digraph {
	return &Digraph{
		succ:  make([][]int, n),
		edges: map[[2]int]bool{},
	}
}

// AddEdge adds the edge from -> to. It returns false if the edge was already in the graph.
func (g *Digraph) AddEdge(from, to int) bool {
	e := [2]int{from, to}
	if g.edges[e] {
		return false
	}
	g.edges[e] = true
	g.succ[from] = append(g.succ[from], to)
	return true
}

// HasEdge returns true if the edge from -> to is in the graph.
func (g *Digraph) HasEdge(from, to int) bool {
	return g.edges[[2]int{from, to}]
}

// NumEdges returns the number of distinct edges in the graph.
func (g *Digraph) NumEdges() int {
	return len(g.edges)
}

// Order implements the order of the graph.Iterator interface for the Digraph
func (g *Digraph) Order() int {
	return len(g.succ)
}

// Visit implements the graph.Iterator interface for the Digraph
func (g *Digraph) Visit(v int, do func(w int, c int64) (skip bool)) (aborted bool) {
	if v < 0 || v >= len(g.succ) {
		return false
	}
	for _, w := range g.succ[v] {
		if do(w, 1) {
			return true
		}
	}
	return false
}

// RecursiveComponents returns the strongly connected components of g that contain a cycle: components with at
// least two nodes, and single nodes with a self-edge. Nodes are sorted inside each component, and components are
// sorted by their smallest node.
func RecursiveComponents(g *Digraph) [][]int {
	var result [][]int
	for _, component := range graph.StrongComponents(g) {
		if len(component) == 1 && !g.HasEdge(component[0], component[0]) {
			continue
		}
		c := append([]int(nil), component...)
		slices.Sort(c)
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b []int) bool { return a[0] < b[0] })
	return result
}

// SelfLoops returns the number of nodes of g with an edge to themselves.
func SelfLoops(g *Digraph) int {
	return graph.Check(g).Loops
}

// ReachableFrom returns the sorted list of nodes reachable from root, root included.
func ReachableFrom(g *Digraph, root int) []int {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.Order(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for v, succ := range g.succ {
		for _, w := range succ {
			// the gonum graph does not accept self-edges, and they do not change reachability
			if v != w {
				dg.SetEdge(dg.NewEdge(simple.Node(v), simple.Node(w)))
			}
		}
	}
	var reached []int
	bfs := traverse.BreadthFirst{
		Visit: func(n gonum.Node) { reached = append(reached, int(n.ID())) },
	}
	bfs.Walk(dg, simple.Node(root), nil)
	slices.Sort(reached)
	return reached
}
