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

package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/awslabs/ar-ir-tools/analysis/config"
	"github.com/awslabs/ar-ir-tools/analysis/ir"
	"github.com/awslabs/ar-ir-tools/internal/funcutil"
	"github.com/awslabs/ar-ir-tools/internal/graphutil"
)

// EntryPoint is the name of the function from which reachability is computed in the call graph section.
const EntryPoint = "main"

// CallGraph is the approximate call graph of a module. Nodes are the indices of the functions in the module, and
// there is an edge f -> g if f contains at least one direct call to g. Indirect calls are only counted.
type CallGraph struct {
	Graph         *graphutil.Digraph
	Functions     []FunctionStats
	IndirectSites int
}

// BuildCallGraph builds the call graph from the calls classified by AnalyzeFunctions.
func BuildCallGraph(counts FunctionCounts) *CallGraph {
	cg := &CallGraph{
		Graph:     graphutil.NewDigraph(len(counts.Functions)),
		Functions: counts.Functions,
	}
	for _, f := range counts.Functions {
		for _, c := range f.Callees {
			if callee, ok := ir.CalledFunction(c); ok && callee.Index >= 0 {
				cg.Graph.AddEdge(f.Index, callee.Index)
			}
		}
		cg.IndirectSites += f.IndirectCalls
	}
	return cg
}

// RecursiveGroups returns the groups of mutually recursive functions, including functions that call themselves.
func (cg *CallGraph) RecursiveGroups() [][]int {
	return graphutil.RecursiveComponents(cg.Graph)
}

// Entry returns the index of the first definition named EntryPoint, or -1 if there is none.
func (cg *CallGraph) Entry() int {
	for _, f := range cg.Functions {
		if f.Name == EntryPoint && !f.Declaration {
			return f.Index
		}
	}
	return -1
}

// ReachableDefinitions returns the indices of the definitions reachable from the function at index root through
// direct calls.
func (cg *CallGraph) ReachableDefinitions(root int) []int {
	return funcutil.Filter(graphutil.ReachableFrom(cg.Graph, root), func(i int) bool {
		return !cg.Functions[i].Declaration
	})
}

// PrintCallGraph prints the CALL GRAPH section. A warning is logged when the module has no entry point.
func PrintCallGraph(w io.Writer, cg *CallGraph, opts ReportOptions, log *config.LogGroup) {
	PrintSeparator(w, SectionCallGraph, opts)

	fmt.Fprintf(w, "  Direct call edges:        %d\n", cg.Graph.NumEdges())
	fmt.Fprintf(w, "  Indirect call sites:      %d\n", cg.IndirectSites)
	fmt.Fprintf(w, "  Self-recursive functions: %d\n", graphutil.SelfLoops(cg.Graph))

	fmt.Fprintf(w, "  Recursive groups:\n")
	groups := cg.RecursiveGroups()
	for _, group := range groups {
		names := funcutil.Map(group, func(i int) string { return "@" + opts.name(cg.Functions[i].Name) })
		fmt.Fprintf(w, "    %s\n", strings.Join(names, ", "))
	}
	if len(groups) == 0 {
		fmt.Fprintf(w, "    (no recursion)\n")
	}

	entry := cg.Entry()
	if entry < 0 {
		log.Warnf("no definition of @%s, reachability is not computed", EntryPoint)
		fmt.Fprintf(w, "  Reachable from @%s: (no @%s definition)\n", EntryPoint, EntryPoint)
		return
	}
	definitions := funcutil.Count(cg.Functions, func(f FunctionStats) bool { return !f.Declaration })
	fmt.Fprintf(w, "  Reachable from @%s: %d of %d definition(s)\n",
		EntryPoint, len(cg.ReachableDefinitions(entry)), definitions)
}
