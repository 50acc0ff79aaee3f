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

	"github.com/awslabs/ar-ir-tools/analysis/config"
	"github.com/awslabs/ar-ir-tools/analysis/ir"
)

// FunctionStats are the facts collected about a single function.
type FunctionStats struct {
	// Index is the position of the function in the module
	Index int

	Name        string
	Declaration bool

	// The fields below are zero for declarations

	Blocks        int
	Instructions  int
	DirectCalls   int
	IndirectCalls int

	// Callees are the callees of the function's call instructions, in the order they appear
	Callees []ir.Callee
}

// Calls returns the number of call instructions in the function.
func (s FunctionStats) Calls() int {
	return s.DirectCalls + s.IndirectCalls
}

// FunctionCounts is the result of AnalyzeFunctions.
type FunctionCounts struct {
	Definitions  int
	Declarations int
	Functions    []FunctionStats
}

// AnalyzeFunctions prints the FUNCTION ANALYSIS section for m, analyzing each function in module order.
// The counters are accumulated locally and returned.
func AnalyzeFunctions(w io.Writer, m *ir.Module, opts ReportOptions, log *config.LogGroup) FunctionCounts {
	PrintSeparator(w, SectionFunctionAnalysis, opts)

	counts := FunctionCounts{Functions: make([]FunctionStats, 0, len(m.Functions))}
	for i := 0; i < len(m.Functions); i++ {
		stats := AnalyzeFunction(w, m.Functions[i], opts, log)
		stats.Index = i
		if stats.Declaration {
			counts.Declarations++
		} else {
			counts.Definitions++
		}
		counts.Functions = append(counts.Functions, stats)
	}
	return counts
}

// AnalyzeFunction prints the name and kind of f, and for definitions the number of basic blocks and every call
// with its target.
func AnalyzeFunction(w io.Writer, f *ir.Function, opts ReportOptions, log *config.LogGroup) FunctionStats {
	stats := FunctionStats{Name: f.Name, Declaration: f.IsDeclaration()}
	opts.checkName(log, "function", f.Name)

	fmt.Fprintf(w, "\n  Function: @%s\n", opts.name(f.Name))
	if stats.Declaration {
		fmt.Fprintf(w, "    Type: declaration (external)\n")
		log.Debugf("@%s is a declaration", f.Name)
		return stats
	}
	fmt.Fprintf(w, "    Type: definition\n")

	for i := 0; i < len(f.Blocks); i++ {
		stats.Blocks++
	}
	fmt.Fprintf(w, "    Basic blocks: %d\n", stats.Blocks)

	fmt.Fprintf(w, "    Calls:\n")
	for i := 0; i < len(f.Blocks); i++ {
		block := f.Blocks[i]
		for j := 0; j < len(block.Instructions); j++ {
			inst := block.Instructions[j]
			stats.Instructions++
			if !inst.IsCall() {
				continue
			}
			stats.Callees = append(stats.Callees, inst.Callee)
			if callee, ok := ir.CalledFunction(inst.Callee); ok {
				fmt.Fprintf(w, "      -> @%s\n", opts.name(callee.Name))
				if callee.Index < 0 {
					log.Warnf("@%s calls @%s, which is not a function of the module", f.Name, callee.Name)
				}
				stats.DirectCalls++
			} else {
				fmt.Fprintf(w, "      -> (indirect call)\n")
				log.Tracef("@%s: indirect call through %s", f.Name, inst.Callee)
				stats.IndirectCalls++
			}
		}
	}

	if stats.Calls() == 0 {
		fmt.Fprintf(w, "      (none - leaf function)\n")
	}
	log.Debugf("@%s: %d blocks, %d instructions, %d direct calls, %d indirect calls",
		f.Name, stats.Blocks, stats.Instructions, stats.DirectCalls, stats.IndirectCalls)
	return stats
}
