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

// Package analysis implements the structural analysis of IR modules: module information, global variables,
// per-function statistics with call classification, the summary of definitions and declarations, and an
// approximate call graph.
package analysis

import (
	"fmt"
	"io"

	"github.com/awslabs/ar-ir-tools/analysis/config"
	"github.com/awslabs/ar-ir-tools/analysis/ir"
	"github.com/awslabs/ar-ir-tools/internal/funcutil"
)

// Result contains the statistics of a module.
type Result struct {
	ModuleID string
	Target   string

	NumberOfGlobals       int
	NumberOfFunctions     int
	NumberOfDefinitions   int
	NumberOfDeclarations  int
	NumberOfBlocks        int
	NumberOfInstructions  int
	NumberOfDirectCalls   int
	NumberOfIndirectCalls int
}

// ModuleID returns the identifier of m as printed in the report.
func ModuleID(m *ir.Module) string {
	if m.Identifier == "" {
		return "(unnamed)"
	}
	return m.Identifier
}

// Target returns the target triple of m as printed in the report.
func Target(m *ir.Module) string {
	if m.TargetTriple == "" {
		return "(default)"
	}
	return m.TargetTriple
}

// PrintModuleInfo prints the MODULE INFO section.
func PrintModuleInfo(w io.Writer, m *ir.Module, opts ReportOptions) {
	PrintSeparator(w, SectionModuleInfo, opts)
	fmt.Fprintf(w, "  Module ID: %s\n", opts.name(ModuleID(m)))
	fmt.Fprintf(w, "  Target:    %s\n", opts.name(Target(m)))
}

// Report writes the full report for m to w in a single pass: MODULE INFO, GLOBAL VARIABLES, FUNCTION ANALYSIS and
// SUMMARY, followed by the CALL GRAPH when opts.CallGraph is set. It returns the statistics gathered on the way.
func Report(w io.Writer, m *ir.Module, opts ReportOptions, log *config.LogGroup) Result {
	PrintModuleInfo(w, m, opts)

	log.Debugf("analyzing %d globals", len(m.Globals))
	for _, g := range m.Globals {
		opts.checkName(log, "global", g.Name)
	}
	numGlobals := AnalyzeGlobals(w, m, opts)

	log.Debugf("analyzing %d functions", len(m.Functions))
	counts := AnalyzeFunctions(w, m, opts, log)
	total := PrintSummary(w, counts, opts)

	if opts.CallGraph {
		PrintCallGraph(w, BuildCallGraph(counts), opts, log)
	}

	return Result{
		ModuleID:              ModuleID(m),
		Target:                Target(m),
		NumberOfGlobals:       numGlobals,
		NumberOfFunctions:     total,
		NumberOfDefinitions:   counts.Definitions,
		NumberOfDeclarations:  counts.Declarations,
		NumberOfBlocks:        funcutil.SumBy(counts.Functions, func(f FunctionStats) int { return f.Blocks }),
		NumberOfInstructions:  funcutil.SumBy(counts.Functions, func(f FunctionStats) int { return f.Instructions }),
		NumberOfDirectCalls:   funcutil.SumBy(counts.Functions, func(f FunctionStats) int { return f.DirectCalls }),
		NumberOfIndirectCalls: funcutil.SumBy(counts.Functions, func(f FunctionStats) int { return f.IndirectCalls }),
	}
}
