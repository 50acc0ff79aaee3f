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

	"github.com/awslabs/ar-ir-tools/analysis/ir"
)

// AnalyzeGlobals prints the GLOBAL VARIABLES section for m and returns the number of globals.
func AnalyzeGlobals(w io.Writer, m *ir.Module, opts ReportOptions) int {
	PrintSeparator(w, SectionGlobalVariables, opts)

	count := 0
	for i := 0; i < len(m.Globals); i++ {
		g := m.Globals[i]
		fmt.Fprintf(w, "  @%s (%s)\n", opts.name(g.Name), mutability(g))
		count++
	}

	if count == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	fmt.Fprintf(w, "\n  Total: %d global(s)\n", count)
	return count
}

func mutability(g *ir.Global) string {
	if g.Constant {
		return "constant"
	}
	return "mutable"
}
