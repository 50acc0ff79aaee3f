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
)

// PrintSummary prints the SUMMARY section and returns the total number of functions.
// The total is the sum of the two printed subtotals.
func PrintSummary(w io.Writer, counts FunctionCounts, opts ReportOptions) int {
	PrintSeparator(w, SectionSummary, opts)

	total := counts.Definitions + counts.Declarations
	fmt.Fprintf(w, "  Definitions count:                   %d\n", counts.Definitions)
	fmt.Fprintf(w, "  Declarations (extern/imports) count: %d\n", counts.Declarations)
	fmt.Fprintf(w, "  Total functions:                     %d\n", total)
	return total
}
