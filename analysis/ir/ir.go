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

// Package ir contains read-only snapshots of an IR module.
//
// The snapshots are built once by the loader from the object graph of the IR parsing library, and are never
// mutated afterwards. All sequences are in the order in which the module declares them, and the analyses
// iterate over them by index.
package ir

// Module is the top-level container of globals and functions.
type Module struct {
	// Identifier is the module identifier. Empty if the module has none.
	Identifier string

	// TargetTriple is the target triple of the module. Empty if the module does not specify one.
	TargetTriple string

	// SourceFilename is the source_filename of the module, if any.
	SourceFilename string

	Globals   []*Global
	Functions []*Function
}

// Global is a global variable of a module.
type Global struct {
	Name string
	// Constant is true when the global is immutable
	Constant bool
}

// Function is a function of a module. A function with no blocks is a declaration.
type Function struct {
	Name   string
	Blocks []*Block
}

// IsDeclaration returns true when the function has no body.
func (f *Function) IsDeclaration() bool {
	return len(f.Blocks) == 0
}

// Block is a basic block. The terminator of the block is its last instruction.
type Block struct {
	Name         string
	Instructions []*Instruction
}

// Instruction is a single instruction of a basic block.
type Instruction struct {
	Opcode Opcode
	// Callee is non-nil only for call instructions
	Callee Callee
}

// IsCall returns true if the instruction is a call instruction.
func (i *Instruction) IsCall() bool {
	return i.Opcode == OpCall
}

// A Callee is the called operand of a call instruction. It is either a *FunctionRef when the called operand is
// statically a function, or an *OpaqueValue for any other value (loaded pointers, casts, inline assembly, ...).
type Callee interface {
	isCallee()
	String() string
}

// FunctionRef is a callee that is statically a function of the module.
type FunctionRef struct {
	Name string
	// Index is the position of the function in Module.Functions, or -1 if it is not a function of the module
	Index int
}

func (*FunctionRef) isCallee() {}

func (f *FunctionRef) String() string { return "@" + f.Name }

// OpaqueValue is a callee that is computed or otherwise not a function.
type OpaqueValue struct {
	// Repr is the textual representation of the operand, for debugging purposes
	Repr string
}

func (*OpaqueValue) isCallee() {}

func (o *OpaqueValue) String() string { return o.Repr }

// CalledFunction returns the function statically called by c, and whether there is one.
// A call is direct if and only if CalledFunction returns true.
func CalledFunction(c Callee) (*FunctionRef, bool) {
	f, ok := c.(*FunctionRef)
	return f, ok && f != nil
}
