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

package loader

import (
	"github.com/awslabs/ar-ir-tools/analysis/ir"
	llir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// Snapshot converts a module parsed by llir into its read-only representation.
func Snapshot(identifier string, m *llir.Module) *ir.Module {
	module := &ir.Module{
		Identifier:     identifier,
		TargetTriple:   m.TargetTriple,
		SourceFilename: m.SourceFilename,
		Globals:        make([]*ir.Global, 0, len(m.Globals)),
		Functions:      make([]*ir.Function, 0, len(m.Funcs)),
	}
	for _, g := range m.Globals {
		module.Globals = append(module.Globals, &ir.Global{
			Name:     globalName(g.GlobalIdent),
			Constant: g.Immutable,
		})
	}
	index := make(map[*llir.Func]int, len(m.Funcs))
	for i, f := range m.Funcs {
		index[f] = i
	}
	for _, f := range m.Funcs {
		module.Functions = append(module.Functions, snapshotFunc(f, index))
	}
	return module
}

func snapshotFunc(f *llir.Func, index map[*llir.Func]int) *ir.Function {
	fn := &ir.Function{
		Name:   globalName(f.GlobalIdent),
		Blocks: make([]*ir.Block, 0, len(f.Blocks)),
	}
	for _, b := range f.Blocks {
		block := &ir.Block{
			Name:         localName(b.LocalIdent),
			Instructions: make([]*ir.Instruction, 0, len(b.Insts)+1),
		}
		for _, inst := range b.Insts {
			block.Instructions = append(block.Instructions, snapshotInst(inst, index))
		}
		if b.Term != nil {
			block.Instructions = append(block.Instructions, &ir.Instruction{Opcode: terminatorOpcode(b.Term)})
		}
		fn.Blocks = append(fn.Blocks, block)
	}
	return fn
}

func snapshotInst(inst llir.Instruction, index map[*llir.Func]int) *ir.Instruction {
	if call, ok := inst.(*llir.InstCall); ok {
		return &ir.Instruction{Opcode: ir.OpCall, Callee: callee(call.Callee, index)}
	}
	return &ir.Instruction{Opcode: instructionOpcode(inst)}
}

// callee decides once whether the called operand is statically a function.
// Casts of functions, aliases, inline assembly and computed values are all opaque.
func callee(v value.Value, index map[*llir.Func]int) ir.Callee {
	if f, ok := v.(*llir.Func); ok {
		i, inModule := index[f]
		if !inModule {
			i = -1
		}
		return &ir.FunctionRef{Name: globalName(f.GlobalIdent), Index: i}
	}
	return &ir.OpaqueValue{Repr: v.Ident()}
}

// globalName returns the name of a global identifier, or "" for unnamed (numbered) globals.
func globalName(id llir.GlobalIdent) string {
	if id.IsUnnamed() {
		return ""
	}
	return id.Name()
}

func localName(id llir.LocalIdent) string {
	if id.IsUnnamed() {
		return ""
	}
	return id.Name()
}

//gocyclo:ignore
func instructionOpcode(inst llir.Instruction) ir.Opcode {
	switch inst.(type) {
	case *llir.InstFNeg:
		return ir.OpFNeg
	case *llir.InstAdd:
		return ir.OpAdd
	case *llir.InstFAdd:
		return ir.OpFAdd
	case *llir.InstSub:
		return ir.OpSub
	case *llir.InstFSub:
		return ir.OpFSub
	case *llir.InstMul:
		return ir.OpMul
	case *llir.InstFMul:
		return ir.OpFMul
	case *llir.InstUDiv:
		return ir.OpUDiv
	case *llir.InstSDiv:
		return ir.OpSDiv
	case *llir.InstFDiv:
		return ir.OpFDiv
	case *llir.InstURem:
		return ir.OpURem
	case *llir.InstSRem:
		return ir.OpSRem
	case *llir.InstFRem:
		return ir.OpFRem
	case *llir.InstShl:
		return ir.OpShl
	case *llir.InstLShr:
		return ir.OpLShr
	case *llir.InstAShr:
		return ir.OpAShr
	case *llir.InstAnd:
		return ir.OpAnd
	case *llir.InstOr:
		return ir.OpOr
	case *llir.InstXor:
		return ir.OpXor
	case *llir.InstAlloca:
		return ir.OpAlloca
	case *llir.InstLoad:
		return ir.OpLoad
	case *llir.InstStore:
		return ir.OpStore
	case *llir.InstGetElementPtr:
		return ir.OpGetElementPtr
	case *llir.InstFence:
		return ir.OpFence
	case *llir.InstCmpXchg:
		return ir.OpCmpXchg
	case *llir.InstAtomicRMW:
		return ir.OpAtomicRMW
	case *llir.InstTrunc, *llir.InstZExt, *llir.InstSExt, *llir.InstFPTrunc, *llir.InstFPExt,
		*llir.InstFPToUI, *llir.InstFPToSI, *llir.InstUIToFP, *llir.InstSIToFP,
		*llir.InstPtrToInt, *llir.InstIntToPtr, *llir.InstBitCast, *llir.InstAddrSpaceCast:
		return ir.OpCast
	case *llir.InstICmp:
		return ir.OpICmp
	case *llir.InstFCmp:
		return ir.OpFCmp
	case *llir.InstPhi:
		return ir.OpPhi
	case *llir.InstSelect:
		return ir.OpSelect
	case *llir.InstExtractValue:
		return ir.OpExtractValue
	case *llir.InstInsertValue:
		return ir.OpInsertValue
	case *llir.InstExtractElement:
		return ir.OpExtractElement
	case *llir.InstInsertElement:
		return ir.OpInsertElement
	case *llir.InstShuffleVector:
		return ir.OpShuffleVector
	case *llir.InstFreeze:
		return ir.OpFreeze
	case *llir.InstVAArg:
		return ir.OpVAArg
	case *llir.InstLandingPad:
		return ir.OpLandingPad
	default:
		return ir.OpOther
	}
}

func terminatorOpcode(term llir.Terminator) ir.Opcode {
	switch term.(type) {
	case *llir.TermRet:
		return ir.OpRet
	case *llir.TermBr:
		return ir.OpBr
	case *llir.TermCondBr:
		return ir.OpCondBr
	case *llir.TermSwitch:
		return ir.OpSwitch
	case *llir.TermIndirectBr:
		return ir.OpIndirectBr
	case *llir.TermInvoke:
		return ir.OpInvoke
	case *llir.TermCallBr:
		return ir.OpCallBr
	case *llir.TermResume:
		return ir.OpResume
	case *llir.TermUnreachable:
		return ir.OpUnreachable
	default:
		return ir.OpOther
	}
}
