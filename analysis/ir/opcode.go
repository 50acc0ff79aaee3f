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

package ir

// Opcode is the kind of an instruction.
type Opcode int

const (
	OpOther Opcode = iota

	// Terminators
	OpRet
	OpBr
	OpCondBr
	OpSwitch
	OpIndirectBr
	OpInvoke
	OpCallBr
	OpResume
	OpUnreachable

	// Unary and binary operations
	OpFNeg
	OpAdd
	OpFAdd
	OpSub
	OpFSub
	OpMul
	OpFMul
	OpUDiv
	OpSDiv
	OpFDiv
	OpURem
	OpSRem
	OpFRem
	OpShl
	OpLShr
	OpAShr
	OpAnd
	OpOr
	OpXor

	// Memory
	OpAlloca
	OpLoad
	OpStore
	OpGetElementPtr
	OpFence
	OpCmpXchg
	OpAtomicRMW

	// Conversions
	OpCast

	// Other instructions
	OpICmp
	OpFCmp
	OpPhi
	OpSelect
	OpCall
	OpExtractValue
	OpInsertValue
	OpExtractElement
	OpInsertElement
	OpShuffleVector
	OpFreeze
	OpVAArg
	OpLandingPad
)

var opcodeNames = map[Opcode]string{
	OpOther:          "other",
	OpRet:            "ret",
	OpBr:             "br",
	OpCondBr:         "br",
	OpSwitch:         "switch",
	OpIndirectBr:     "indirectbr",
	OpInvoke:         "invoke",
	OpCallBr:         "callbr",
	OpResume:         "resume",
	OpUnreachable:    "unreachable",
	OpFNeg:           "fneg",
	OpAdd:            "add",
	OpFAdd:           "fadd",
	OpSub:            "sub",
	OpFSub:           "fsub",
	OpMul:            "mul",
	OpFMul:           "fmul",
	OpUDiv:           "udiv",
	OpSDiv:           "sdiv",
	OpFDiv:           "fdiv",
	OpURem:           "urem",
	OpSRem:           "srem",
	OpFRem:           "frem",
	OpShl:            "shl",
	OpLShr:           "lshr",
	OpAShr:           "ashr",
	OpAnd:            "and",
	OpOr:             "or",
	OpXor:            "xor",
	OpAlloca:         "alloca",
	OpLoad:           "load",
	OpStore:          "store",
	OpGetElementPtr:  "getelementptr",
	OpFence:          "fence",
	OpCmpXchg:        "cmpxchg",
	OpAtomicRMW:      "atomicrmw",
	OpCast:           "cast",
	OpICmp:           "icmp",
	OpFCmp:           "fcmp",
	OpPhi:            "phi",
	OpSelect:         "select",
	OpCall:           "call",
	OpExtractValue:   "extractvalue",
	OpInsertValue:    "insertvalue",
	OpExtractElement: "extractelement",
	OpInsertElement:  "insertelement",
	OpShuffleVector:  "shufflevector",
	OpFreeze:         "freeze",
	OpVAArg:          "va_arg",
	OpLandingPad:     "landingpad",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "other"
}

// IsTerminator returns true for opcodes that can only appear at the end of a block.
func (op Opcode) IsTerminator() bool {
	return op >= OpRet && op <= OpUnreachable
}
