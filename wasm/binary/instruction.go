package binary

import (
	"fmt"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decodeInstruction reads one instruction, including the nested bodies of
// control constructs. Instruction bodies are parsed for validation but
// not retained.
func (d *decoder) decodeInstruction() error {
	opcodeOffset := d.offset
	opcode, err := d.readByte()
	if err != nil {
		return err
	}
	switch opcode {

	// Control instructions.
	case wasm.OpcodeUnreachable, wasm.OpcodeNop:
		return nil
	case wasm.OpcodeBlock, wasm.OpcodeLoop:
		if err := d.decodeBlockType(); err != nil {
			return err
		}
		for !d.eof && d.cur != wasm.OpcodeEnd {
			if err := d.decodeInstruction(); err != nil {
				return err
			}
		}
		return d.matchByte(wasm.OpcodeEnd)
	case wasm.OpcodeIf:
		if err := d.decodeBlockType(); err != nil {
			return err
		}
		for !d.eof && d.cur != wasm.OpcodeElse && d.cur != wasm.OpcodeEnd {
			if err := d.decodeInstruction(); err != nil {
				return err
			}
		}
		if ok, err := d.maybeMatchByte(wasm.OpcodeElse); err != nil {
			return err
		} else if ok {
			for !d.eof && d.cur != wasm.OpcodeEnd {
				if err := d.decodeInstruction(); err != nil {
					return err
				}
			}
		}
		return d.matchByte(wasm.OpcodeEnd)
	case wasm.OpcodeTry:
		return d.decodeTryBody()
	case wasm.OpcodeThrow:
		_, err := d.decodeU32() // tagidx
		return err
	case wasm.OpcodeRethrow:
		_, err := d.decodeU32() // labelidx
		return err
	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		_, err := d.decodeU32() // labelidx
		return err
	case wasm.OpcodeBrTable:
		if err := d.decodeVec(func(uint32) error {
			_, err := d.decodeU32() // labelidx
			return err
		}); err != nil {
			return err
		}
		_, err := d.decodeU32() // default labelidx
		return err
	case wasm.OpcodeReturn:
		return nil
	case wasm.OpcodeCall:
		_, err := d.decodeU32() // funcidx
		return err
	case wasm.OpcodeCallIndirect:
		if _, err := d.decodeU32(); err != nil { // typeidx
			return err
		}
		_, err := d.decodeU32() // tableidx
		return err

	// Parametric instructions.
	case wasm.OpcodeDrop, wasm.OpcodeSelect:
		return nil

	// Variable instructions.
	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee,
		wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		_, err := d.decodeU32()
		return err

	// Memory instructions.
	case wasm.OpcodeI32Load, wasm.OpcodeI64Load, wasm.OpcodeF32Load, wasm.OpcodeF64Load,
		wasm.OpcodeI32Load8S, wasm.OpcodeI32Load8U, wasm.OpcodeI32Load16S, wasm.OpcodeI32Load16U,
		wasm.OpcodeI64Load8S, wasm.OpcodeI64Load8U, wasm.OpcodeI64Load16S, wasm.OpcodeI64Load16U,
		wasm.OpcodeI64Load32S, wasm.OpcodeI64Load32U,
		wasm.OpcodeI32Store, wasm.OpcodeI64Store, wasm.OpcodeF32Store, wasm.OpcodeF64Store,
		wasm.OpcodeI32Store8, wasm.OpcodeI32Store16,
		wasm.OpcodeI64Store8, wasm.OpcodeI64Store16, wasm.OpcodeI64Store32:
		return d.decodeMemArg()
	case wasm.OpcodeMemorySize:
		return d.matchByte(0x00)

	case wasm.OpcodeAtomicPrefix:
		return d.decodeAtomicInstruction()

	// Numeric instructions.
	case wasm.OpcodeI32Const:
		_, err := d.decodeI32()
		return err
	case wasm.OpcodeI64Const:
		_, err := d.decodeI64()
		return err
	case wasm.OpcodeF32Const:
		_, err := d.decodeF32()
		return err
	case wasm.OpcodeF64Const:
		_, err := d.decodeF64()
		return err

	case wasm.OpcodeI32Eqz, wasm.OpcodeI32Eq, wasm.OpcodeI32Ne,
		wasm.OpcodeI32LtS, wasm.OpcodeI32LtU, wasm.OpcodeI32GtS, wasm.OpcodeI32GtU,
		wasm.OpcodeI32LeS, wasm.OpcodeI32LeU, wasm.OpcodeI32GeS, wasm.OpcodeI32GeU,
		wasm.OpcodeI64Eqz, wasm.OpcodeI64Eq, wasm.OpcodeI64Ne,
		wasm.OpcodeI64LtS, wasm.OpcodeI64LtU, wasm.OpcodeI64GtS, wasm.OpcodeI64GtU,
		wasm.OpcodeI64LeS, wasm.OpcodeI64LeU, wasm.OpcodeI64GeS, wasm.OpcodeI64GeU,
		wasm.OpcodeF64Eq, wasm.OpcodeF64Ne, wasm.OpcodeF64Lt, wasm.OpcodeF64Gt,
		wasm.OpcodeF64Le, wasm.OpcodeF64Ge,
		wasm.OpcodeI32Clz, wasm.OpcodeI32Ctz, wasm.OpcodeI32Add, wasm.OpcodeI32Sub,
		wasm.OpcodeI32Mul, wasm.OpcodeI32DivS, wasm.OpcodeI32DivU,
		wasm.OpcodeI32RemS, wasm.OpcodeI32RemU, wasm.OpcodeI32And, wasm.OpcodeI32Or,
		wasm.OpcodeI32Xor, wasm.OpcodeI32Shl, wasm.OpcodeI32ShrS, wasm.OpcodeI32ShrU,
		wasm.OpcodeI32Rotl,
		wasm.OpcodeI64Clz, wasm.OpcodeI64Ctz, wasm.OpcodeI64Add, wasm.OpcodeI64Sub,
		wasm.OpcodeI64Mul, wasm.OpcodeI64DivS, wasm.OpcodeI64DivU,
		wasm.OpcodeI64RemS, wasm.OpcodeI64RemU, wasm.OpcodeI64And, wasm.OpcodeI64Or,
		wasm.OpcodeI64Xor, wasm.OpcodeI64Shl, wasm.OpcodeI64ShrS, wasm.OpcodeI64ShrU,
		wasm.OpcodeF32Mul,
		wasm.OpcodeF64Abs, wasm.OpcodeF64Neg, wasm.OpcodeF64Ceil, wasm.OpcodeF64Floor,
		wasm.OpcodeF64Sqrt, wasm.OpcodeF64Add, wasm.OpcodeF64Sub, wasm.OpcodeF64Mul,
		wasm.OpcodeF64Div,
		wasm.OpcodeI32WrapI64, wasm.OpcodeI32TruncF64S, wasm.OpcodeI32TruncF64U,
		wasm.OpcodeI64ExtendI32S, wasm.OpcodeI64ExtendI32U,
		wasm.OpcodeI64TruncF64S, wasm.OpcodeI64TruncF64U,
		wasm.OpcodeF32ConvertI32S, wasm.OpcodeF32DemoteF64,
		wasm.OpcodeF64ConvertI32S, wasm.OpcodeF64ConvertI32U,
		wasm.OpcodeF64ConvertI64S, wasm.OpcodeF64ConvertI64U, wasm.OpcodeF64PromoteF32,
		wasm.OpcodeI32ReinterpretF32, wasm.OpcodeI64ReinterpretF64,
		wasm.OpcodeF32ReinterpretI32, wasm.OpcodeF64ReinterpretI64,
		wasm.OpcodeI32Extend8S, wasm.OpcodeI32Extend16S,
		wasm.OpcodeI64Extend8S, wasm.OpcodeI64Extend16S:
		return nil

	case wasm.OpcodeMiscPrefix:
		return d.decodeMiscInstruction()
	}
	return fmt.Errorf("%w: 0x%02x at offset %d", wasm.ErrUnknownOpcode, opcode, opcodeOffset)
}

// decodeTryBody reads a try construct after its opcode: the block type,
// the protected body, and then either a delegate clause or zero or more
// catch clauses followed by zero or more catch_all clauses and end.
func (d *decoder) decodeTryBody() error {
	if err := d.decodeBlockType(); err != nil {
		return err
	}
	for !d.eof && d.cur != wasm.OpcodeCatch && d.cur != wasm.OpcodeCatchAll &&
		d.cur != wasm.OpcodeDelegate && d.cur != wasm.OpcodeEnd {
		if err := d.decodeInstruction(); err != nil {
			return err
		}
	}
	if ok, err := d.maybeMatchByte(wasm.OpcodeDelegate); err != nil {
		return err
	} else if ok {
		_, err := d.decodeU32() // labelidx
		return err
	}
	for {
		ok, err := d.maybeMatchByte(wasm.OpcodeCatch)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if _, err := d.decodeU32(); err != nil { // tagidx
			return err
		}
		for !d.eof && d.cur != wasm.OpcodeCatch && d.cur != wasm.OpcodeCatchAll && d.cur != wasm.OpcodeEnd {
			if err := d.decodeInstruction(); err != nil {
				return err
			}
		}
	}
	for {
		ok, err := d.maybeMatchByte(wasm.OpcodeCatchAll)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for !d.eof && d.cur != wasm.OpcodeCatchAll && d.cur != wasm.OpcodeEnd {
			if err := d.decodeInstruction(); err != nil {
				return err
			}
		}
	}
	return d.matchByte(wasm.OpcodeEnd)
}

// decodeMiscInstruction reads the u32 secondary opcode after 0xfc.
func (d *decoder) decodeMiscInstruction() error {
	offset := d.offset
	opcode2, err := d.decodeU32()
	if err != nil {
		return err
	}
	switch opcode2 {
	case wasm.MiscOpcodeMemoryInit:
		if _, err := d.decodeU32(); err != nil { // dataidx
			return err
		}
		return d.matchByte(0x00)
	case wasm.MiscOpcodeDataDrop:
		_, err := d.decodeU32() // dataidx
		return err
	case wasm.MiscOpcodeMemoryCopy:
		if err := d.matchByte(0x00); err != nil {
			return err
		}
		return d.matchByte(0x00)
	case wasm.MiscOpcodeMemoryFill:
		return d.matchByte(0x00)
	}
	return fmt.Errorf("%w: secondary opcode %d after 0xfc at offset %d", wasm.ErrUnknownOpcode, opcode2, offset)
}

// decodeAtomicInstruction reads the u32 secondary opcode after 0xfe.
func (d *decoder) decodeAtomicInstruction() error {
	offset := d.offset
	opcode2, err := d.decodeU32()
	if err != nil {
		return err
	}
	switch opcode2 {
	case wasm.AtomicOpcodeMemoryAtomicNotify, wasm.AtomicOpcodeMemoryAtomicWait32,
		wasm.AtomicOpcodeI32AtomicLoad, wasm.AtomicOpcodeI64AtomicLoad,
		wasm.AtomicOpcodeI32AtomicLoad8U,
		wasm.AtomicOpcodeI32AtomicStore, wasm.AtomicOpcodeI64AtomicStore,
		wasm.AtomicOpcodeI32AtomicStore8,
		wasm.AtomicOpcodeI32AtomicRmwAdd, wasm.AtomicOpcodeI32AtomicRmwSub,
		wasm.AtomicOpcodeI32AtomicRmwOr,
		wasm.AtomicOpcodeI32AtomicRmwXchg, wasm.AtomicOpcodeI32AtomicRmw8XchgU,
		wasm.AtomicOpcodeI32AtomicRmwCmpxchg, wasm.AtomicOpcodeI32AtomicRmw8CmpxchgU:
		return d.decodeMemArg()
	}
	return fmt.Errorf("%w: secondary opcode 0x%02x after 0xfe at offset %d", wasm.ErrUnknownOpcode, opcode2, offset)
}

// decodeBlockType reads 0x40 (void), a single value type, or an s33 type
// index, dispatching on the lookahead.
func (d *decoder) decodeBlockType() error {
	if ok, err := d.maybeMatchByte(0x40); err != nil || ok {
		return err
	}
	if d.canDecodeValType() {
		_, err := d.decodeValType()
		return err
	}
	_, err := d.decodeS33()
	return err
}

// decodeMemArg reads the alignment and offset attached to every memory
// access instruction.
func (d *decoder) decodeMemArg() error {
	if _, err := d.decodeU32(); err != nil { // alignment
		return err
	}
	_, err := d.decodeU32() // offset
	return err
}

// decodeExpr reads instructions up to and including the terminating end.
func (d *decoder) decodeExpr() error {
	for !d.eof && d.cur != wasm.OpcodeEnd {
		if err := d.decodeInstruction(); err != nil {
			return err
		}
	}
	return d.matchByte(wasm.OpcodeEnd)
}
