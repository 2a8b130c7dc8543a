package cpu

import "github.com/jchacon-lab/sixtyfivecore/bus"

// operand is the resolved result of addressing-mode decode for one
// instruction: where its data lives (if anywhere) and what extra cycle, if
// any, the effective-address computation earned. It is built fresh inside
// step and handed down into the operation implementation; nothing here
// survives past the instruction that produced it (per the design note that
// transient per-instruction state must never be a Chip field).
type operand struct {
	// addr is the effective address operated on. Zero for IMP and ACC; for
	// IMM it is the address of the immediate byte itself.
	addr uint16
	// value is the immediate operand byte, set only for IMM. ACC-mode
	// operations read the accumulator directly instead.
	value uint8
	// isAcc is true when the instruction operates on the accumulator
	// in-place (ASL/LSR/ROL/ROR ACC mode) rather than through addr.
	isAcc bool
	// pageCrossed reports whether indexing crossed a page boundary, which
	// costs an extra cycle on load-type ABX/ABY/YIZ instructions.
	pageCrossed bool
}

// decodeOperand resolves the addressing mode for the instruction at pc+1
// (the opcode itself having already been fetched), reading however many
// extra bytes the mode requires directly off the bus. It does not advance
// any CPU-owned state; step applies the length/PC advance after decode
// and before the operation runs.
func decodeOperand(b bus.Bus, pc uint16, mode Mode, xr, yr uint8) operand {
	switch mode {
	case IMP:
		return operand{}

	case ACC:
		return operand{isAcc: true}

	case IMM:
		return operand{addr: pc + 1, value: b.Read(pc + 1)}

	case ZPG:
		addr := uint16(b.Read(pc + 1))
		return operand{addr: addr}

	case ZPX:
		addr := uint16(uint8(b.Read(pc+1)) + xr)
		return operand{addr: addr}

	case ZPY:
		addr := uint16(uint8(b.Read(pc+1)) + yr)
		return operand{addr: addr}

	case ABS:
		addr := readWord(b, pc+1)
		return operand{addr: addr}

	case ABX:
		base := readWord(b, pc+1)
		addr := base + uint16(xr)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}

	case ABY:
		base := readWord(b, pc+1)
		addr := base + uint16(yr)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}

	case IND:
		ptr := readWord(b, pc+1)
		return operand{addr: readWordBuggy(b, ptr)}

	case XIZ:
		zp := uint8(b.Read(pc+1)) + xr
		addr := readWordZP(b, zp)
		return operand{addr: addr}

	case YIZ:
		zp := b.Read(pc + 1)
		base := readWordZP(b, zp)
		addr := base + uint16(yr)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}

	case REL:
		offset := int8(b.Read(pc + 1))
		next := pc + 2
		addr := uint16(int32(next) + int32(offset))
		return operand{addr: addr, pageCrossed: pageCrossed(next, addr)}

	default:
		return operand{}
	}
}

// readWord reads a little-endian 16-bit value starting at addr.
func readWord(b bus.Bus, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// readWordZP reads a little-endian word from two zero-page bytes at zp and
// zp+1, wrapping within page zero rather than crossing into page one.
func readWordZP(b bus.Bus, zp uint8) uint16 {
	lo := uint16(b.Read(uint16(zp)))
	hi := uint16(b.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

// readWordBuggy reproduces the documented JMP (IND) page-boundary bug: when
// ptr's low byte is 0xFF, the high byte is fetched from ptr&0xFF00 instead
// of ptr+1, because the real hardware never carries into the high byte of
// the pointer during the second fetch.
func readWordBuggy(b bus.Bus, ptr uint16) uint16 {
	lo := uint16(b.Read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(b.Read(hiAddr))
	return hi<<8 | lo
}

// pageCrossed reports whether from and to fall in different 256-byte pages.
func pageCrossed(from, to uint16) bool {
	return from&0xFF00 != to&0xFF00
}
