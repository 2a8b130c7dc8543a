// Package disasm renders a byte buffer into 6502 assembly text, sharing the
// cpu package's own instruction table rather than keeping a second,
// independently-maintained copy of the opcode-to-mnemonic mapping.
package disasm

import (
	"fmt"
	"strings"

	"github.com/jchacon-lab/sixtyfivecore/cpu"
)

// Record is one disassembled instruction.
type Record struct {
	// Address is where the instruction starts.
	Address uint16
	// Length is the number of bytes it occupies (1-3).
	Length int
	// Raw holds the instruction's own bytes, Length of them.
	Raw []byte
	// Text is the rendered mnemonic and operand, e.g. "LDA $1234,X".
	Text string
}

// AddressMap indexes a Disassemble result by instruction start address, for
// callers translating a breakpoint or trace PC back into source text.
type AddressMap map[uint16]Record

// Disassemble walks buf from its first byte as the instruction at base,
// decoding one instruction after another until buf is exhausted. It does
// not follow control flow (a JMP target is not assumed to be the next
// instruction boundary) since buf is read linearly; a buffer that mixes
// code and data will disassemble the data too.
//
// A read past the end of buf while decoding the final instruction's operand
// is treated as a zero byte, so the final Record may describe fewer bytes
// than its nominal Length once Raw is consulted.
func Disassemble(buf []byte, base uint16) []Record {
	var records []Record
	table := cpu.DocumentedTable()

	addr := base
	for i := 0; i < len(buf); {
		in := table[buf[i]]
		length := in.Length

		raw := make([]byte, 0, length)
		for j := 0; j < length && i+j < len(buf); j++ {
			raw = append(raw, buf[i+j])
		}

		records = append(records, Record{
			Address: addr,
			Length:  length,
			Raw:     raw,
			Text:    render(in, raw, addr),
		})

		i += length
		addr += uint16(length)
	}
	return records
}

// BuildAddressMap is a convenience wrapper over Disassemble for callers that
// want random access by address instead of a linear Record slice.
func BuildAddressMap(buf []byte, base uint16) AddressMap {
	m := make(AddressMap)
	for _, r := range Disassemble(buf, base) {
		m[r.Address] = r
	}
	return m
}

// render formats one instruction as "MNEMONIC operand", using a compact
// token syntax: # for immediate, parens for indirect modes, ,X/,Y for
// indexed ones. A short raw (truncated buffer) renders whatever bytes are
// available and leaves the rest as zero.
func render(in cpu.Instruction, raw []byte, addr uint16) string {
	byteAt := func(i int) uint8 {
		if i < len(raw) {
			return raw[i]
		}
		return 0
	}
	word := func() uint16 {
		return uint16(byteAt(2))<<8 | uint16(byteAt(1))
	}

	mnemonic := in.Mnemonic.String()
	if in.Mnemonic == cpu.ILL {
		return fmt.Sprintf(".byte $%02X", byteAt(0))
	}

	switch in.Mode {
	case cpu.IMP:
		return mnemonic
	case cpu.ACC:
		return mnemonic + " A"
	case cpu.IMM:
		return fmt.Sprintf("%s #$%02X", mnemonic, byteAt(1))
	case cpu.ZPG:
		return fmt.Sprintf("%s $%02X", mnemonic, byteAt(1))
	case cpu.ZPX:
		return fmt.Sprintf("%s $%02X,X", mnemonic, byteAt(1))
	case cpu.ZPY:
		return fmt.Sprintf("%s $%02X,Y", mnemonic, byteAt(1))
	case cpu.ABS:
		return fmt.Sprintf("%s $%04X", mnemonic, word())
	case cpu.ABX:
		return fmt.Sprintf("%s $%04X,X", mnemonic, word())
	case cpu.ABY:
		return fmt.Sprintf("%s $%04X,Y", mnemonic, word())
	case cpu.IND:
		return fmt.Sprintf("%s ($%04X)", mnemonic, word())
	case cpu.XIZ:
		return fmt.Sprintf("%s ($%02X,X)", mnemonic, byteAt(1))
	case cpu.YIZ:
		return fmt.Sprintf("%s ($%02X),Y", mnemonic, byteAt(1))
	case cpu.REL:
		target := uint16(int32(addr) + 2 + int32(int8(byteAt(1))))
		return fmt.Sprintf("%s $%04X", mnemonic, target)
	default:
		return strings.TrimSpace(mnemonic)
	}
}
