package cpu

// length returns the byte length implied by an addressing mode, per the
// Length column in spec §4.2.
func length(m Mode) int {
	switch m {
	case IMP, ACC:
		return 1
	case IMM, ZPG, ZPX, ZPY, XIZ, YIZ, REL:
		return 2
	case ABS, ABX, ABY, IND:
		return 3
	default:
		return 1
	}
}

func instr(m Mnemonic, mode Mode, cycles int) Instruction {
	return Instruction{Mnemonic: m, Mode: mode, BaseCycles: cycles, Length: length(mode)}
}

// illegal is the ILL placeholder: base cycles 0, one byte, a no-op.
var illegal = Instruction{Mnemonic: ILL, Mode: IMP, BaseCycles: 0, Length: 1}

// documentedTable is the constant 256-entry instruction table for the 56
// documented mnemonics, grounded opcode-by-opcode on the case statements in
// the teacher's cpu/cpu.go processOpcode, with cycle counts taken from the
// canonical 6502 reference the teacher itself cites in comments
// (obelisk.me.uk/6502/reference.html). Every opcode not listed here is ILL.
var documentedTable = buildDocumentedTable()

func buildDocumentedTable() [256]Instruction {
	var t [256]Instruction
	for i := range t {
		t[i] = illegal
	}
	set := func(op byte, m Mnemonic, mode Mode, cycles int) {
		t[op] = instr(m, mode, cycles)
	}

	set(0x00, BRK, IMP, 7)
	set(0x01, ORA, XIZ, 6)
	set(0x05, ORA, ZPG, 3)
	set(0x06, ASL, ZPG, 5)
	set(0x08, PHP, IMP, 3)
	set(0x09, ORA, IMM, 2)
	set(0x0A, ASL, ACC, 2)
	set(0x0D, ORA, ABS, 4)
	set(0x0E, ASL, ABS, 6)
	set(0x10, BPL, REL, 2)
	set(0x11, ORA, YIZ, 5)
	set(0x15, ORA, ZPX, 4)
	set(0x16, ASL, ZPX, 6)
	set(0x18, CLC, IMP, 2)
	set(0x19, ORA, ABY, 4)
	set(0x1D, ORA, ABX, 4)
	set(0x1E, ASL, ABX, 7)

	set(0x20, JSR, ABS, 6)
	set(0x21, AND, XIZ, 6)
	set(0x24, BIT, ZPG, 3)
	set(0x25, AND, ZPG, 3)
	set(0x26, ROL, ZPG, 5)
	set(0x28, PLP, IMP, 4)
	set(0x29, AND, IMM, 2)
	set(0x2A, ROL, ACC, 2)
	set(0x2C, BIT, ABS, 4)
	set(0x2D, AND, ABS, 4)
	set(0x2E, ROL, ABS, 6)
	set(0x30, BMI, REL, 2)
	set(0x31, AND, YIZ, 5)
	set(0x35, AND, ZPX, 4)
	set(0x36, ROL, ZPX, 6)
	set(0x38, SEC, IMP, 2)
	set(0x39, AND, ABY, 4)
	set(0x3D, AND, ABX, 4)
	set(0x3E, ROL, ABX, 7)

	set(0x40, RTI, IMP, 6)
	set(0x41, EOR, XIZ, 6)
	set(0x45, EOR, ZPG, 3)
	set(0x46, LSR, ZPG, 5)
	set(0x48, PHA, IMP, 3)
	set(0x49, EOR, IMM, 2)
	set(0x4A, LSR, ACC, 2)
	set(0x4C, JMP, ABS, 3)
	set(0x4D, EOR, ABS, 4)
	set(0x4E, LSR, ABS, 6)
	set(0x50, BVC, REL, 2)
	set(0x51, EOR, YIZ, 5)
	set(0x55, EOR, ZPX, 4)
	set(0x56, LSR, ZPX, 6)
	set(0x58, CLI, IMP, 2)
	set(0x59, EOR, ABY, 4)
	set(0x5D, EOR, ABX, 4)
	set(0x5E, LSR, ABX, 7)

	set(0x60, RTS, IMP, 6)
	set(0x61, ADC, XIZ, 6)
	set(0x65, ADC, ZPG, 3)
	set(0x66, ROR, ZPG, 5)
	set(0x68, PLA, IMP, 4)
	set(0x69, ADC, IMM, 2)
	set(0x6A, ROR, ACC, 2)
	set(0x6C, JMP, IND, 5)
	set(0x6D, ADC, ABS, 4)
	set(0x6E, ROR, ABS, 6)
	set(0x70, BVS, REL, 2)
	set(0x71, ADC, YIZ, 5)
	set(0x75, ADC, ZPX, 4)
	set(0x76, ROR, ZPX, 6)
	set(0x78, SEI, IMP, 2)
	set(0x79, ADC, ABY, 4)
	set(0x7D, ADC, ABX, 4)
	set(0x7E, ROR, ABX, 7)

	set(0x81, STA, XIZ, 6)
	set(0x84, STY, ZPG, 3)
	set(0x85, STA, ZPG, 3)
	set(0x86, STX, ZPG, 3)
	set(0x88, DEY, IMP, 2)
	set(0x8A, TXA, IMP, 2)
	set(0x8C, STY, ABS, 4)
	set(0x8D, STA, ABS, 4)
	set(0x8E, STX, ABS, 4)
	set(0x90, BCC, REL, 2)
	set(0x91, STA, YIZ, 6)
	set(0x94, STY, ZPX, 4)
	set(0x95, STA, ZPX, 4)
	set(0x96, STX, ZPY, 4)
	set(0x98, TYA, IMP, 2)
	set(0x99, STA, ABY, 5)
	set(0x9A, TXS, IMP, 2)
	set(0x9D, STA, ABX, 5)

	set(0xA0, LDY, IMM, 2)
	set(0xA1, LDA, XIZ, 6)
	set(0xA2, LDX, IMM, 2)
	set(0xA4, LDY, ZPG, 3)
	set(0xA5, LDA, ZPG, 3)
	set(0xA6, LDX, ZPG, 3)
	set(0xA8, TAY, IMP, 2)
	set(0xA9, LDA, IMM, 2)
	set(0xAA, TAX, IMP, 2)
	set(0xAC, LDY, ABS, 4)
	set(0xAD, LDA, ABS, 4)
	set(0xAE, LDX, ABS, 4)
	set(0xB0, BCS, REL, 2)
	set(0xB1, LDA, YIZ, 5)
	set(0xB4, LDY, ZPX, 4)
	set(0xB5, LDA, ZPX, 4)
	set(0xB6, LDX, ZPY, 4)
	set(0xB8, CLV, IMP, 2)
	set(0xB9, LDA, ABY, 4)
	set(0xBA, TSX, IMP, 2)
	set(0xBC, LDY, ABX, 4)
	set(0xBD, LDA, ABX, 4)
	set(0xBE, LDX, ABY, 4)

	set(0xC0, CPY, IMM, 2)
	set(0xC1, CMP, XIZ, 6)
	set(0xC4, CPY, ZPG, 3)
	set(0xC5, CMP, ZPG, 3)
	set(0xC6, DEC, ZPG, 5)
	set(0xC8, INY, IMP, 2)
	set(0xC9, CMP, IMM, 2)
	set(0xCA, DEX, IMP, 2)
	set(0xCC, CPY, ABS, 4)
	set(0xCD, CMP, ABS, 4)
	set(0xCE, DEC, ABS, 6)
	set(0xD0, BNE, REL, 2)
	set(0xD1, CMP, YIZ, 5)
	set(0xD5, CMP, ZPX, 4)
	set(0xD6, DEC, ZPX, 6)
	set(0xD8, CLD, IMP, 2)
	set(0xD9, CMP, ABY, 4)
	set(0xDD, CMP, ABX, 4)
	set(0xDE, DEC, ABX, 7)

	set(0xE0, CPX, IMM, 2)
	set(0xE1, SBC, XIZ, 6)
	set(0xE4, CPX, ZPG, 3)
	set(0xE5, SBC, ZPG, 3)
	set(0xE6, INC, ZPG, 5)
	set(0xE8, INX, IMP, 2)
	set(0xE9, SBC, IMM, 2)
	set(0xEA, NOP, IMP, 2)
	set(0xEC, CPX, ABS, 4)
	set(0xED, SBC, ABS, 4)
	set(0xEE, INC, ABS, 6)
	set(0xF0, BEQ, REL, 2)
	set(0xF1, SBC, YIZ, 5)
	set(0xF5, SBC, ZPX, 4)
	set(0xF6, INC, ZPX, 6)
	set(0xF8, SED, IMP, 2)
	set(0xF9, SBC, ABY, 4)
	set(0xFD, SBC, ABX, 4)
	set(0xFE, INC, ABX, 7)

	return t
}

// DocumentedTable returns the 256-entry documented instruction table, for
// callers (such as the disasm package) that need the same opcode-to-mode
// mapping the interpreter uses without duplicating it.
func DocumentedTable() [256]Instruction {
	return documentedTable
}

// ExtendedTable returns the table including unofficial opcodes, the one a
// Chip constructed WithUndocumented (and not CMOS) executes.
func ExtendedTable() [256]Instruction {
	return extendedTable
}
