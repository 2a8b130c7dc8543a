package cpu

// extendedTable layers the unofficial opcodes onto documentedTable. It is
// only consulted when a Chip is constructed WithUndocumented and the
// variant is not CMOS (§9's DESIGN NOTES, recovered from the teacher's
// processOpcode cases for SLO/RLA/SRE/RRA/DCP/ISC/SAX/LAX/ANC/ALR/ARR/AXS
// and the extra NOP/HLT opcodes). Cycle counts follow the same
// addressing-mode pattern as their documented read-modify-write and
// load/store counterparts.
var extendedTable = buildExtendedTable()

func buildExtendedTable() [256]Instruction {
	t := documentedTable
	set := func(op byte, m Mnemonic, mode Mode, cycles int) {
		t[op] = instr(m, mode, cycles)
	}

	// HLT/KIL/JAM: halts the CPU outright. Modeled as IMP/1 byte/0 cycles;
	// once one executes, every later Step returns an InvalidState error
	// until Reset.
	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, HLT, IMP, 0)
	}

	// SLO: ASL then ORA, RMW cycle counts.
	set(0x03, SLO, XIZ, 8)
	set(0x07, SLO, ZPG, 5)
	set(0x0F, SLO, ABS, 6)
	set(0x13, SLO, YIZ, 8)
	set(0x17, SLO, ZPX, 6)
	set(0x1B, SLO, ABY, 7)
	set(0x1F, SLO, ABX, 7)

	// RLA: ROL then AND.
	set(0x23, RLA, XIZ, 8)
	set(0x27, RLA, ZPG, 5)
	set(0x2F, RLA, ABS, 6)
	set(0x33, RLA, YIZ, 8)
	set(0x37, RLA, ZPX, 6)
	set(0x3B, RLA, ABY, 7)
	set(0x3F, RLA, ABX, 7)

	// SRE: LSR then EOR.
	set(0x43, SRE, XIZ, 8)
	set(0x47, SRE, ZPG, 5)
	set(0x4F, SRE, ABS, 6)
	set(0x53, SRE, YIZ, 8)
	set(0x57, SRE, ZPX, 6)
	set(0x5B, SRE, ABY, 7)
	set(0x5F, SRE, ABX, 7)

	// RRA: ROR then ADC.
	set(0x63, RRA, XIZ, 8)
	set(0x67, RRA, ZPG, 5)
	set(0x6F, RRA, ABS, 6)
	set(0x73, RRA, YIZ, 8)
	set(0x77, RRA, ZPX, 6)
	set(0x7B, RRA, ABY, 7)
	set(0x7F, RRA, ABX, 7)

	// SAX: store A&X, no flags.
	set(0x83, SAX, XIZ, 6)
	set(0x87, SAX, ZPG, 3)
	set(0x8F, SAX, ABS, 4)
	set(0x97, SAX, ZPY, 4)

	// LAX: load both A and X from memory.
	set(0xA3, LAX, XIZ, 6)
	set(0xA7, LAX, ZPG, 3)
	set(0xAF, LAX, ABS, 4)
	set(0xB3, LAX, YIZ, 5)
	set(0xB7, LAX, ZPY, 4)
	set(0xBF, LAX, ABY, 4)
	set(0xAB, OAL, IMM, 2)

	// DCP: DEC then CMP.
	set(0xC3, DCP, XIZ, 8)
	set(0xC7, DCP, ZPG, 5)
	set(0xCF, DCP, ABS, 6)
	set(0xD3, DCP, YIZ, 8)
	set(0xD7, DCP, ZPX, 6)
	set(0xDB, DCP, ABY, 7)
	set(0xDF, DCP, ABX, 7)

	// ISC/ISB: INC then SBC.
	set(0xE3, ISC, XIZ, 8)
	set(0xE7, ISC, ZPG, 5)
	set(0xEF, ISC, ABS, 6)
	set(0xF3, ISC, YIZ, 8)
	set(0xF7, ISC, ZPX, 6)
	set(0xFB, ISC, ABY, 7)
	set(0xFF, ISC, ABX, 7)

	// Immediate-mode unofficial ALU ops.
	set(0x0B, ANC, IMM, 2)
	set(0x2B, ANC, IMM, 2)
	set(0x4B, ALR, IMM, 2)
	set(0x6B, ARR, IMM, 2)
	set(0xCB, AXS, IMM, 2)
	set(0x8B, XAA, IMM, 2)
	set(0xEB, SBC, IMM, 2)

	// Unstable store/load opcodes.
	set(0x9B, TAS, ABY, 5)
	set(0x9C, SHY, ABX, 5)
	set(0x9E, SHX, ABY, 5)
	set(0x93, AHX, YIZ, 6)
	set(0x9F, AHX, ABY, 5)
	set(0xBB, LAS, ABY, 4)

	// Extra NOPs: read-and-discard at various widths.
	for _, op := range []byte{0x04, 0x44, 0x64} {
		set(op, NOP, ZPG, 3)
	}
	for _, op := range []byte{0x0C} {
		set(op, NOP, ABS, 4)
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, NOP, ZPX, 4)
	}
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, NOP, IMP, 2)
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, NOP, IMM, 2)
	}
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, NOP, ABX, 4)
	}

	return t
}
