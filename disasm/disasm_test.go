package disasm

import "testing"

func TestDisassembleBasic(t *testing.T) {
	// LDA #$42; STA $10; BRK
	buf := []byte{0xA9, 0x42, 0x85, 0x10, 0x00}
	records := Disassemble(buf, 0x0200)

	want := []string{"LDA #$42", "STA $10", "BRK"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, r := range records {
		if r.Text != want[i] {
			t.Errorf("record %d text = %q, want %q", i, r.Text, want[i])
		}
	}

	if records[0].Address != 0x0200 {
		t.Errorf("record 0 address = %#x, want 0x0200", records[0].Address)
	}
	if records[1].Address != 0x0202 {
		t.Errorf("record 1 address = %#x, want 0x0202", records[1].Address)
	}
	if records[2].Address != 0x0204 {
		t.Errorf("record 2 address = %#x, want 0x0204", records[2].Address)
	}
}

func TestDisassembleAbsoluteAndIndexed(t *testing.T) {
	buf := []byte{0xAD, 0x34, 0x12, 0xBD, 0x00, 0x20}
	records := Disassemble(buf, 0)

	want := []string{"LDA $1234", "LDA $2000,X"}
	for i, r := range records {
		if r.Text != want[i] {
			t.Errorf("record %d text = %q, want %q", i, r.Text, want[i])
		}
	}
}

func TestDisassembleBranchResolvesTarget(t *testing.T) {
	// BEQ +5 at address 0x0200: target = 0x0200 + 2 + 5 = 0x0207.
	buf := []byte{0xF0, 0x05}
	records := Disassemble(buf, 0x0200)
	if records[0].Text != "BEQ $0207" {
		t.Errorf("got %q, want %q", records[0].Text, "BEQ $0207")
	}
}

func TestDisassembleUnknownOpcodeRendersAsByte(t *testing.T) {
	buf := []byte{0x02} // undefined in documentedTable
	records := Disassemble(buf, 0)
	if records[0].Text != ".byte $02" {
		t.Errorf("got %q, want %q", records[0].Text, ".byte $02")
	}
}

func TestBuildAddressMap(t *testing.T) {
	buf := []byte{0xEA, 0xEA, 0x4C, 0x00, 0x02} // NOP; NOP; JMP $0200
	m := BuildAddressMap(buf, 0x0200)
	if len(m) != 3 {
		t.Fatalf("got %d entries, want 3", len(m))
	}
	if r, ok := m[0x0202]; !ok || r.Text != "JMP $0200" {
		t.Errorf("m[0x0202] = %+v, ok=%v, want JMP $0200", r, ok)
	}
}
