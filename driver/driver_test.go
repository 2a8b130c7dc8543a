package driver

import (
	"context"
	"testing"
	"time"

	"github.com/jchacon-lab/sixtyfivecore/bus"
	"github.com/jchacon-lab/sixtyfivecore/cpu"
)

func romWithReset(code []byte, resetAt uint16) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[resetAt-0x8000:], code)
	off := bus.ResetVectorAddr - 0x8000
	rom[off] = uint8(resetAt)
	rom[off+1] = uint8(resetAt >> 8)
	return rom
}

func TestStepAdvancesRegisters(t *testing.T) {
	rom := romWithReset([]byte{0xA9, 0x42}, 0x8000) // LDA #$42
	d, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if snap := d.Snapshot(); snap.AC != 0x42 {
		t.Errorf("AC = %#x, want 0x42", snap.AC)
	}
}

func TestRunUntilPausedStopsOnHalt(t *testing.T) {
	// LDA #$01; HLT (requires undocumented opcodes)
	rom := romWithReset([]byte{0xA9, 0x01, 0x02}, 0x8000)
	d, err := New(rom, cpu.WithUndocumented())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.RunUntilPaused(ctx); err != nil {
		t.Fatal(err)
	}
	if snap := d.Snapshot(); snap.AC != 0x01 {
		t.Errorf("AC = %#x, want 0x01", snap.AC)
	}
}

func TestPauseStopsRunningLoop(t *testing.T) {
	// A tight infinite loop: JMP $8000.
	rom := romWithReset([]byte{0x4C, 0x00, 0x80}, 0x8000)
	d, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- d.RunUntilPaused(context.Background())
	}()

	time.Sleep(10 * time.Millisecond)
	d.Pause()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("RunUntilPaused did not return after Pause")
	}
}

func TestLoadROMPreservesRegisters(t *testing.T) {
	rom := romWithReset([]byte{0xEA}, 0x8000)
	d, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Step(); err != nil {
		t.Fatal(err)
	}

	fresh := romWithReset([]byte{0xEA}, 0x8000)
	if err := d.LoadROM(fresh); err != nil {
		t.Fatal(err)
	}
	// Registers survive a ROM swap; only Reset should touch them.
	if snap := d.Snapshot(); snap.PC == 0 {
		t.Errorf("unexpected zeroed PC after LoadROM")
	}
}

func TestIRQAndNMICommands(t *testing.T) {
	rom := romWithReset([]byte{0xEA}, 0x8000)
	d, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	d.IRQ() // I is set after reset, so the IRQ is masked
	if snap := d.Snapshot(); snap.SP != 0xFD {
		t.Errorf("SP after masked IRQ = %#x, want 0xFD", snap.SP)
	}
	d.NMI() // non-maskable, should always service
	if snap := d.Snapshot(); snap.SP != 0xFD-3 {
		t.Errorf("SP after NMI = %#x, want %#x", snap.SP, 0xFD-3)
	}
}
