// Package driver wraps a *cpu.Chip with the host-facing command surface: a
// single critical section covering step/interrupt-injection/snapshot (per
// the concurrency design this module follows), and a supervised
// run-until-paused loop built on errgroup so a host can cancel it cleanly
// from another goroutine.
package driver

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jchacon-lab/sixtyfivecore/bus"
	"github.com/jchacon-lab/sixtyfivecore/cpu"
	"github.com/jchacon-lab/sixtyfivecore/irq"
)

// RamSnapshot is a point-in-time copy of the RAM window, taken under the
// driver lock. It is taken separately from Snapshot, so a RAM copy and a
// register snapshot obtained by two calls can straddle a Step.
type RamSnapshot struct {
	Bytes []byte
}

// Driver supervises one Chip. Reset/Step/Pause/IRQ/NMI/LoadROM and the two
// snapshot accessors all take the same mutex, so a goroutine calling
// RunUntilPaused and a goroutine calling Snapshot never interleave with a
// partially-executed Step.
type Driver struct {
	mu   sync.Mutex
	chip *cpu.Chip
	mem  *bus.Memory
	irq  *irq.Line
	nmi  *irq.Line

	// pauseCh gates RunUntilPaused; closing it (or recreating it) is always
	// done while mu is held.
	pauseCh chan struct{}
	running bool
}

// New constructs a Driver around a fresh bus.Memory loaded with rom, and a
// Chip wired to the driver's own irq/nmi lines. No Driver method asserts
// those lines; IRQ and NMI inject through the Chip directly.
func New(rom []byte, opts ...cpu.Option) (*Driver, error) {
	mem, err := bus.New(rom)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		mem:     mem,
		irq:     &irq.Line{},
		nmi:     &irq.Line{},
		pauseCh: make(chan struct{}),
	}
	close(d.pauseCh) // start in "not paused" state: closed channel reads don't block

	allOpts := append([]cpu.Option{cpu.WithIRQLine(d.irq), cpu.WithNMILine(d.nmi)}, opts...)
	d.chip = cpu.New(mem, allOpts...)
	return d, nil
}

// Reset reinitializes the CPU (registers only; RAM is untouched, matching
// real reset-line behavior) without requiring the caller to stop a running
// RunUntilPaused loop first — Reset takes the same lock Step does, so it
// simply waits its turn.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chip.Reset()
}

// Step executes exactly one instruction and returns the cycle count.
func (d *Driver) Step() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.chip.Step()
}

// RunUntilPaused steps the CPU continuously until ctx is cancelled, Pause
// is called, the CPU halts on an HLT opcode, or Step returns an error,
// whichever comes first. It runs the loop under an errgroup so a
// caller awaiting multiple drivers (or a driver plus a watchdog goroutine)
// gets the first error/cancellation cleanly without a goroutine leak.
func (d *Driver) RunUntilPaused(ctx context.Context) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return cpu.InvalidState{Reason: "run-until-paused already in progress"}
	}
	d.running = true
	d.pauseCh = make(chan struct{})
	pauseCh := d.pauseCh
	d.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() {
			d.mu.Lock()
			d.running = false
			d.mu.Unlock()
		}()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pauseCh:
				return nil
			default:
			}

			if _, err := d.Step(); err != nil {
				return err
			}
			if d.chip.Halted() {
				return nil
			}
		}
	})
	return g.Wait()
}

// Pause stops an in-flight RunUntilPaused loop. A no-op if nothing is
// running.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	close(d.pauseCh)
}

// IRQ injects an IRQ service sequence immediately through the Chip, which
// does nothing while the I flag is set. The driver's IRQ line is not
// touched.
func (d *Driver) IRQ() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chip.IRQ()
}

// NMI forces an immediate NMI service sequence.
func (d *Driver) NMI() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chip.NMI()
}

// LoadROM swaps the ROM image without disturbing RAM or registers.
func (d *Driver) LoadROM(rom []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mem.LoadROM(rom)
}

// Snapshot returns the current register file.
func (d *Driver) Snapshot() cpu.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.chip.Snapshot()
}

// RamSnapshot copies the addressable RAM window (0x0000-0x7FFF) out for
// inspection. It is taken under the same lock as Step so it never observes
// a half-executed instruction's writes.
func (d *Driver) RamSnapshot() RamSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, 0x8000)
	for i := range out {
		out[i] = d.mem.Read(uint16(i))
	}
	return RamSnapshot{Bytes: out}
}
