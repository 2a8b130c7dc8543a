package cpu

import (
	"sync"

	"github.com/jchacon-lab/sixtyfivecore/bus"
	"github.com/jchacon-lab/sixtyfivecore/irq"
)

// Option configures a Chip at construction time.
type Option func(*Chip)

// WithUndocumented enables the unofficial opcode table built in
// undocumented.go. Has no effect when combined with WithVariant(CMOS).
func WithUndocumented() Option {
	return func(c *Chip) { c.undocumented = true }
}

// WithVariant selects the CPU family member. Defaults to NMOS.
func WithVariant(v Variant) Option {
	return func(c *Chip) { c.variant = v }
}

// WithIRQLine wires an external interrupt source polled once per Step.
func WithIRQLine(s irq.Sender) Option {
	return func(c *Chip) { c.irqLine = s }
}

// WithNMILine wires an external edge-triggered interrupt source polled once
// per Step. Unlike IRQ, a rising edge latches: once observed, the NMI
// service runs even if the line has since dropped.
func WithNMILine(s irq.Sender) Option {
	return func(c *Chip) { c.nmiLine = s }
}

// WithTrace enables recording the most recent Step in a TraceRecord,
// retrievable via LastTrace. Disabled by default to avoid the disassembly
// cost on every instruction.
func WithTrace() Option {
	return func(c *Chip) { c.trace = true }
}

// Chip is the 6502 interpreter core: registers, dispatch table and a single
// mutex guarding the critical section described in spec §5 (Step, Reset,
// IRQ, NMI, Snapshot and LastTrace each hold mu for their whole duration;
// the Chip itself takes no memory snapshot).
type Chip struct {
	PC uint16
	AC uint8
	XR uint8
	YR uint8
	SP uint8
	SR uint8

	bus          bus.Bus
	irqLine      irq.Sender
	nmiLine      irq.Sender
	nmiPrev      bool
	variant      Variant
	undocumented bool
	trace        bool
	lastTrace    TraceRecord
	halted       bool

	mu sync.Mutex
}

// New constructs a Chip wired to b and immediately performs a Reset, per
// spec §4.2: a fresh Chip is always observed post-reset, never mid-power-up.
func New(b bus.Bus, opts ...Option) *Chip {
	c := &Chip{bus: b}
	for _, o := range opts {
		o(c)
	}
	c.Reset()
	return c
}

// table returns the dispatch table in effect for this Chip's configuration.
func (c *Chip) table() *[256]Instruction {
	if c.undocumented && c.variant != CMOS {
		return &extendedTable
	}
	return &documentedTable
}

// Reset reproduces power-on/reset-line behavior: SP becomes 0xFD, SR becomes
// U|I (0x24), and PC loads from the reset vector. AC/XR/YR are left
// untouched, matching real hardware (reset does not clear the accumulator
// or index registers).
func (c *Chip) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.SP = 0xFD
	c.SR = FlagU | FlagI
	c.halted = false
	c.PC = readResetVector(c.bus)
}

func readResetVector(b bus.Bus) uint16 {
	lo := uint16(b.Read(bus.ResetVectorAddr))
	hi := uint16(b.Read(bus.ResetVectorAddr + 1))
	return hi<<8 | lo
}

// Halted reports whether the interpreter has executed an HLT/JAM opcode and
// will refuse to advance until the next Reset.
func (c *Chip) Halted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.halted
}

// Snapshot returns an atomic, consistent view of the register file. Callers
// needing a memory snapshot alongside it should take both while holding
// their own external lock around Step, since Snapshot's internal lock is
// released before it returns.
func (c *Chip) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{PC: c.PC, AC: c.AC, XR: c.XR, YR: c.YR, SP: c.SP, SR: c.SR}
}

// LastTrace returns the TraceRecord captured by the most recent Step, valid
// only when the Chip was constructed WithTrace.
func (c *Chip) LastTrace() TraceRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastTrace
}

// Step services a pending interrupt line if there is one, returning the
// service sequence's cycles without executing an instruction; otherwise it
// executes exactly one instruction and returns the number of cycles it
// consumed (per spec §4.2's stated ordering: interrupts are only sampled at
// instruction boundaries, never mid-instruction). This is the entire critical section spec §5
// asks callers to wrap in a single lock; Step takes that lock itself so a
// driver invoking it directly already gets the guarantee for free.
func (c *Chip) Step() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.halted {
		return 0, InvalidState{Reason: "step called on halted cpu"}
	}

	if cycles, serviced := c.pollInterrupts(); serviced {
		return cycles, nil
	}

	prePC := c.PC
	opcode := c.bus.Read(c.PC)
	in := c.table()[opcode]

	o := decodeOperand(c.bus, c.PC, in.Mode, c.XR, c.YR)
	c.PC += uint16(in.Length)

	extra := c.dispatch(in.Mnemonic, in.Mode, o)
	cycles := in.BaseCycles + extra
	if o.pageCrossed && pageCrossPenalty(in.Mnemonic, in.Mode) {
		cycles++
	}

	if c.trace {
		c.lastTrace = TraceRecord{
			PrePC: prePC, PostPC: c.PC,
			AC: c.AC, XR: c.XR, YR: c.YR, SP: c.SP, SR: c.SR,
			Disasm: in.Mnemonic.String(),
		}
	}

	return cycles, nil
}

// pageCrossPenalty reports whether mode earns the +1 cycle for crossing a
// page on this mnemonic. Store instructions (STA ABX/ABY) and RMW
// instructions always pay the worst-case cycle count up front in their base
// count instead, so only read-type ABX/ABY/YIZ modes apply the penalty
// here. REL is excluded: branch already folds its own page-cross cycle,
// gated on the branch actually being taken, into dispatch's return value.
func pageCrossPenalty(m Mnemonic, mode Mode) bool {
	switch mode {
	case ABX, ABY, YIZ:
		switch m {
		case STA, STX, STY, ASL, LSR, ROL, ROR, INC, DEC,
			SLO, RLA, SRE, RRA, DCP, ISC:
			return false
		default:
			return true
		}
	default:
		return false
	}
}

// pollInterrupts samples the wired interrupt lines and, if one is pending,
// runs the service sequence instead of fetching an opcode. NMI is
// edge-triggered (only a low-to-high transition latches) and takes priority
// over the level-triggered IRQ, matching real 6502 priority.
func (c *Chip) pollInterrupts() (int, bool) {
	nmiNow := c.nmiLine != nil && c.nmiLine.Raised()
	edge := nmiNow && !c.nmiPrev
	c.nmiPrev = nmiNow

	if edge {
		return c.serviceInterrupt(bus.NMIVectorAddr, false), true
	}
	if c.irqLine != nil && c.irqLine.Raised() && c.SR&FlagI == 0 {
		return c.serviceInterrupt(bus.IRQVectorAddr, false), true
	}
	return 0, false
}

// IRQ and NMI let a driver inject an interrupt directly without wiring an
// irq.Sender, for hosts that drive the CPU synchronously (spec §6's "irq"
// and "nmi" driver commands). NMI always runs the full 7-cycle service
// sequence; IRQ runs it only when I is clear and otherwise returns 0 without
// servicing. Neither waits for the next Step, matching the "service
// injected the instant the command is processed" contract §6 describes.
func (c *Chip) IRQ() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SR&FlagI != 0 {
		return 0
	}
	return c.serviceInterrupt(bus.IRQVectorAddr, false)
}

// NMI forces an NMI service sequence regardless of the I flag, since NMI is
// non-maskable by definition.
func (c *Chip) NMI() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.serviceInterrupt(bus.NMIVectorAddr, false)
}

// serviceInterrupt runs the shared IRQ/NMI/BRK stack sequence: push PC high,
// PC low, then SR (with B clear for a hardware interrupt, set when brk is
// true), set I, then load PC from vectorAddr. It does not move PC before
// the pushes; BRK advances PC past its signature byte before calling it.
func (c *Chip) serviceInterrupt(vectorAddr uint16, brk bool) int {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))

	sr := c.SR | FlagU
	if brk {
		sr |= FlagB
	} else {
		sr &^= FlagB
	}
	c.push(sr)

	c.SR |= FlagI
	if c.variant == CMOS {
		c.SR &^= FlagD
	}

	lo := uint16(c.bus.Read(vectorAddr))
	hi := uint16(c.bus.Read(vectorAddr + 1))
	c.PC = hi<<8 | lo
	return 7
}

// push writes val to the stack page and decrements SP, the canonical order
// spec §9 mandates (write happens before the pointer moves, so SP always
// points at the next free slot rather than the last-written one).
func (c *Chip) push(val uint8) {
	c.bus.Write(0x0100|uint16(c.SP), val)
	c.SP--
}

// pop increments SP and reads the stack page, the mirror image of push.
func (c *Chip) pop() uint8 {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}
